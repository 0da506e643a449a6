package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/time/rate"

	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/logger"
)

// lineInterval throttles progress lines when stderr is not a terminal.
const lineInterval = time.Second

// progressReporter consumes extraction progress until the channel closes.
type progressReporter interface {
	consume(events <-chan domain.ExtractionProgress)
}

// newProgressReporter picks a progress bar on an interactive terminal and
// throttled lines otherwise. cancel aborts the extraction on ctrl+c.
func newProgressReporter(cmd *cobra.Command, cancel context.CancelFunc) progressReporter {
	out := cmd.ErrOrStderr()
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &barReporter{out: out, cancel: cancel}
	}
	return &lineReporter{out: out, sometimes: &rate.Sometimes{Interval: lineInterval}}
}

// lineReporter prints at most one progress line per interval.
type lineReporter struct {
	out       io.Writer
	sometimes *rate.Sometimes
}

func (r *lineReporter) consume(events <-chan domain.ExtractionProgress) {
	var last domain.ExtractionProgress
	for p := range events {
		last = p
		r.sometimes.Do(func() {
			fmt.Fprintln(r.out, formatProgress(p))
		})
	}
	if last.Total > 0 {
		logger.Debug("extraction finished at %s", formatProgress(last))
	}
}

func formatProgress(p domain.ExtractionProgress) string {
	return fmt.Sprintf("[%d/%d] %s (%d recipes)", p.Current, p.Total, p.CurrentArchive, p.RecipesSoFar)
}

// barReporter drives a bubbletea progress bar program.
type barReporter struct {
	out    io.Writer
	cancel context.CancelFunc
}

type (
	progressEventMsg domain.ExtractionProgress
	progressDoneMsg  struct{}
)

func (r *barReporter) consume(events <-chan domain.ExtractionProgress) {
	p := tea.NewProgram(newProgressModel(r.cancel), tea.WithOutput(r.out))

	finished := make(chan struct{})
	go func() {
		if _, err := p.Run(); err != nil {
			logger.Warn("progress display: %v", err)
		}
		close(finished)
	}()

	for ev := range events {
		p.Send(progressEventMsg(ev))
	}
	p.Send(progressDoneMsg{})
	<-finished
}

// progressModel renders the extraction progress bar.
type progressModel struct {
	bar     progress.Model
	current domain.ExtractionProgress
	cancel  context.CancelFunc
}

func newProgressModel(cancel context.CancelFunc) progressModel {
	return progressModel{
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		cancel: cancel,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressEventMsg:
		m.current = domain.ExtractionProgress(msg)
		return m, nil
	case progressDoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && m.cancel != nil {
			m.cancel()
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	percent := 0.0
	if m.current.Total > 0 {
		percent = float64(m.current.Current) / float64(m.current.Total)
	}
	return fmt.Sprintf("%s %d/%d %s, %d recipes\n",
		m.bar.ViewAs(percent), m.current.Current, m.current.Total,
		m.current.CurrentArchive, m.current.RecipesSoFar)
}

// Package extract provides the extraction view for the TUI.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/craftdex/craftdex/internal/adapters/driving/tui/keymap"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/messages"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/styles"
	"github.com/craftdex/craftdex/internal/core/domain"
	"github.com/craftdex/craftdex/internal/core/ports/driving"
)

// Error definitions for the extract view.
var (
	// ErrNoExtractionService indicates that no extraction service was provided.
	ErrNoExtractionService = errors.New("extraction service is required")

	// ErrNoModsDir indicates that mods.dir is not configured.
	ErrNoModsDir = errors.New("no mods folder configured; run `craftdex config set mods.dir <path>`")
)

// progressBuffer is the capacity of the progress channel.
const progressBuffer = 64

// View runs a folder extraction and shows its progress.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	bar    progress.Model

	extraction driving.ExtractionService
	settings   driving.SettingsService
	ctx        context.Context
	cancel     context.CancelFunc

	dir      string
	replace  bool
	running  bool
	progress domain.ExtractionProgress
	result   *domain.ExtractionResult
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new extract view. settings may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	extraction driving.ExtractionService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:     s,
		keymap:     km,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(50)),
		extraction: extraction,
		settings:   settings,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the parent context for extractions.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init refreshes the mods folder and replace default from settings.
func (v *View) Init() tea.Cmd {
	if v.running || v.settings == nil {
		return nil
	}
	settings, err := v.settings.Get()
	if err != nil {
		v.err = err
		return nil
	}
	v.dir = settings.Mods.Dir
	v.replace = settings.Extraction.Replace
	return nil
}

// Update handles messages for the extract view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case extractionStarted:
		return v, waitForProgress(msg.progress)

	case messages.ExtractionProgressed:
		v.progress = msg.Progress
		return v, nil

	case progressTick:
		v.progress = msg.progress
		return v, waitForProgress(msg.ch)

	case messages.ExtractionFinished:
		v.running = false
		v.result = msg.Result
		v.err = msg.Err
		if v.cancel != nil {
			v.cancel()
			v.cancel = nil
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		if v.running {
			v.Cancel()
			return v, nil
		}
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }

	case keymap.Matches(keyStr, v.keymap.Start):
		return v, v.start()

	case keyStr == "r":
		if !v.running {
			v.replace = !v.replace
		}
	}
	return v, nil
}

// start launches the extraction. The service never closes the progress
// channel, so the command closes it once the call returns.
func (v *View) start() tea.Cmd {
	if v.running {
		return nil
	}
	if v.extraction == nil {
		v.err = ErrNoExtractionService
		return nil
	}
	if v.dir == "" {
		v.err = ErrNoModsDir
		return nil
	}

	ctx, cancel := context.WithCancel(v.ctx)
	v.cancel = cancel
	v.running = true
	v.result = nil
	v.err = nil
	v.progress = domain.ExtractionProgress{}

	ch := make(chan domain.ExtractionProgress, progressBuffer)
	svc := v.extraction
	dir := v.dir
	opts := domain.ExtractionOptions{Replace: v.replace}

	run := func() tea.Msg {
		result, err := svc.ExtractFolder(ctx, dir, opts, ch)
		close(ch)
		return messages.ExtractionFinished{Result: result, Err: err}
	}
	started := func() tea.Msg { return extractionStarted{progress: ch} }
	return tea.Batch(run, started)
}

type extractionStarted struct {
	progress <-chan domain.ExtractionProgress
}

type progressTick struct {
	progress domain.ExtractionProgress
	ch       <-chan domain.ExtractionProgress
}

// waitForProgress delivers the next progress event and re-subscribes.
func waitForProgress(ch <-chan domain.ExtractionProgress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return progressTick{progress: p, ch: ch}
	}
}

// View renders the extract view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	dir := v.dir
	if dir == "" {
		dir = "(not configured)"
	}
	mode := "add to existing recipes"
	if v.replace {
		mode = "replace existing recipes"
	}

	sections := []string{
		v.styles.Title.Render("Extract recipes"),
		"",
		v.styles.Normal.Render("Folder: " + dir),
		v.styles.Muted.Render("Mode:   " + mode),
		"",
	}

	switch {
	case v.running:
		sections = append(sections, v.renderProgress()...)
	case v.result != nil:
		sections = append(sections, v.renderResult()...)
	}

	if v.err != nil {
		if errors.Is(v.err, context.Canceled) {
			sections = append(sections, v.styles.Warning.Render("Extraction cancelled; partial results were kept."))
		} else {
			sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
		}
	}

	hint := "enter start • r toggle replace • esc back"
	if v.running {
		hint = "esc cancel"
	}
	sections = append(sections, "", v.styles.Help.Render(hint))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderProgress() []string {
	p := v.progress
	return []string{
		v.bar.ViewAs(p.Fraction()),
		v.styles.Muted.Render(fmt.Sprintf("[%d/%d] %s", p.Current, p.Total, p.CurrentArchive)),
		v.styles.Normal.Render(humanize.Comma(int64(p.RecipesSoFar)) + " recipes so far"),
	}
}

func (v *View) renderResult() []string {
	r := v.result
	lines := []string{
		v.styles.Success.Render(fmt.Sprintf("Extracted %s recipes from %s archives.",
			humanize.Comma(int64(r.RecipesExtracted)), humanize.Comma(int64(r.ArchivesProcessed)))),
	}
	if len(r.Errors) > 0 {
		lines = append(lines, v.styles.Warning.Render(fmt.Sprintf("%d problems were recorded; see `craftdex extract -v`.", len(r.Errors))))
	}
	return lines
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.bar.Width = min(50, max(10, width-4))
}

// Cancel stops a running extraction. Recipes already stored are kept.
func (v *View) Cancel() {
	if v.cancel != nil {
		v.cancel()
	}
}

// Running returns whether an extraction is in flight.
func (v *View) Running() bool {
	return v.running
}

// Dir returns the folder that will be extracted.
func (v *View) Dir() string {
	return v.dir
}

// Replace returns whether existing recipes will be replaced.
func (v *View) Replace() bool {
	return v.replace
}

// Progress returns the last progress event.
func (v *View) Progress() domain.ExtractionProgress {
	return v.progress
}

// Result returns the last extraction result.
func (v *View) Result() *domain.ExtractionResult {
	return v.result
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

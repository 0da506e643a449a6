package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/craftdex/craftdex/internal/adapters/driving/tui/messages"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/styles"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/views/browse"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/views/detail"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/views/extract"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/views/menu"
	"github.com/craftdex/craftdex/internal/adapters/driving/tui/views/search"
)

// recipeCountLoaded carries the stored recipe count for the menu.
type recipeCountLoaded struct {
	count int
	err   error
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	menuView    *menu.View
	browseView  *browse.View
	searchView  *search.View
	detailView  *detail.View
	extractView *extract.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s, ports.Extraction != nil),
		browseView:  browse.NewView(s, nil, ports.Recipes),
		searchView:  search.NewView(s, nil, ports.Recipes),
		detailView:  detail.NewView(s, nil, ports.Recipes),
		extractView: extract.NewView(s, nil, ports.Extraction, ports.Settings),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.browseView.WithContext(ctx)
	a.searchView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	a.extractView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("craftdex - Recipe Browser"),
		a.loadRecipeCount(),
	)
}

func (a *App) loadRecipeCount() tea.Cmd {
	recipes := a.ports.Recipes
	ctx := a.ctx
	return func() tea.Msg {
		count, err := recipes.Count(ctx)
		return recipeCountLoaded{count: count, err: err}
	}
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.extractView.Cancel()
			return a, tea.Quit
		}
		return a, a.updateCurrent(msg)

	case recipeCountLoaded:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.menuView.SetRecipeCount(msg.count)
		return a, nil

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.RecipesLoaded:
		a.browseView, cmd = a.browseView.Update(msg)
		a.err = a.browseView.Err()
		return a, cmd

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.RecipeSelected:
		a.currentView = messages.ViewDetail
		return a, a.detailView.Load(msg.ID, msg.From)

	case messages.RecipeLoaded:
		a.detailView, cmd = a.detailView.Update(msg)
		a.err = a.detailView.Err()
		return a, cmd

	case messages.ExtractionFinished:
		a.extractView, cmd = a.extractView.Update(msg)
		a.err = a.extractView.Err()
		return a, tea.Batch(cmd, a.loadRecipeCount())

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.updateCurrent(msg)

	case messages.Quit:
		a.extractView.Cancel()
		return a, tea.Quit
	}

	// Extraction progress keeps flowing while another view is active.
	a.extractView, cmd = a.extractView.Update(msg)
	if a.currentView == messages.ViewExtract {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.updateCurrent(msg))
}

// switchTo activates a view, initialising it where needed.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	switch view {
	case messages.ViewMenu:
		return a.loadRecipeCount()
	case messages.ViewBrowse:
		return a.browseView.Init()
	case messages.ViewSearch:
		a.searchView.Reset()
		return a.searchView.Init()
	case messages.ViewExtract:
		return a.extractView.Init()
	case messages.ViewDetail, messages.ViewHelp:
	}
	return nil
}

// updateCurrent forwards msg to the active view.
func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewBrowse:
		a.browseView, cmd = a.browseView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewExtract:
		a.extractView, cmd = a.extractView.Update(msg)
	case messages.ViewHelp:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewBrowse:
		return a.browseView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewExtract:
		return a.extractView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Browse:
  j/k, ↑/↓    Move between recipes
  h/l, ←/→    Previous / next page
  enter       Open recipe

Search:
  tab         Switch between output and ingredient
  enter       Submit search, then open a result
  n           New search

Recipe:
  r           Toggle raw JSON

Extract:
  enter, s    Start extraction
  r           Toggle replace
  esc         Cancel a running extraction

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.browseView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
	a.extractView.SetDimensions(width, height)
}

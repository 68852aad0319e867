// Package tui implements the interactive country browser: a list of every
// country in the directory and a detail view with navigable border links.
// Data arrives exclusively through the atlasd API client; which navigation
// changes trigger a re-fetch is decided by RefreshController.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/atlasd/internal/directory"
)

// ViewState identifies the browse TUI's current screen.
type ViewState int

const (
	// ViewStateLoading indicates the initial country list fetch is running.
	ViewStateLoading ViewState = iota
	// ViewStateList indicates the country list is displayed.
	ViewStateList
	// ViewStateDetail indicates a single country's detail is displayed.
	ViewStateDetail
	// ViewStateError indicates the initial list fetch failed.
	ViewStateError
	// ViewStateQuitting indicates the application is exiting.
	ViewStateQuitting
)

// Key strings handled by the browse TUI.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyLeft  = "left"
	keyRight = "right"
	keyTab   = "tab"
)

// Default display dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// CountryAPI is the slice of the API client the browse TUI consumes.
type CountryAPI interface {
	List(ctx context.Context) ([]directory.CountryRecord, error)
	GetExpanded(ctx context.Context, code string) (directory.Expanded, error)
}

// countriesLoadedMsg is sent when the initial list fetch completes.
type countriesLoadedMsg struct {
	records []directory.CountryRecord
	err     error
}

// countryFetchedMsg is sent when a detail fetch completes. seq carries the
// RefreshController sequence tag so stale responses can be discarded.
type countryFetchedMsg struct {
	seq      uint64
	code     string
	expanded directory.Expanded
	err      error
}

// BrowseModel is the Bubble Tea model for the country browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowseModel struct {
	ctx context.Context
	api CountryAPI

	// View state
	state   ViewState
	records []directory.CountryRecord
	err     error

	// List components
	table table.Model

	// Detail state. current is nil until the first successful fetch for
	// the detail view completes; the renderer must always check it.
	controller    RefreshController
	current       *directory.Expanded
	detailLoading bool
	detailErr     error
	borderCursor  int

	// Display
	width   int
	height  int
	loading spinner.Model
}

// NewBrowseModel creates a browse model that loads data through api.
func NewBrowseModel(ctx context.Context, api CountryAPI) BrowseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return BrowseModel{
		ctx:     ctx,
		api:     api,
		state:   ViewStateLoading,
		width:   defaultWidth,
		height:  defaultHeight,
		loading: sp,
	}
}

// Init starts the spinner and the initial country list fetch.
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Tick, m.fetchCountries())
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == ViewStateList || m.state == ViewStateDetail {
			m.table = m.buildCountryTable()
		}
		return m, nil

	case countriesLoadedMsg:
		return m.handleCountriesLoaded(msg)

	case countryFetchedMsg:
		return m.handleCountryFetched(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// fetchCountries issues the list-all query.
func (m BrowseModel) fetchCountries() tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		records, err := api.List(ctx)
		return countriesLoadedMsg{records: records, err: err}
	}
}

// fetchCountry issues a detail fetch tagged with seq.
func (m BrowseModel) fetchCountry(code string, seq uint64) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		expanded, err := api.GetExpanded(ctx, code)
		return countryFetchedMsg{seq: seq, code: code, expanded: expanded, err: err}
	}
}

func (m BrowseModel) handleCountriesLoaded(msg countriesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state = ViewStateError
		m.err = msg.err
		return m, nil
	}

	m.records = msg.records
	m.table = m.buildCountryTable()
	m.state = ViewStateList
	return m, nil
}

// handleCountryFetched applies a detail fetch result. The sequence tag
// decides whether the response is current; stale responses are dropped on
// the floor and failed current ones surface as a detail error while the
// previously displayed record, if any, stays in place.
func (m BrowseModel) handleCountryFetched(msg countryFetchedMsg) (tea.Model, tea.Cmd) {
	if m.controller.Complete(msg.seq, msg.code, msg.err) {
		expanded := msg.expanded
		m.current = &expanded
		m.detailLoading = false
		m.detailErr = nil
		m.borderCursor = 0
		return m, nil
	}

	if msg.err != nil && m.controller.Latest(msg.seq) {
		m.detailLoading = false
		m.detailErr = msg.err
	}
	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keyQuit || key == keyCtrlC {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateList:
		return m.handleListKey(msg)
	case ViewStateDetail:
		return m.handleDetailKey(msg)
	case ViewStateLoading, ViewStateError, ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m BrowseModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyEnter {
		cursor := m.table.Cursor()
		if cursor >= 0 && cursor < len(m.records) {
			return m.navigateTo(m.records[cursor].CCA3)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m BrowseModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		m.state = ViewStateList
		m.table.Focus()
		return m, nil

	case keyLeft:
		if m.borderCursor > 0 {
			m.borderCursor--
		}
		return m, nil

	case keyRight, keyTab:
		if m.current != nil && m.borderCursor < len(m.current.BorderCountries)-1 {
			m.borderCursor++
		}
		return m, nil

	case keyEnter:
		// Follow the focused border link.
		if m.current != nil && m.borderCursor < len(m.current.BorderCountries) {
			return m.navigateTo(m.current.BorderCountries[m.borderCursor].CCA3)
		}
		return m, nil
	}

	return m, nil
}

// navigateTo switches to the detail view for code, fetching only when the
// controller says the target differs from the last requested code.
func (m BrowseModel) navigateTo(code string) (tea.Model, tea.Cmd) {
	m.state = ViewStateDetail

	if !m.controller.NeedsFetch(code) {
		return m, nil
	}

	seq := m.controller.Begin(code)
	m.detailLoading = true
	m.detailErr = nil
	return m, tea.Batch(m.loading.Tick, m.fetchCountry(code, seq))
}

// Current returns the currently displayed record, or nil while absent.
// Exposed for tests.
func (m BrowseModel) Current() *directory.Expanded {
	return m.current
}

// State returns the current view state. Exposed for tests.
func (m BrowseModel) State() ViewState {
	return m.state
}

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/atlasd/internal/directory"
)

// fakeAPI serves the FRA/DEU/ESP fixture and counts detail fetches per code.
type fakeAPI struct {
	dir     *directory.Directory
	fetches map[string]int
	listErr error
	getErr  error
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	dir, err := directory.New([]directory.CountryRecord{
		{Name: "France", CCA3: "FRA", Capital: "Paris", Area: 551695, Borders: []string{"DEU", "ESP"}},
		{Name: "Germany", CCA3: "DEU", Capital: "Berlin", Area: 357114, Borders: []string{"FRA"}},
		{Name: "Spain", CCA3: "ESP", Capital: "Madrid", Area: 505992, Borders: []string{"FRA"}},
	})
	require.NoError(t, err)

	return &fakeAPI{dir: dir, fetches: make(map[string]int)}
}

func (f *fakeAPI) List(_ context.Context) ([]directory.CountryRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.dir.ListAll(), nil
}

func (f *fakeAPI) GetExpanded(_ context.Context, code string) (directory.Expanded, error) {
	f.fetches[code]++
	if f.getErr != nil {
		return directory.Expanded{}, f.getErr
	}
	return f.dir.GetExpanded(code)
}

// drive applies a command's message to the model, following tea.Batch
// recursively, and returns the updated model.
func drive(t *testing.T, m BrowseModel, cmd tea.Cmd) BrowseModel {
	t.Helper()
	if cmd == nil {
		return m
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			m = drive(t, m, sub)
		}
		return m
	}

	// Apply the message once; commands produced by the update (spinner
	// ticks re-arm themselves forever) are not followed.
	updated, _ := m.Update(msg)
	return updated.(BrowseModel)
}

// loadedModel returns a model that has completed its initial list fetch.
func loadedModel(t *testing.T, api *fakeAPI) BrowseModel {
	t.Helper()

	m := NewBrowseModel(context.Background(), api)
	updated, _ := m.Update(countriesLoadedMsg{records: mustList(t, api)})
	return updated.(BrowseModel)
}

func mustList(t *testing.T, api *fakeAPI) []directory.CountryRecord {
	t.Helper()
	records, err := api.List(context.Background())
	require.NoError(t, err)
	return records
}

func TestNewBrowseModel_InitialState(t *testing.T) {
	m := NewBrowseModel(context.Background(), newFakeAPI(t))

	assert.Equal(t, ViewStateLoading, m.State())
	assert.Nil(t, m.Current())
}

func TestBrowseModel_ListLoaded(t *testing.T) {
	m := loadedModel(t, newFakeAPI(t))
	assert.Equal(t, ViewStateList, m.State())
}

func TestBrowseModel_ListLoadFailure(t *testing.T) {
	api := newFakeAPI(t)
	api.listErr = errors.New("connection refused")

	m := NewBrowseModel(context.Background(), api)
	updated, _ := m.Update(countriesLoadedMsg{err: api.listErr})
	m = updated.(BrowseModel)

	assert.Equal(t, ViewStateError, m.State())
	assert.Contains(t, m.View(), "connection refused")
}

func TestBrowseModel_EnterOpensDetail(t *testing.T) {
	api := newFakeAPI(t)
	m := loadedModel(t, api)

	// Cursor starts on FRA; Enter navigates and issues the fetch.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(BrowseModel)
	require.Equal(t, ViewStateDetail, m.State())

	// Rendering guard: nothing fetched yet, so no record fields on screen.
	assert.Nil(t, m.Current())
	assert.NotContains(t, m.View(), "Paris")

	m = drive(t, m, cmd)
	require.NotNil(t, m.Current())
	assert.Equal(t, "FRA", m.Current().CCA3)
	assert.Contains(t, m.View(), "Paris")
	assert.Equal(t, 1, api.fetches["FRA"])
}

// TestBrowseModel_BorderNavigationFetchCounts walks FRA -> DEU -> FRA via
// border links and verifies each hop issues exactly one fetch.
func TestBrowseModel_BorderNavigationFetchCounts(t *testing.T) {
	api := newFakeAPI(t)
	m := loadedModel(t, api)

	// Open FRA from the list.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, updated.(BrowseModel), cmd)
	require.Equal(t, "FRA", m.Current().CCA3)

	// Follow the first border link (DEU).
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, updated.(BrowseModel), cmd)
	require.Equal(t, "DEU", m.Current().CCA3)
	assert.Contains(t, m.View(), "Berlin")

	// DEU's only border is FRA; follow it back.
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, updated.(BrowseModel), cmd)
	require.Equal(t, "FRA", m.Current().CCA3)

	assert.Equal(t, 2, api.fetches["FRA"])
	assert.Equal(t, 1, api.fetches["DEU"])
	assert.Equal(t, 0, api.fetches["ESP"])
}

// TestBrowseModel_RepeatNavigationDoesNotRefetch re-enters the detail view
// for the code already displayed and verifies no new fetch is issued.
func TestBrowseModel_RepeatNavigationDoesNotRefetch(t *testing.T) {
	api := newFakeAPI(t)
	m := loadedModel(t, api)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, updated.(BrowseModel), cmd)
	require.Equal(t, 1, api.fetches["FRA"])

	// Back to the list and open the same country again.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(BrowseModel)
	require.Equal(t, ViewStateList, m.State())

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, updated.(BrowseModel), cmd)

	assert.Equal(t, ViewStateDetail, m.State())
	assert.Equal(t, 1, api.fetches["FRA"], "repeat navigation must not refetch")
	assert.Equal(t, "FRA", m.Current().CCA3)
}

func TestBrowseModel_StaleResponseDiscarded(t *testing.T) {
	api := newFakeAPI(t)
	m := loadedModel(t, api)

	seqFRA := m.controller.Begin("FRA")
	seqDEU := m.controller.Begin("DEU")

	deu, err := api.dir.GetExpanded("DEU")
	require.NoError(t, err)
	fra, err := api.dir.GetExpanded("FRA")
	require.NoError(t, err)

	// The later navigation's response lands first.
	updated, _ := m.Update(countryFetchedMsg{seq: seqDEU, code: "DEU", expanded: deu})
	m = updated.(BrowseModel)
	require.Equal(t, "DEU", m.Current().CCA3)

	// The superseded response resolves afterwards and must be dropped.
	updated, _ = m.Update(countryFetchedMsg{seq: seqFRA, code: "FRA", expanded: fra})
	m = updated.(BrowseModel)
	assert.Equal(t, "DEU", m.Current().CCA3)
}

func TestBrowseModel_FetchFailureKeepsPreviousRecord(t *testing.T) {
	api := newFakeAPI(t)
	m := loadedModel(t, api)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, updated.(BrowseModel), cmd)
	require.Equal(t, "FRA", m.Current().CCA3)

	// The next border fetch fails; the FRA record stays on screen.
	api.getErr = errors.New("timeout")
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, updated.(BrowseModel), cmd)

	require.NotNil(t, m.Current())
	assert.Equal(t, "FRA", m.Current().CCA3)
	assert.Contains(t, m.View(), "fetch failed")
}

func TestBrowseModel_DetailFailureBeforeFirstRecord(t *testing.T) {
	api := newFakeAPI(t)
	api.getErr = errors.New("timeout")
	m := loadedModel(t, api)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, updated.(BrowseModel), cmd)

	// Still absent: the view shows the failure, not record fields.
	assert.Nil(t, m.Current())
	assert.Contains(t, m.View(), "Could not load country")
}

func TestBrowseModel_BorderCursorMovement(t *testing.T) {
	api := newFakeAPI(t)
	m := loadedModel(t, api)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, updated.(BrowseModel), cmd)
	require.Len(t, m.Current().BorderCountries, 2)
	assert.Equal(t, 0, m.borderCursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(BrowseModel)
	assert.Equal(t, 1, m.borderCursor)

	// Cursor is clamped at the last border.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(BrowseModel)
	assert.Equal(t, 1, m.borderCursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(BrowseModel)
	assert.Equal(t, 0, m.borderCursor)
}

func TestBrowseModel_QuitKeys(t *testing.T) {
	m := loadedModel(t, newFakeAPI(t))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(BrowseModel)

	assert.Equal(t, ViewStateQuitting, m.State())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guicastle/typeahead/internal/pipeline"
	"github.com/guicastle/typeahead/internal/provider"
)

func newTestModel(t *testing.T) (Model, *pipeline.Pipeline) {
	t.Helper()
	prov := provider.NewStatic([]string{"apple", "banana", "cherry"})
	ch := pipeline.NewChannel()
	p := pipeline.New(ch, prov, 10*time.Millisecond)
	t.Cleanup(p.Dispose)
	return NewModel(ch, p, 0), p
}

func TestModel_Typing_PushesQueryIntoPipeline(t *testing.T) {
	// Given: a model over a live pipeline
	m, p := newTestModel(t)

	// When: the user types a character
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	_ = updated

	// Then: the query settles and a lookup result is published
	require.Eventually(t, func() bool {
		return assert.ObjectsAreEqual([]string{"apple", "banana"}, p.Current().Items)
	}, time.Second, 10*time.Millisecond)
}

func TestModel_ResultMsg_RendersItemsAndCount(t *testing.T) {
	// Given: a model receiving a published result
	m, _ := newTestModel(t)
	updated, cmd := m.Update(resultMsg(pipeline.Result{Items: []string{"apple", "banana"}}))
	m = updated.(Model)

	// Then: it re-arms the wait command and renders the items
	assert.NotNil(t, cmd)
	view := m.View()
	assert.Contains(t, view, "apple")
	assert.Contains(t, view, "banana")
	assert.Contains(t, view, "2 match(es)")
}

func TestModel_FailedResult_RendersError(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(resultMsg(pipeline.Result{Err: errors.New("backend down")}))
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "lookup failed")
	assert.Contains(t, view, "backend down")
}

func TestModel_Escape_Quits(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_ResultsClosed_Quits(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(resultsClosedMsg{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_MaxResults_CapsRenderedItems(t *testing.T) {
	// Given: a model capped at one rendered result
	prov := provider.NewStatic([]string{"apple"})
	ch := pipeline.NewChannel()
	p := pipeline.New(ch, prov, 10*time.Millisecond)
	t.Cleanup(p.Dispose)
	m := NewModel(ch, p, 1)

	// When: more items than the cap arrive
	updated, _ := m.Update(resultMsg(pipeline.Result{Items: []string{"apple", "banana"}}))
	m = updated.(Model)

	// Then: only the cap is rendered but the full count is shown
	view := m.View()
	assert.Contains(t, view, "apple")
	assert.NotContains(t, view, "banana")
	assert.Contains(t, view, "2 match(es)")
}

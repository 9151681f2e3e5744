package tui

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookline-admin/res/model"
	"bookline-admin/res/schedule"
	"bookline-admin/res/session"
	"bookline-admin/sys/graphql/scalar"
)

type fakeService struct {
	periods      []model.OpeningPeriod
	replaceCalls int
}

func (f *fakeService) OpeningPeriods(ctx context.Context, businessType model.BusinessType, businessID string) ([]model.OpeningPeriod, error) {
	out := make([]model.OpeningPeriod, len(f.periods))
	copy(out, f.periods)
	return out, nil
}

func (f *fakeService) ReplaceOpeningPeriods(ctx context.Context, businessType model.BusinessType, businessID string, inputs []model.OpeningPeriodInput) ([]model.OpeningPeriod, error) {
	f.replaceCalls++
	next := make([]model.OpeningPeriod, len(inputs))
	for i, in := range inputs {
		id := ""
		if in.ID != nil {
			id = *in.ID
		}
		next[i] = model.OpeningPeriod{ID: id, Start: in.Start, End: in.End}
	}
	f.periods = next
	return next, nil
}

func newTestModel(t *testing.T, svc *fakeService) PeriodsModel {
	t.Helper()
	identity := session.Identity{BusinessType: model.BusinessTypeHotel, BusinessID: "hotel-1"}
	editor := schedule.NewEditor(svc, identity, log.New(io.Discard, "", 0))
	return NewPeriodsModel(context.Background(), editor)
}

// drive feeds a message through Update and executes any returned command
// synchronously, so editor round trips happen inline.
func drive(t *testing.T, m PeriodsModel, msg tea.Msg) PeriodsModel {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(PeriodsModel)
	require.True(t, ok)
	if cmd == nil {
		return model
	}
	switch result := cmd().(type) {
	case loadedMsg, savedMsg, opErrMsg:
		return drive(t, model, result)
	default:
		// cursor blinks and the like
		return model
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func typeText(t *testing.T, m PeriodsModel, text string) PeriodsModel {
	t.Helper()
	for _, r := range text {
		m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func mustDate(t *testing.T, value string) scalar.Date {
	t.Helper()
	d, err := scalar.ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestPeriodsModel_EmptyState(t *testing.T) {
	m := newTestModel(t, &fakeService{})
	m = drive(t, m, loadedMsg{})

	view := m.View()
	assert.Contains(t, view, "No opening periods yet")
}

func TestPeriodsModel_ListsLoadedPeriods(t *testing.T) {
	svc := &fakeService{periods: []model.OpeningPeriod{
		{ID: "p1", Start: mustDate(t, "2024-06-01"), End: mustDate(t, "2024-06-10")},
	}}
	m := newTestModel(t, svc)
	require.NoError(t, m.editor.Load(context.Background()))
	m = drive(t, m, loadedMsg{})

	view := m.View()
	assert.Contains(t, view, "2024-06-01")
	assert.Contains(t, view, "2024-06-10")
}

func TestPeriodsModel_AddFlow(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc)
	m = drive(t, m, loadedMsg{})

	m = drive(t, m, keyMsg("a"))
	assert.Equal(t, ModeAdd, m.mode)

	m = typeText(t, m, "2024-07-01")
	m = drive(t, m, keyMsg("enter")) // moves focus to end date
	m = typeText(t, m, "2024-07-05")
	m = drive(t, m, keyMsg("enter")) // submits

	assert.Equal(t, 1, svc.replaceCalls)
	periods := m.editor.Periods()
	require.Len(t, periods, 1)
	assert.Equal(t, "2024-07-01", periods[0].Start.String())
	assert.Equal(t, ModeList, m.mode)
	assert.Empty(t, m.errMsg)
}

func TestPeriodsModel_InvalidRangeShowsErrorWithoutNetwork(t *testing.T) {
	svc := &fakeService{}
	m := newTestModel(t, svc)
	m = drive(t, m, loadedMsg{})

	m = drive(t, m, keyMsg("a"))
	m = typeText(t, m, "2024-07-05")
	m = drive(t, m, keyMsg("enter"))
	m = typeText(t, m, "2024-07-01")
	m = drive(t, m, keyMsg("enter"))

	assert.NotEmpty(t, m.errMsg)
	assert.Equal(t, 0, svc.replaceCalls)
	assert.Contains(t, strings.ToLower(m.View()), "dismiss")

	// Dismissing returns to the form with inputs intact.
	m = drive(t, m, keyMsg("enter"))
	assert.Empty(t, m.errMsg)
	assert.Equal(t, ModeAdd, m.mode)
	assert.Equal(t, "2024-07-05", m.inputs[0].Value())
}

func TestPeriodsModel_RemoveAtCursor(t *testing.T) {
	svc := &fakeService{periods: []model.OpeningPeriod{
		{ID: "p1", Start: mustDate(t, "2024-06-01"), End: mustDate(t, "2024-06-10")},
		{ID: "p2", Start: mustDate(t, "2024-07-01"), End: mustDate(t, "2024-07-05")},
	}}
	m := newTestModel(t, svc)
	require.NoError(t, m.editor.Load(context.Background()))
	m = drive(t, m, loadedMsg{})

	m = drive(t, m, keyMsg("d"))

	periods := m.editor.Periods()
	require.Len(t, periods, 1)
	assert.Equal(t, "p2", periods[0].ID)
	assert.Equal(t, 1, svc.replaceCalls)
}

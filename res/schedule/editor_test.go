package schedule

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookline-admin/res/model"
	"bookline-admin/res/session"
	"bookline-admin/sys/graphql/scalar"
)

// fakeService keeps the server-side collection in memory and counts
// calls so tests can assert when the network was (not) touched.
type fakeService struct {
	periods []model.OpeningPeriod

	fetchCalls   int
	replaceCalls int

	fetchErr   error
	replaceErr error
	// refetchErr applies to fetches after the first, to simulate a
	// mutation that lands but a refetch that does not.
	refetchErr error
}

func (f *fakeService) OpeningPeriods(ctx context.Context, businessType model.BusinessType, businessID string) ([]model.OpeningPeriod, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if f.refetchErr != nil && f.fetchCalls > 1 {
		return nil, f.refetchErr
	}
	out := make([]model.OpeningPeriod, len(f.periods))
	copy(out, f.periods)
	return out, nil
}

func (f *fakeService) ReplaceOpeningPeriods(ctx context.Context, businessType model.BusinessType, businessID string, inputs []model.OpeningPeriodInput) ([]model.OpeningPeriod, error) {
	f.replaceCalls++
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}

	next := make([]model.OpeningPeriod, len(inputs))
	for i, in := range inputs {
		id := "minted-by-server"
		if in.ID != nil {
			id = *in.ID
		}
		next[i] = model.OpeningPeriod{ID: id, Start: in.Start, End: in.End}
	}
	f.periods = next
	return next, nil
}

var testIdentity = session.Identity{BusinessType: model.BusinessTypeHotel, BusinessID: "hotel-1"}

func newTestEditor(t *testing.T, svc *fakeService) *Editor {
	t.Helper()
	return NewEditor(svc, testIdentity, log.New(io.Discard, "", 0))
}

func date(t *testing.T, value string) scalar.Date {
	t.Helper()
	d, err := scalar.ParseDate(value)
	require.NoError(t, err)
	return d
}

func TestValidateRange(t *testing.T) {
	start := scalar.NewDate(2024, time.June, 1)
	end := scalar.NewDate(2024, time.June, 10)

	assert.NoError(t, ValidateRange(start, end))
	assert.NoError(t, ValidateRange(start, start))
	assert.ErrorIs(t, ValidateRange(scalar.Date{}, end), ErrMissingField)
	assert.ErrorIs(t, ValidateRange(start, scalar.Date{}), ErrMissingField)
	assert.ErrorIs(t, ValidateRange(end, start), ErrInvalidRange)
}

func TestEditor_Load(t *testing.T) {
	svc := &fakeService{periods: []model.OpeningPeriod{
		{ID: "p1", Start: date(t, "2024-06-01"), End: date(t, "2024-06-10")},
	}}
	editor := newTestEditor(t, svc)

	require.NoError(t, editor.Load(context.Background()))

	periods := editor.Periods()
	require.Len(t, periods, 1)
	assert.Equal(t, "p1", periods[0].ID)
	assert.False(t, editor.Busy())
}

func TestEditor_Append(t *testing.T) {
	svc := &fakeService{periods: []model.OpeningPeriod{
		{ID: "p1", Start: date(t, "2024-06-01"), End: date(t, "2024-06-10")},
	}}
	editor := newTestEditor(t, svc)
	require.NoError(t, editor.Load(context.Background()))

	err := editor.Append(context.Background(), date(t, "2024-07-01"), date(t, "2024-07-05"))
	require.NoError(t, err)

	periods := editor.Periods()
	require.Len(t, periods, 2)
	assert.Equal(t, "p1", periods[0].ID)
	assert.Equal(t, "2024-07-01", periods[1].Start.String())
	assert.Equal(t, "2024-07-05", periods[1].End.String())
	assert.NotEmpty(t, periods[1].ID)
	assert.NotEqual(t, "p1", periods[1].ID)
	assert.Equal(t, 1, svc.replaceCalls)
}

func TestEditor_AppendInvalidRangeSkipsNetwork(t *testing.T) {
	svc := &fakeService{}
	editor := newTestEditor(t, svc)

	err := editor.Append(context.Background(), date(t, "2024-06-10"), date(t, "2024-06-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	err = editor.Append(context.Background(), scalar.Date{}, date(t, "2024-06-01"))
	assert.ErrorIs(t, err, ErrMissingField)

	assert.Equal(t, 0, svc.replaceCalls)
	assert.Equal(t, 0, svc.fetchCalls)
}

func TestEditor_AppendFailureLeavesCollection(t *testing.T) {
	svc := &fakeService{periods: []model.OpeningPeriod{
		{ID: "p1", Start: date(t, "2024-06-01"), End: date(t, "2024-06-10")},
	}}
	editor := newTestEditor(t, svc)
	require.NoError(t, editor.Load(context.Background()))

	svc.replaceErr = errors.New("boom")
	err := editor.Append(context.Background(), date(t, "2024-07-01"), date(t, "2024-07-05"))
	require.Error(t, err)

	periods := editor.Periods()
	require.Len(t, periods, 1)
	assert.Equal(t, "p1", periods[0].ID)
	assert.False(t, editor.Busy())
}

func TestEditor_Remove(t *testing.T) {
	svc := &fakeService{periods: []model.OpeningPeriod{
		{ID: "p1", Start: date(t, "2024-06-01"), End: date(t, "2024-06-10")},
		{ID: "p2", Start: date(t, "2024-07-01"), End: date(t, "2024-07-05")},
		{ID: "p3", Start: date(t, "2024-08-01"), End: date(t, "2024-08-03")},
	}}
	editor := newTestEditor(t, svc)
	require.NoError(t, editor.Load(context.Background()))

	require.NoError(t, editor.Remove(context.Background(), "p2"))

	periods := editor.Periods()
	require.Len(t, periods, 2)
	assert.Equal(t, "p1", periods[0].ID)
	assert.Equal(t, "p3", periods[1].ID)
}

func TestEditor_RemoveUnknownIDSkipsNetwork(t *testing.T) {
	svc := &fakeService{periods: []model.OpeningPeriod{
		{ID: "p1", Start: date(t, "2024-06-01"), End: date(t, "2024-06-10")},
	}}
	editor := newTestEditor(t, svc)
	require.NoError(t, editor.Load(context.Background()))

	err := editor.Remove(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
	assert.Equal(t, 0, svc.replaceCalls)
	require.Len(t, editor.Periods(), 1)
	assert.False(t, editor.Busy())
}

func TestEditor_RemoveAt(t *testing.T) {
	svc := &fakeService{periods: []model.OpeningPeriod{
		{ID: "p1", Start: date(t, "2024-06-01"), End: date(t, "2024-06-10")},
	}}
	editor := newTestEditor(t, svc)
	require.NoError(t, editor.Load(context.Background()))

	require.NoError(t, editor.Append(context.Background(), date(t, "2024-07-01"), date(t, "2024-07-05")))
	require.Len(t, editor.Periods(), 2)

	require.NoError(t, editor.RemoveAt(context.Background(), 0))

	periods := editor.Periods()
	require.Len(t, periods, 1)
	assert.Equal(t, "2024-07-01", periods[0].Start.String())
	assert.Equal(t, "2024-07-05", periods[0].End.String())
}

func TestEditor_RemoveAtOutOfRange(t *testing.T) {
	svc := &fakeService{}
	editor := newTestEditor(t, svc)

	assert.ErrorIs(t, editor.RemoveAt(context.Background(), 0), ErrUnknownPeriod)
	assert.ErrorIs(t, editor.RemoveAt(context.Background(), -1), ErrUnknownPeriod)
	assert.Equal(t, 0, svc.replaceCalls)
}

func TestEditor_RefetchFailureKeepsMutationResult(t *testing.T) {
	svc := &fakeService{refetchErr: errors.New("refetch down")}
	editor := newTestEditor(t, svc)
	require.NoError(t, editor.Load(context.Background()))

	err := editor.Append(context.Background(), date(t, "2024-07-01"), date(t, "2024-07-05"))
	require.NoError(t, err)

	periods := editor.Periods()
	require.Len(t, periods, 1)
	assert.Equal(t, "2024-07-01", periods[0].Start.String())
}

func TestEditor_SecondSubmissionRefusedWhileBusy(t *testing.T) {
	// begin() directly: Append holds the busy flag only while in
	// flight, so the overlap is staged by hand.
	svc := &fakeService{}
	editor := newTestEditor(t, svc)

	_, err := editor.begin()
	require.NoError(t, err)

	err = editor.Append(context.Background(), date(t, "2024-07-01"), date(t, "2024-07-05"))
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, 0, svc.replaceCalls)

	editor.end()
	assert.False(t, editor.Busy())
}

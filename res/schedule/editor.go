package schedule

import (
	"context"
	"errors"
	"log"
	"sync"

	"bookline-admin/res/model"
	"bookline-admin/res/session"
	"bookline-admin/sys/graphql/scalar"

	"github.com/rs/xid"
)

var (
	ErrMissingField  = errors.New("schedule: start and end dates are both required")
	ErrInvalidRange  = errors.New("schedule: start date must not be after end date")
	ErrBusy          = errors.New("schedule: another submission is in flight")
	ErrUnknownPeriod = errors.New("schedule: no period with that ID")
)

// Service is the slice of the GraphQL API the editor needs.
type Service interface {
	OpeningPeriods(ctx context.Context, businessType model.BusinessType, businessID string) ([]model.OpeningPeriod, error)
	ReplaceOpeningPeriods(ctx context.Context, businessType model.BusinessType, businessID string, periods []model.OpeningPeriodInput) ([]model.OpeningPeriod, error)
}

// Editor manages one business's opening schedule: an ordered collection
// embedded on the parent aggregate and replaced wholesale on every edit.
// Each period gets a stable ID minted here at append time, and removals
// target that ID — never a display index — so two concurrent editors
// cannot delete the wrong element. Requiring a resolved identity up front
// makes "fetch is skipped while unresolved" structural rather than a
// runtime check.
type Editor struct {
	svc      Service
	identity session.Identity
	logger   *log.Logger

	mu      sync.Mutex
	busy    bool
	periods []model.OpeningPeriod
}

func NewEditor(svc Service, identity session.Identity, logger *log.Logger) *Editor {
	return &Editor{
		svc:      svc,
		identity: identity,
		logger:   logger,
	}
}

// ValidateRange checks the invariant enforced before any submission.
func ValidateRange(start, end scalar.Date) error {
	if start.IsZero() || end.IsZero() {
		return ErrMissingField
	}
	if end.Before(start) {
		return ErrInvalidRange
	}
	return nil
}

// Load fetches the current collection fresh from the server.
func (e *Editor) Load(ctx context.Context) error {
	periods, err := e.svc.OpeningPeriods(ctx, e.identity.BusinessType, e.identity.BusinessID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.periods = periods
	e.mu.Unlock()
	return nil
}

// Periods returns a copy of the collection as currently displayed.
func (e *Editor) Periods() []model.OpeningPeriod {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.OpeningPeriod, len(e.periods))
	copy(out, e.periods)
	return out
}

func (e *Editor) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// Append validates the new period, then resends the whole collection with
// the period attached. Validation failure means no network call happens.
// On any failure the displayed collection is left untouched so the caller
// can surface the error and retry with inputs intact.
func (e *Editor) Append(ctx context.Context, start, end scalar.Date) error {
	if err := ValidateRange(start, end); err != nil {
		return err
	}

	snapshot, err := e.begin()
	if err != nil {
		return err
	}
	defer e.end()

	id := xid.New().String()
	next := append(model.PeriodInputs(snapshot), model.OpeningPeriodInput{
		ID:    &id,
		Start: start,
		End:   end,
	})

	replaced, err := e.svc.ReplaceOpeningPeriods(ctx, e.identity.BusinessType, e.identity.BusinessID, next)
	if err != nil {
		e.logger.Printf("Failed to append opening period: %s", err)
		return err
	}

	e.refresh(ctx, replaced)
	return nil
}

// Remove resends the whole collection minus the period with the given ID.
func (e *Editor) Remove(ctx context.Context, id string) error {
	snapshot, err := e.begin()
	if err != nil {
		return err
	}
	defer e.end()

	next := make([]model.OpeningPeriodInput, 0, len(snapshot))
	found := false
	for _, p := range snapshot {
		if p.ID == id {
			found = true
			continue
		}
		pid := p.ID
		next = append(next, model.OpeningPeriodInput{ID: &pid, Start: p.Start, End: p.End})
	}
	if !found {
		return ErrUnknownPeriod
	}

	replaced, err := e.svc.ReplaceOpeningPeriods(ctx, e.identity.BusinessType, e.identity.BusinessID, next)
	if err != nil {
		e.logger.Printf("Failed to remove opening period %s: %s", id, err)
		return err
	}

	e.refresh(ctx, replaced)
	return nil
}

// RemoveAt translates a display index into the stable ID behind it, for
// callers that still address rows positionally.
func (e *Editor) RemoveAt(ctx context.Context, index int) error {
	e.mu.Lock()
	if index < 0 || index >= len(e.periods) {
		e.mu.Unlock()
		return ErrUnknownPeriod
	}
	id := e.periods[index].ID
	e.mu.Unlock()

	return e.Remove(ctx, id)
}

// begin flips the busy flag and snapshots the collection; a second
// submission while one is in flight is refused at this boundary.
func (e *Editor) begin() ([]model.OpeningPeriod, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return nil, ErrBusy
	}
	e.busy = true
	snapshot := make([]model.OpeningPeriod, len(e.periods))
	copy(snapshot, e.periods)
	return snapshot, nil
}

func (e *Editor) end() {
	e.mu.Lock()
	e.busy = false
	e.mu.Unlock()
}

// refresh refetches after a successful mutation. If the refetch itself
// fails, the collection the mutation returned is already authoritative
// enough to display, so that is kept and the failure only logged.
func (e *Editor) refresh(ctx context.Context, fallback []model.OpeningPeriod) {
	periods, err := e.svc.OpeningPeriods(ctx, e.identity.BusinessType, e.identity.BusinessID)
	if err != nil {
		e.logger.Printf("Refetch after mutation failed, keeping mutation result: %s", err)
		periods = fallback
	}

	e.mu.Lock()
	e.periods = periods
	e.mu.Unlock()
}

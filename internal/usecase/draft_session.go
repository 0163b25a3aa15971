package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/domain/pricing"
	"freightdesk/internal/usecase/interfaces"
)

// saveState names the persistence lifecycle of one draft session. "Saving
// while already saving" is an illegal transition, not a race caught by a
// timing flag.
type saveState string

const (
	stateNew       saveState = "new"
	statePersisted saveState = "persisted"
	stateDirty     saveState = "dirty"
	stateSaving    saveState = "saving"
	stateError     saveState = "error"
)

// DraftSession owns one in-memory DraftQuote aggregate for the lifetime of a
// wizard session. All mutation flows through Commit, every save flows through
// Save/SaveOptions, and a single state machine serializes concurrent save
// attempts so a new draft can never be created twice.

type DraftSession struct {
	repo interfaces.IDraftRepository

	mu          sync.Mutex
	draft       entities.DraftQuote
	state       saveState
	gen         uint64 // bumped on every mutation
	savedGen    uint64 // gen captured at the last successful save dispatch
	lastSavedAt time.Time
	lastErr     error
}

// NewDraftSession wraps a fresh, never-persisted aggregate.
func NewDraftSession(repo interfaces.IDraftRepository, draft entities.DraftQuote) *DraftSession {
	state := stateNew
	if draft.ID != "" {
		state = statePersisted
	}
	return &DraftSession{repo: repo, draft: draft, state: state}
}

// Snapshot returns a deep copy of the aggregate for read-only use.
func (s *DraftSession) Snapshot() entities.DraftQuote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// Totals recomputes the pricing breakdown of the working selection.
func (s *DraftSession) Totals() entities.Totals {
	s.mu.Lock()
	sel := s.draft.Selection.Clone()
	s.mu.Unlock()
	return pricing.Price(sel)
}

// Commit is the single mutation entry point. The mutator runs synchronously
// under the session lock and the aggregate is marked dirty. Mutating a
// finalized draft is refused.
func (s *DraftSession) Commit(mutate func(*entities.DraftQuote)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.Finalized() {
		return ErrDraftFinalized
	}

	mutate(&s.draft)
	s.markDirtyLocked()
	return nil
}

func (s *DraftSession) markDirtyLocked() {
	s.gen++
	if s.state == statePersisted {
		s.state = stateDirty
	}
}

// Save persists the aggregate: a create when it has no id yet, an update
// otherwise. Validation runs before any I/O and short-circuits with a
// field-level error list. A save issued while another is in flight is
// rejected rather than queued.
//
// The payload is a deep copy taken at dispatch time; mutations committed
// while the call is in flight are preserved locally and leave the session
// dirty after the save completes.
func (s *DraftSession) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.state == stateSaving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	if fields := validateDraft(s.draft); len(fields) > 0 {
		s.mu.Unlock()
		return &ValidationError{Fields: fields}
	}

	snapshot := s.draft.Clone()
	dispatchGen := s.gen
	creating := snapshot.ID == ""
	s.state = stateSaving
	s.mu.Unlock()

	now := time.Now().UTC()
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = now
	}
	snapshot.UpdatedAt = now

	var (
		saved entities.DraftQuote
		err   error
		op    = "update"
	)
	if creating {
		op = "create"
		log.Printf("[quote][session] create dispatch request_id=%s", snapshot.RequestID)
		saved, err = s.repo.CreateDraft(ctx, snapshot)
	} else {
		log.Printf("[quote][session] update dispatch draft_id=%s", snapshot.ID)
		saved, err = s.repo.UpdateDraft(ctx, snapshot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Printf("[quote][session] %s failed draft_id=%s err=%v", op, snapshot.ID, err)
		s.state = stateError
		s.lastErr = err
		return &PersistenceError{Op: op, Err: err}
	}
	if saved.ID == "" {
		// Zero-value result: the conditional write was refused, so nothing
		// durable changed.
		log.Printf("[quote][session] %s refused draft_id=%s request_id=%s", op, snapshot.ID, snapshot.RequestID)
		s.state = stateError
		s.lastErr = ErrDraftNotFound
		return &PersistenceError{Op: op, Err: ErrDraftNotFound}
	}

	if creating {
		s.draft.ID = saved.ID
	}
	if s.draft.CreatedAt.IsZero() {
		s.draft.CreatedAt = snapshot.CreatedAt
	}
	s.draft.UpdatedAt = snapshot.UpdatedAt
	s.lastSavedAt = time.Now().UTC()
	s.lastErr = nil
	s.savedGen = dispatchGen
	if s.gen != dispatchGen {
		s.state = stateDirty
	} else {
		s.state = statePersisted
	}
	log.Printf("[quote][session] %s success draft_id=%s", op, s.draft.ID)
	return nil
}

// AddOption freezes the current selection plus its recomputed totals as a new
// option snapshot. At most three options may exist.
func (s *DraftSession) AddOption() (entities.Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.Finalized() {
		return entities.Option{}, ErrDraftFinalized
	}
	if len(s.draft.Options) >= entities.MaxOptions {
		return entities.Option{}, ErrTooManyOptions
	}

	sel := s.draft.Selection.Clone()
	opt := entities.Option{
		Label:     fmt.Sprintf("Option %d", len(s.draft.Options)+1),
		Selection: sel,
		Totals:    pricing.Price(sel),
		CreatedAt: time.Now().UTC(),
	}
	s.draft.Options = append(s.draft.Options, opt)
	s.markDirtyLocked()
	return opt, nil
}

// SaveOptions persists every option individually. A failure on one option is
// collected and reported but neither blocks the remaining options nor rolls
// back the ones already saved. Failures also move the session into the error
// state so the status tracker surfaces them.
func (s *DraftSession) SaveOptions(ctx context.Context) error {
	s.mu.Lock()
	if s.state == stateSaving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	if s.draft.ID == "" {
		s.mu.Unlock()
		return ErrDraftNotPersisted
	}
	draftID := s.draft.ID
	options := make([]entities.Option, len(s.draft.Options))
	for i, o := range s.draft.Options {
		c := o
		c.Selection = o.Selection.Clone()
		options[i] = c
	}
	prevState := s.state
	prevGen := s.gen
	s.state = stateSaving
	s.mu.Unlock()

	var failures []OptionSaveFailure
	for i, opt := range options {
		res, err := s.repo.AddOption(ctx, draftID, opt)
		if err == nil && res.ID == "" {
			// Conditional write refused with no surviving item: the draft is
			// gone. A server-side cap refusal arrives as its own error.
			err = ErrDraftNotFound
		}
		if err != nil {
			log.Printf("[quote][session] option save failed draft_id=%s option=%d err=%v", draftID, i+1, err)
			failures = append(failures, OptionSaveFailure{Index: i, Err: err})
			continue
		}
		log.Printf("[quote][session] option saved draft_id=%s option=%d", draftID, i+1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(failures) > 0 {
		err := &PartialOptionSaveError{Saved: len(options) - len(failures), Failures: failures}
		s.state = stateError
		s.lastErr = err
		return err
	}
	if s.gen != prevGen {
		s.state = stateDirty
	} else {
		s.state = prevState
	}
	return nil
}

// PromoteOption marks one option as the final offer. The draft becomes
// read-only; the finalization itself still needs a Save to reach the backend.
func (s *DraftSession) PromoteOption(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.Finalized() {
		return ErrDraftFinalized
	}
	if index < 0 || index >= len(s.draft.Options) {
		return ErrInvalidOption
	}

	s.draft.Status = entities.DraftStatusFinalized
	s.markDirtyLocked()
	return nil
}

// validateDraft checks the fields required before any persistence attempt:
// customer identity, route endpoints, and at least one structurally valid
// container.
func validateDraft(d entities.DraftQuote) []string {
	var fields []string
	if strings.TrimSpace(d.Customer.ContactID) == "" && strings.TrimSpace(d.Customer.Name) == "" {
		fields = append(fields, "customer: missing identity")
	}
	if strings.TrimSpace(d.Shipment.Origin) == "" {
		fields = append(fields, "shipment.origin: required")
	}
	if strings.TrimSpace(d.Shipment.Destination) == "" {
		fields = append(fields, "shipment.destination: required")
	}
	if len(d.Selection.Seafreights) == 0 {
		fields = append(fields, "seafreights: at least one container required")
	}
	for i, sf := range d.Selection.Seafreights {
		if strings.TrimSpace(sf.ContainerType) == "" {
			fields = append(fields, fmt.Sprintf("seafreights[%d].container_type: required", i))
		}
		if sf.DefaultQuantity < 0 {
			fields = append(fields, fmt.Sprintf("seafreights[%d].quantity: must not be negative", i))
		}
		if sf.TEU < 0 {
			fields = append(fields, fmt.Sprintf("seafreights[%d].teu: must not be negative", i))
		}
	}
	for key, q := range d.Selection.ContainerQuantities {
		if q < 0 {
			fields = append(fields, fmt.Sprintf("container_quantities[%s]: must not be negative", key))
		}
	}
	return fields
}

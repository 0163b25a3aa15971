package usecase

import (
	"context"
	"errors"
	"testing"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/usecase/interfaces"
	mock_interfaces "freightdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validDraft() entities.DraftQuote {
	return entities.DraftQuote{
		Customer: entities.Customer{ContactID: "c-1", Name: "Acme"},
		Shipment: entities.Shipment{Origin: "Antwerp", Destination: "Shanghai"},
		Status:   entities.DraftStatusDraft,
		Selection: entities.Selection{
			Seafreights: []entities.SeafreightSelection{{OfferID: "sf-1", ContainerType: "40HC", BasePrice: 1000, DefaultQuantity: 1}},
			MarginType:  entities.MarginTypePercent,
			MarginValue: 10,
		},
	}
}

func TestDraftSession_Save(t *testing.T) {
	t.Run("validation failure never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)

		s := NewDraftSession(repo, entities.DraftQuote{})
		err := s.Save(context.Background())

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(vErr.Fields) < 4 {
			t.Fatalf("expected field-level messages, got %v", vErr.Fields)
		}
	})

	t.Run("first save creates and adopts the assigned id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)

		repo.EXPECT().CreateDraft(gomock.Any(), gomock.AssignableToTypeOf(entities.DraftQuote{})).DoAndReturn(
			func(_ context.Context, d entities.DraftQuote) (entities.DraftQuote, error) {
				if d.ID != "" {
					t.Fatalf("expected empty id on create, got %q", d.ID)
				}
				if d.CreatedAt.IsZero() || d.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps on the dispatched payload")
				}
				d.ID = "draft-1"
				return d, nil
			},
		)

		s := NewDraftSession(repo, validDraft())
		if err := s.Save(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.Snapshot().ID; got != "draft-1" {
			t.Fatalf("expected adopted id draft-1, got %q", got)
		}
		if st := s.Status(); st.State != SyncSaved || st.Dirty {
			t.Fatalf("expected saved status, got %+v", st)
		}
	})

	t.Run("second save issues an update, not a create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)

		d := validDraft()
		d.ID = "draft-1"
		s := NewDraftSession(repo, d)
		if err := s.Commit(func(d *entities.DraftQuote) { d.Selection.MarginValue = 12 }); err != nil {
			t.Fatalf("unexpected commit error: %v", err)
		}

		repo.EXPECT().UpdateDraft(gomock.Any(), gomock.AssignableToTypeOf(entities.DraftQuote{})).DoAndReturn(
			func(_ context.Context, d entities.DraftQuote) (entities.DraftQuote, error) {
				if d.ID != "draft-1" || d.Selection.MarginValue != 12 {
					t.Fatalf("unexpected payload: %+v", d)
				}
				return d, nil
			},
		)

		if err := s.Save(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("refused update is an error, not a save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)

		d := validDraft()
		d.ID = "draft-1"
		s := NewDraftSession(repo, d)
		if err := s.Commit(func(d *entities.DraftQuote) { d.Shipment.Commodity = "steel" }); err != nil {
			t.Fatalf("unexpected commit error: %v", err)
		}

		// Zero-value result is the repository's refused-conditional-write
		// convention: the item no longer exists, nothing was written.
		repo.EXPECT().UpdateDraft(gomock.Any(), gomock.Any()).Return(entities.DraftQuote{}, nil)

		err := s.Save(context.Background())
		var pErr *PersistenceError
		if !errors.As(err, &pErr) || !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected PersistenceError wrapping ErrDraftNotFound, got %v", err)
		}

		st := s.Status()
		if st.State != SyncError || !st.Dirty || !st.CanSave {
			t.Fatalf("refused write must stay dirty and retryable, got %+v", st)
		}
		if st.Error == "" {
			t.Fatalf("expected the failure to surface in the status, got %+v", st)
		}
	})

	t.Run("failed save keeps data and stays retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)

		s := NewDraftSession(repo, validDraft())
		if err := s.Commit(func(d *entities.DraftQuote) { d.Selection.MarginValue = 15 }); err != nil {
			t.Fatalf("unexpected commit error: %v", err)
		}

		repo.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).Return(entities.DraftQuote{}, errors.New("backend down"))

		err := s.Save(context.Background())
		var pErr *PersistenceError
		if !errors.As(err, &pErr) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}

		st := s.Status()
		if st.State != SyncError || !st.Dirty || !st.CanSave {
			t.Fatalf("expected retryable error state, got %+v", st)
		}
		if got := s.Snapshot().Selection.MarginValue; got != 15 {
			t.Fatalf("local changes must survive a failed save, got %v", got)
		}

		// Retry is just calling Save again.
		repo.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.DraftQuote) (entities.DraftQuote, error) {
				d.ID = "draft-1"
				return d, nil
			},
		)
		if err := s.Save(context.Background()); err != nil {
			t.Fatalf("retry should succeed: %v", err)
		}
	})
}

func TestDraftSession_CreateGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDraftRepository(ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.DraftQuote) (entities.DraftQuote, error) {
			close(entered)
			<-release
			d.ID = "draft-1"
			return d, nil
		},
	).Times(1)

	s := NewDraftSession(repo, validDraft())

	done := make(chan error, 1)
	go func() { done <- s.Save(context.Background()) }()
	<-entered

	// Second save while the create is in flight is rejected, not queued.
	if err := s.Save(context.Background()); !errors.Is(err, ErrSaveInFlight) {
		t.Fatalf("expected ErrSaveInFlight, got %v", err)
	}
	if st := s.Status(); st.State != SyncSaving || st.CanSave {
		t.Fatalf("expected saving status with save disabled, got %+v", st)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Snapshot().ID; got != "draft-1" {
		t.Fatalf("expected exactly one create to assign the id, got %q", got)
	}
}

func TestDraftSession_MutationDuringSaveStaysDirty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDraftRepository(ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d entities.DraftQuote) (entities.DraftQuote, error) {
			close(entered)
			<-release
			// The dispatched payload must not see the mid-flight mutation.
			if d.Selection.MarginValue != 10 {
				t.Errorf("payload must reflect dispatch time, got %v", d.Selection.MarginValue)
			}
			d.ID = "draft-1"
			return d, nil
		},
	)

	s := NewDraftSession(repo, validDraft())

	done := make(chan error, 1)
	go func() { done <- s.Save(context.Background()) }()
	<-entered

	if err := s.Commit(func(d *entities.DraftQuote) { d.Selection.MarginValue = 99 }); err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if st := s.Status(); st.State != SyncDirty || !st.Dirty {
		t.Fatalf("mid-flight mutation must leave the session dirty, got %+v", st)
	}
	if got := s.Snapshot().Selection.MarginValue; got != 99 {
		t.Fatalf("local mutation must survive, got %v", got)
	}
}

func TestDraftSession_Options(t *testing.T) {
	t.Run("at most three options", func(t *testing.T) {
		s := NewDraftSession(nil, validDraft())
		for i := 0; i < 3; i++ {
			if _, err := s.AddOption(); err != nil {
				t.Fatalf("option %d: unexpected error: %v", i+1, err)
			}
		}
		if _, err := s.AddOption(); !errors.Is(err, ErrTooManyOptions) {
			t.Fatalf("expected ErrTooManyOptions, got %v", err)
		}
	})

	t.Run("snapshot freezes selection and totals", func(t *testing.T) {
		s := NewDraftSession(nil, validDraft())
		opt, err := s.AddOption()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opt.Totals.CostPrice != 1000 || opt.Totals.SellPrice != 1100 {
			t.Fatalf("unexpected snapshot totals: %+v", opt.Totals)
		}

		// Mutating the draft afterwards must not leak into the snapshot.
		if err := s.Commit(func(d *entities.DraftQuote) { d.Selection.Seafreights[0].BasePrice = 9999 }); err != nil {
			t.Fatalf("unexpected commit error: %v", err)
		}
		if got := s.Snapshot().Options[0].Selection.Seafreights[0].BasePrice; got != 1000 {
			t.Fatalf("snapshot must be frozen, got %v", got)
		}
	})

	t.Run("save options before draft save is refused", func(t *testing.T) {
		s := NewDraftSession(nil, validDraft())
		if err := s.SaveOptions(context.Background()); !errors.Is(err, ErrDraftNotPersisted) {
			t.Fatalf("expected ErrDraftNotPersisted, got %v", err)
		}
	})

	t.Run("partial option save reports per-option failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)

		d := validDraft()
		d.ID = "draft-1"
		s := NewDraftSession(repo, d)
		for i := 0; i < 3; i++ {
			if _, err := s.AddOption(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		calls := 0
		repo.EXPECT().AddOption(gomock.Any(), "draft-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, draftID string, _ entities.Option) (entities.DraftQuote, error) {
				calls++
				if calls == 2 {
					return entities.DraftQuote{}, interfaces.ErrOptionLimitReached
				}
				return entities.DraftQuote{ID: draftID}, nil
			},
		).Times(3)

		err := s.SaveOptions(context.Background())
		var partial *PartialOptionSaveError
		if !errors.As(err, &partial) {
			t.Fatalf("expected PartialOptionSaveError, got %v", err)
		}
		if partial.Saved != 2 {
			t.Fatalf("expected 2 saved, got %d", partial.Saved)
		}
		if len(partial.Failures) != 1 || partial.Failures[0].Index != 1 {
			t.Fatalf("expected a single failure for option 2, got %+v", partial.Failures)
		}
		// The cause is passed through, not collapsed into not-found.
		if !errors.Is(partial.Failures[0].Err, interfaces.ErrOptionLimitReached) {
			t.Fatalf("expected the cap refusal to survive, got %v", partial.Failures[0].Err)
		}

		// Failed option saves must reach the status tracker.
		st := s.Status()
		if st.State != SyncError || !st.CanSave {
			t.Fatalf("expected retryable error status, got %+v", st)
		}
		if st.Error == "" {
			t.Fatalf("expected the failure to surface in the status, got %+v", st)
		}
	})
}

func TestDraftSession_Finalize(t *testing.T) {
	s := NewDraftSession(nil, validDraft())
	if _, err := s.AddOption(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.PromoteOption(3); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if err := s.PromoteOption(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Snapshot().Finalized() {
		t.Fatalf("expected finalized draft")
	}

	if err := s.Commit(func(d *entities.DraftQuote) { d.Selection.MarginValue = 5 }); !errors.Is(err, ErrDraftFinalized) {
		t.Fatalf("expected ErrDraftFinalized, got %v", err)
	}
	if _, err := s.AddOption(); !errors.Is(err, ErrDraftFinalized) {
		t.Fatalf("expected ErrDraftFinalized, got %v", err)
	}
	if err := s.PromoteOption(0); !errors.Is(err, ErrDraftFinalized) {
		t.Fatalf("expected ErrDraftFinalized, got %v", err)
	}
}

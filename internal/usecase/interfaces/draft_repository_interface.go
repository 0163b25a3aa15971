package interfaces

import (
	"context"
	"errors"

	"freightdesk/internal/domain/entities"
)

// ErrOptionLimitReached reports an AddOption refused because the draft
// already carries the maximum number of options.
var ErrOptionLimitReached = errors.New("option limit reached")

// IDraftRepository abstracts durable storage for DraftQuote aggregates.
//
// Conventions:
//   - CreateDraft assigns the draft id and must refuse to overwrite an
//     existing item, so exactly one durable draft exists per id.
//   - CreateDraft and UpdateDraft never write the options list; AddOption is
//     its single owner.
//   - GetDraft returns a zero-value draft (empty ID) and a nil error when the
//     id is unknown.
//   - AddOption appends one option snapshot to an already-persisted draft and
//     returns the updated aggregate; a refusal on the option cap is
//     ErrOptionLimitReached.
type IDraftRepository interface {
	CreateDraft(ctx context.Context, d entities.DraftQuote) (entities.DraftQuote, error)
	UpdateDraft(ctx context.Context, d entities.DraftQuote) (entities.DraftQuote, error)
	GetDraft(ctx context.Context, id string) (entities.DraftQuote, error)
	AddOption(ctx context.Context, draftID string, opt entities.Option) (entities.DraftQuote, error)
}

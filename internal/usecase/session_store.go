package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SessionStore hands out and tracks live wizard sessions. Each session
// exclusively owns its aggregate; the store only maps session ids to
// sessions.

type SessionStore struct {
	repo interfaces.IDraftRepository

	mu       sync.Mutex
	sessions map[string]*DraftSession
}

func NewSessionStore(repo interfaces.IDraftRepository) *SessionStore {
	return &SessionStore{repo: repo, sessions: make(map[string]*DraftSession)}
}

// Open starts a wizard session. With a draft id the aggregate is loaded from
// the repository; otherwise a fresh draft is created in memory, optionally
// linked to a source quote request.
func (st *SessionStore) Open(ctx context.Context, requestID, draftID string) (string, *DraftSession, error) {
	var draft entities.DraftQuote

	if draftID = strings.TrimSpace(draftID); draftID != "" {
		loaded, err := st.load(ctx, draftID)
		if err != nil {
			return "", nil, err
		}
		draft = loaded
	} else {
		draft = entities.DraftQuote{
			RequestID: strings.TrimSpace(requestID),
			Status:    entities.DraftStatusDraft,
			Selection: entities.Selection{MarginType: entities.MarginTypePercent},
			CreatedAt: time.Now().UTC(),
		}
	}

	session := NewDraftSession(st.repo, draft)
	id := uuid.NewString()

	st.mu.Lock()
	st.sessions[id] = session
	st.mu.Unlock()

	log.Printf("[quote][store] session opened session_id=%s draft_id=%s request_id=%s", id, draft.ID, draft.RequestID)
	return id, session, nil
}

// load fetches and reconstructs a persisted aggregate. It is read-only on the
// backend and safe to repeat.
func (st *SessionStore) load(ctx context.Context, draftID string) (entities.DraftQuote, error) {
	draft, err := st.repo.GetDraft(ctx, draftID)
	if err != nil {
		return entities.DraftQuote{}, err
	}
	if draft.ID == "" {
		return entities.DraftQuote{}, ErrDraftNotFound
	}
	return draft, nil
}

// Get resolves a live session by id.
func (st *SessionStore) Get(sessionID string) (*DraftSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close drops a session from the store. In-flight saves finish on their own;
// the aggregate simply stops being addressable.
func (st *SessionStore) Close(sessionID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, sessionID)
	log.Printf("[quote][store] session closed session_id=%s", sessionID)
	return nil
}

package usecase

import (
	"fmt"
	"time"
)

// SyncState is the user-facing save status shown by the wizard's status
// indicator.
type SyncState string

const (
	SyncIdle   SyncState = "idle"
	SyncDirty  SyncState = "dirty"
	SyncSaving SyncState = "saving"
	SyncSaved  SyncState = "saved"
	SyncError  SyncState = "error"
)

// SyncStatus is derived purely from session state; the tracker keeps no state
// of its own. CanSave gates the manual save trigger: disabled only while a
// save is in flight, so a failed save stays retryable.
type SyncStatus struct {
	State         SyncState `json:"state"`
	Dirty         bool      `json:"dirty"`
	LastSavedAt   time.Time `json:"last_saved_at,omitzero"`
	TimeSinceSave string    `json:"time_since_save"`
	Error         string    `json:"error,omitempty"`
	CanSave       bool      `json:"can_save"`
}

// Status derives the current sync status from the session's state machine.
func (s *DraftSession) Status() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deriveSyncStatus(s.state, s.gen != s.savedGen, s.lastSavedAt, s.lastErr, time.Now().UTC())
}

func deriveSyncStatus(state saveState, unsaved bool, lastSavedAt time.Time, lastErr error, now time.Time) SyncStatus {
	st := SyncStatus{
		Dirty:         unsaved,
		LastSavedAt:   lastSavedAt,
		TimeSinceSave: formatSince(lastSavedAt, now),
		CanSave:       state != stateSaving,
	}
	if lastErr != nil {
		st.Error = lastErr.Error()
	}

	switch {
	case state == stateSaving:
		st.State = SyncSaving
	case state == stateError:
		st.State = SyncError
	case unsaved:
		st.State = SyncDirty
	case !lastSavedAt.IsZero():
		st.State = SyncSaved
	default:
		st.State = SyncIdle
	}
	return st
}

// formatSince renders a human-readable "time since last save".
func formatSince(lastSavedAt, now time.Time) string {
	if lastSavedAt.IsZero() {
		return "never saved"
	}
	d := now.Sub(lastSavedAt)
	switch {
	case d < 5*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}

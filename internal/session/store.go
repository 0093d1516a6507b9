// Package session holds the viewer's profile for the lifetime of their
// browser session. The profile is serialized as a single JSON blob under a
// fixed key in the cookie-backed session, the same shape the service
// returns it in.
package session

import (
	"encoding/json"

	"matchday/frontend/internal/models"

	"github.com/gin-contrib/sessions"
)

// profileKey is the fixed storage key for the persisted profile blob.
const profileKey = "userData"

// Store wraps one request's session as a profile blob store.
type Store struct {
	s sessions.Session
}

// NewStore wraps an existing session. The sessions middleware must have run
// for the request already.
func NewStore(s sessions.Session) Store {
	return Store{s: s}
}

// Load returns the persisted profile, or false when none is stored. A
// malformed blob is treated as absent and purged so it cannot fail the
// same way twice.
func (st Store) Load() (models.UserProfile, bool) {
	raw, ok := st.s.Get(profileKey).(string)
	if !ok || raw == "" {
		return models.UserProfile{}, false
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		st.s.Delete(profileKey)
		_ = st.s.Save()
		return models.UserProfile{}, false
	}
	return profile, true
}

// Save overwrites the persisted blob unconditionally.
func (st Store) Save(profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	st.s.Set(profileKey, string(raw))
	return st.s.Save()
}

// Clear removes the persisted blob.
func (st Store) Clear() error {
	st.s.Delete(profileKey)
	return st.s.Save()
}

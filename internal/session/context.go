package session

import "matchday/frontend/internal/models"

// Context is the authenticated-viewer state for one request, initialized
// from the Store and written through on every change. It never makes
// network calls; the handlers own those.
type Context struct {
	store Store
	user  *models.UserProfile
}

// NewContext initializes the context by loading the stored profile.
func NewContext(store Store) *Context {
	ctx := &Context{store: store}
	if profile, ok := store.Load(); ok {
		ctx.user = &profile
	}
	return ctx
}

// LoggedIn reports whether a viewer is authenticated.
func (c *Context) LoggedIn() bool { return c.user != nil }

// User returns a copy of the current profile, or nil when logged out.
func (c *Context) User() *models.UserProfile {
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Login sets the in-memory viewer and persists the profile.
func (c *Context) Login(profile models.UserProfile) error {
	c.user = &profile
	return c.store.Save(profile)
}

// Logout clears the in-memory viewer and the persisted blob.
func (c *Context) Logout() error {
	c.user = nil
	return c.store.Clear()
}

// Update shallow-merges a partial profile into the current one and persists
// the result. It is a no-op when logged out.
func (c *Context) Update(patch models.ProfilePatch) error {
	if c.user == nil {
		return nil
	}
	patch.Apply(c.user)
	return c.store.Save(*c.user)
}

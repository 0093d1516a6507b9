// Package controller owns the in-memory game list and the join/leave
// orchestration against the remote service. The list is replaced wholesale
// on every successful fetch; after a mutation the authoritative counts
// always come from a refetch, never from a local patch.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"matchday/frontend/internal/decision"
	"matchday/frontend/internal/gameapi"
	"matchday/frontend/internal/models"

	"go.uber.org/zap"
)

// State is the list lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

var (
	// ErrAuthRequired fires when join or leave is attempted without a
	// logged-in viewer. No network call is made.
	ErrAuthRequired = errors.New("you must be logged in to do that")
	// ErrNotConfirmed fires when the viewer declines the leave confirmation.
	ErrNotConfirmed = errors.New("leave was not confirmed")
)

// GameClient is the slice of the remote API the controller needs.
type GameClient interface {
	ListGames(ctx context.Context, viewerID int) ([]models.GameSnapshot, error)
	JoinGame(ctx context.Context, gameID, viewerID int, positionPreference string) (gameapi.JoinResult, error)
	LeaveGame(ctx context.Context, gameID, viewerID int) (gameapi.LeaveResult, error)
}

// ConfirmFunc answers the leave confirmation prompt.
type ConfirmFunc func() bool

// AnnotatedGame is a snapshot plus the viewer's permitted action.
type AnnotatedGame struct {
	models.GameSnapshot
	Action decision.Action
}

// Notice is a one-shot message surfaced after a join or leave.
type Notice struct {
	Kind    string // "success" or "error"
	Message string
}

// GameList drives the list through Idle -> Loading -> Ready | Failed and
// re-derives every per-game action after each server round trip. It holds no
// request lock: a second join or leave while one is in flight is a caller
// error, and the UI is expected to disable the control meanwhile.
type GameList struct {
	client GameClient
	log    *zap.Logger

	mu      sync.Mutex
	state   State
	games   []AnnotatedGame
	failure string
	viewer  *models.UserProfile
	seq     uint64 // token of the newest fetch; older resolutions are discarded
}

// NewGameList returns a controller in the Idle state seeded with the
// viewer's identity. The first fetch happens on Refresh (mount) or on a
// later SetViewer.
func NewGameList(client GameClient, log *zap.Logger, viewer *models.UserProfile) *GameList {
	l := &GameList{client: client, log: log, state: StateIdle}
	if viewer != nil {
		v := *viewer
		l.viewer = &v
	}
	return l
}

// SetViewer records an identity change (login, logout, account switch) and
// refetches the list scoped to the new identity. An unchanged identity on a
// non-idle list is a no-op.
func (l *GameList) SetViewer(ctx context.Context, viewer *models.UserProfile) error {
	l.mu.Lock()
	same := identityEqual(l.viewer, viewer)
	if same && l.state != StateIdle {
		l.mu.Unlock()
		return nil
	}
	if viewer != nil {
		v := *viewer
		l.viewer = &v
	} else {
		l.viewer = nil
	}
	l.mu.Unlock()

	return l.refetch(ctx)
}

// Refresh refetches the list for the current identity. It backs both the
// initial mount and the user-initiated retry out of the Failed state.
func (l *GameList) Refresh(ctx context.Context) error {
	return l.refetch(ctx)
}

// Join asks the service to add the viewer to a game and refetches on
// success. The returned notice carries the server's message, including the
// waitlist position when the viewer was queued. On failure the list is left
// untouched.
func (l *GameList) Join(ctx context.Context, gameID int, positionPreference string) (Notice, error) {
	l.mu.Lock()
	if l.viewer == nil {
		l.mu.Unlock()
		return Notice{}, ErrAuthRequired
	}
	viewerID := l.viewer.ID
	l.mu.Unlock()

	res, err := l.client.JoinGame(ctx, gameID, viewerID, positionPreference)
	if err != nil {
		l.log.Warn("join rejected", zap.Int("game_id", gameID), zap.Error(err))
		return Notice{Kind: "error", Message: err.Error()}, err
	}

	notice := Notice{Kind: "success", Message: res.Message}
	if res.Status == models.ParticipationWaitlisted && res.WaitlistPosition > 0 {
		notice.Message = fmt.Sprintf("%s (waitlist position #%d)", res.Message, res.WaitlistPosition)
	}

	if err := l.refetch(ctx); err != nil {
		l.log.Warn("refetch after join failed", zap.Error(err))
	}
	return notice, nil
}

// Leave asks the service to drop the viewer from a game. The confirmation
// runs first: a declined prompt means no network call and an unchanged list.
// On success the list is refetched; on failure it is left untouched.
func (l *GameList) Leave(ctx context.Context, gameID int, confirm ConfirmFunc) (Notice, error) {
	if confirm == nil || !confirm() {
		return Notice{}, ErrNotConfirmed
	}

	l.mu.Lock()
	if l.viewer == nil {
		l.mu.Unlock()
		return Notice{}, ErrAuthRequired
	}
	viewerID := l.viewer.ID
	l.mu.Unlock()

	res, err := l.client.LeaveGame(ctx, gameID, viewerID)
	if err != nil {
		l.log.Warn("leave rejected", zap.Int("game_id", gameID), zap.Error(err))
		return Notice{Kind: "error", Message: err.Error()}, err
	}

	notice := Notice{Kind: "success", Message: res.Message}
	if err := l.refetch(ctx); err != nil {
		l.log.Warn("refetch after leave failed", zap.Error(err))
	}
	return notice, nil
}

// State returns the current lifecycle state.
func (l *GameList) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// FailureMessage returns the message behind the Failed state, if any.
func (l *GameList) FailureMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failure
}

// Games returns the current annotated collection. The slice is a copy; the
// controller's own collection is only ever replaced by a refetch.
func (l *GameList) Games() []AnnotatedGame {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]AnnotatedGame, len(l.games))
	copy(out, l.games)
	return out
}

// Viewer returns a copy of the current viewer, or nil when logged out.
func (l *GameList) Viewer() *models.UserProfile {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.viewer == nil {
		return nil
	}
	v := *l.viewer
	return &v
}

// refetch issues a token, fetches, and applies the result only if no newer
// fetch was issued meanwhile. A stale resolution is discarded outright so an
// out-of-order response can never overwrite a newer identity's list.
func (l *GameList) refetch(ctx context.Context) error {
	l.mu.Lock()
	l.seq++
	token := l.seq
	l.state = StateLoading
	var viewer models.UserProfile
	hasViewer := l.viewer != nil
	if hasViewer {
		viewer = *l.viewer
	}
	l.mu.Unlock()

	games, err := l.client.ListGames(ctx, viewer.ID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.seq {
		l.log.Debug("discarding stale game list response", zap.Uint64("token", token))
		return nil
	}
	if err != nil {
		l.state = StateFailed
		l.failure = "Failed to load games. Please try again later."
		return err
	}

	annotated := make([]AnnotatedGame, 0, len(games))
	for _, g := range games {
		ag := AnnotatedGame{GameSnapshot: g}
		if hasViewer {
			ag.Action = decision.Decide(g, viewer)
		}
		annotated = append(annotated, ag)
	}
	l.games = annotated
	l.state = StateReady
	l.failure = ""
	return nil
}

func identityEqual(a, b *models.UserProfile) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

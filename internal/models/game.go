package models

import "time"

// GameStatus is the lifecycle state of a game as reported by the remote
// service. The front-end never derives or mutates it locally.
type GameStatus string

const (
	GameOpen      GameStatus = "open"
	GameFull      GameStatus = "full"
	GameCancelled GameStatus = "cancelled"
	GameCompleted GameStatus = "completed"
)

// ParticipationStatus is the viewer's own standing in a game. It is only
// populated when the list was fetched in viewer-scoped mode.
type ParticipationStatus string

const (
	ParticipationNone       ParticipationStatus = ""
	ParticipationConfirmed  ParticipationStatus = "confirmed"
	ParticipationWaitlisted ParticipationStatus = "waitlisted"
)

// GameSnapshot is one game exactly as the remote service returned it.
// Snapshots are replaced wholesale on every refetch; nothing in this
// front-end edits a snapshot in place.
type GameSnapshot struct {
	ID                   int                 `json:"id"`
	Title                string              `json:"title"`
	Description          string              `json:"description,omitempty"`
	Location             string              `json:"location"`
	DateTime             time.Time           `json:"date_time"`
	DurationMinutes      int                 `json:"duration_minutes"`
	MaxPlayers           int                 `json:"max_players"`
	SkillLevelMin        int                 `json:"skill_level_min"`
	SkillLevelMax        int                 `json:"skill_level_max"`
	Status               GameStatus          `json:"status"`
	CreatedBy            int                 `json:"created_by"`
	CreatorName          string              `json:"creator_name"`
	ConfirmedPlayers     int                 `json:"confirmed_players"`
	WaitlistedPlayers    int                 `json:"waitlisted_players"`
	UserStatus           ParticipationStatus `json:"user_status,omitempty"`
	UserWaitlistPosition int                 `json:"user_waitlist_position,omitempty"`
}

// Package decision computes what a viewer may do with a game: join it, leave
// it, or nothing. Decisions are pure functions of the snapshot and the
// viewer; every state change goes through the remote service and a refetch,
// never through a local edit.
package decision

import "matchday/frontend/internal/models"

// Kind classifies the action available to the viewer.
type Kind string

const (
	// Owner marks the viewer's own game. Join and leave are never offered.
	Owner Kind = "owner"
	// Participating means the viewer holds a confirmed slot or a waitlist
	// place; the available action is leave.
	Participating Kind = "participating"
	// Joinable means the game is open and the viewer's skill fits the range.
	Joinable Kind = "joinable"
	// Blocked means no action is available; see Reason.
	Blocked Kind = "blocked"
)

// Reason says why a Blocked game cannot be joined.
type Reason string

const (
	ReasonClosed        Reason = "closed"
	ReasonSkillMismatch Reason = "skill_mismatch"
)

// Action is the result of deciding one game for one viewer.
type Action struct {
	Kind             Kind
	Status           models.ParticipationStatus // set when Kind == Participating
	WaitlistPosition int                        // set when Status is waitlisted
	Reason           Reason                     // set when Kind == Blocked
}

// Decide evaluates the rules in a fixed order: owner, then existing
// participation, then joinability, then blocked. The order is the tie-break —
// an owner whose skill happens to fit the range is still Owner, and a
// waitlisted viewer of a now-cancelled game still sees leave, not blocked.
func Decide(game models.GameSnapshot, viewer models.UserProfile) Action {
	if game.CreatedBy == viewer.ID {
		return Action{Kind: Owner}
	}
	if game.UserStatus != models.ParticipationNone {
		return Action{
			Kind:             Participating,
			Status:           game.UserStatus,
			WaitlistPosition: game.UserWaitlistPosition,
		}
	}
	if game.Status == models.GameOpen && skillFits(game, viewer) {
		return Action{Kind: Joinable}
	}
	if game.Status != models.GameOpen {
		return Action{Kind: Blocked, Reason: ReasonClosed}
	}
	return Action{Kind: Blocked, Reason: ReasonSkillMismatch}
}

// skillFits checks the inclusive skill band.
func skillFits(game models.GameSnapshot, viewer models.UserProfile) bool {
	skill := viewer.EffectiveSkillLevel()
	return skill >= game.SkillLevelMin && skill <= game.SkillLevelMax
}

// Label is the control text the game card renders for an action.
func (a Action) Label() string {
	switch a.Kind {
	case Owner:
		return "Your Game"
	case Participating:
		return "Leave Game"
	case Joinable:
		return "Join Game"
	default:
		if a.Reason == ReasonClosed {
			return "Game Closed"
		}
		return "Skill Level Mismatch"
	}
}

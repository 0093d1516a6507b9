package models

import (
	"fmt"
	"strings"
)

// DefaultSkillLevel is assumed for profiles that never set a skill level.
// The remote service applies the same default, so eligibility checks agree
// with what the server enforces on join.
const DefaultSkillLevel = 5

// Enumerations accepted by the remote service for the optional profile fields.
var (
	AgeRanges     = []string{"18-25", "26-35", "36-45", "46+"}
	Positions     = []string{"Goalkeeper", "Defender", "Midfielder", "Forward", "Any"}
	PlayingStyles = []string{"Aggressive", "Technical", "Physical", "Balanced", "Creative", "Defensive"}
)

// UserProfile is the authenticated viewer's profile as returned by the remote
// service. It is owned by the session layer and persisted verbatim as the
// session blob; field names match the wire format.
type UserProfile struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	AgeRange          string `json:"age_range,omitempty"`
	Bio               string `json:"bio,omitempty"`
	SkillLevel        int    `json:"skill_level"`
	PreferredPosition string `json:"preferred_position,omitempty"`
	PlayingStyle      string `json:"playing_style,omitempty"`
}

// EffectiveSkillLevel is the single place the absent-skill default is applied.
func (u UserProfile) EffectiveSkillLevel() int {
	if u.SkillLevel == 0 {
		return DefaultSkillLevel
	}
	return u.SkillLevel
}

// DisplayName returns the user's full name for headers and greetings.
func (u UserProfile) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Initials returns up to two letters for the avatar badge, or "U" when the
// profile has no name parts at all.
func (u UserProfile) Initials() string {
	var b strings.Builder
	if u.FirstName != "" {
		b.WriteString(strings.ToUpper(u.FirstName[:1]))
	}
	if u.LastName != "" {
		b.WriteString(strings.ToUpper(u.LastName[:1]))
	}
	if b.Len() == 0 {
		return "U"
	}
	return b.String()
}

// IsComplete reports whether the profile has every field the dashboard's
// profile card wants to show.
func (u UserProfile) IsComplete() bool {
	return u.Username != "" && u.FirstName != "" && u.LastName != "" &&
		u.SkillLevel != 0 && u.PreferredPosition != "" && u.PlayingStyle != ""
}

// ProfilePatch is a partial profile update. Nil fields are left untouched;
// non-nil fields overwrite, matching the shallow-merge semantics of the
// session update operation.
type ProfilePatch struct {
	FirstName         *string
	LastName          *string
	AgeRange          *string
	Bio               *string
	SkillLevel        *int
	PreferredPosition *string
	PlayingStyle      *string
}

// Apply merges the patch into the profile in place.
func (p ProfilePatch) Apply(u *UserProfile) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.AgeRange != nil {
		u.AgeRange = *p.AgeRange
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.SkillLevel != nil {
		u.SkillLevel = *p.SkillLevel
	}
	if p.PreferredPosition != nil {
		u.PreferredPosition = *p.PreferredPosition
	}
	if p.PlayingStyle != nil {
		u.PlayingStyle = *p.PlayingStyle
	}
}

// SignupInput is the payload for account creation, validated locally before
// it is sent to the remote service.
type SignupInput struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	AgeRange          string `json:"age_range,omitempty"`
	Bio               string `json:"bio,omitempty"`
	SkillLevel        int    `json:"skill_level"`
	PreferredPosition string `json:"preferred_position,omitempty"`
	PlayingStyle      string `json:"playing_style,omitempty"`
}

// Validate mirrors the field rules the remote service enforces so the signup
// form can reject bad input without a round trip.
func (in SignupInput) Validate() error {
	if len(in.Username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if strings.Contains(in.Username, " ") {
		return fmt.Errorf("username cannot contain spaces")
	}
	if len(in.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if in.SkillLevel < 1 || in.SkillLevel > 10 {
		return fmt.Errorf("skill level must be between 1 and 10")
	}
	if in.AgeRange != "" && !contains(AgeRanges, in.AgeRange) {
		return fmt.Errorf("invalid age range")
	}
	if in.PreferredPosition != "" && !contains(Positions, in.PreferredPosition) {
		return fmt.Errorf("invalid preferred position")
	}
	if in.PlayingStyle != "" && !contains(PlayingStyles, in.PlayingStyle) {
		return fmt.Errorf("invalid playing style")
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

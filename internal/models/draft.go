package models

import (
	"fmt"
	"strings"
	"time"
)

// DraftInvalidError reports the first pre-submission check a game draft
// failed. It is rendered inline next to the create-game form; no network
// call is made when it fires.
type DraftInvalidError struct {
	Message string
}

func (e *DraftInvalidError) Error() string { return e.Message }

// GameDraft is the create-game form input. Date and Time are the raw form
// fields ("2006-01-02" and "15:04"); they are combined into a single UTC
// instant on submission, the same way the create form composes date_time.
type GameDraft struct {
	Title           string
	Description     string
	Location        string
	Date            string
	Time            string
	DurationMinutes int
	MaxPlayers      int
	SkillLevelMin   int
	SkillLevelMax   int
}

// DateTime combines the date and time fields into a UTC instant.
func (d GameDraft) DateTime() (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05Z07:00", d.Date+"T"+d.Time+":00Z")
}

// Validate runs the pre-submission gate. Checks run in a fixed order and the
// first failure wins: required fields, skill range, future-dated start, then
// the field bounds the remote service would reject anyway.
func (d GameDraft) Validate(now time.Time) error {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Location) == "" || d.Date == "" || d.Time == "" {
		return &DraftInvalidError{Message: "please fill in all required fields"}
	}
	if d.SkillLevelMin > d.SkillLevelMax {
		return &DraftInvalidError{Message: "minimum skill level cannot be higher than maximum skill level"}
	}
	when, err := d.DateTime()
	if err != nil {
		return &DraftInvalidError{Message: "invalid game date or time"}
	}
	if !when.After(now) {
		return &DraftInvalidError{Message: "game date and time must be in the future"}
	}
	if n := len(strings.TrimSpace(d.Title)); n < 3 || n > 100 {
		return &DraftInvalidError{Message: "title must be between 3 and 100 characters"}
	}
	if n := len(strings.TrimSpace(d.Location)); n < 3 || n > 200 {
		return &DraftInvalidError{Message: "location must be between 3 and 200 characters"}
	}
	if d.DurationMinutes < 30 || d.DurationMinutes > 180 {
		return &DraftInvalidError{Message: "duration must be between 30 and 180 minutes"}
	}
	if d.MaxPlayers < 4 || d.MaxPlayers > 30 {
		return &DraftInvalidError{Message: "max players must be between 4 and 30"}
	}
	if d.SkillLevelMin < 1 || d.SkillLevelMax > 10 {
		return &DraftInvalidError{Message: fmt.Sprintf("skill levels must be between 1 and 10, got %d-%d", d.SkillLevelMin, d.SkillLevelMax)}
	}
	return nil
}

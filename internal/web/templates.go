// Package web holds the embedded HTML templates and the small presentation
// helpers the game cards need.
package web

import (
	"embed"
	"html/template"
	"time"

	"matchday/frontend/internal/models"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded page templates with the card helpers
// registered.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(FuncMap()).ParseFS(files, "templates/*.html"))
}

// FuncMap exposes the card helpers to the templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"statusIcon": StatusIcon,
		"skillBand":  SkillBand,
		"gameDate":   GameDate,
		"gameTime":   GameTime,
	}
}

// StatusIcon maps a game status to its card icon.
func StatusIcon(s models.GameStatus) string {
	switch s {
	case models.GameOpen:
		return "🟢"
	case models.GameFull:
		return "🔴"
	case models.GameCancelled:
		return "❌"
	case models.GameCompleted:
		return "✅"
	default:
		return "⚪"
	}
}

// SkillBand labels a skill range by its midpoint.
func SkillBand(min, max int) string {
	avg := float64(min+max) / 2
	switch {
	case avg <= 3:
		return "Beginner"
	case avg <= 6:
		return "Intermediate"
	default:
		return "Advanced"
	}
}

// GameDate formats the game's start for the card, e.g. "Sat, Sep 5".
func GameDate(t time.Time) string {
	return t.UTC().Format("Mon, Jan 2")
}

// GameTime formats the game's start time for the card, e.g. "6:30 PM".
func GameTime(t time.Time) string {
	return t.UTC().Format("3:04 PM")
}

package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"matchday/frontend/internal/controller"
	"matchday/frontend/internal/models"

	"github.com/gin-gonic/gin"
)

// Dashboard fetches the viewer-scoped game list and renders it with every
// card annotated by the decision engine. A failed fetch renders the retry
// affordance instead of the list.
func (h *Handler) Dashboard(c *gin.Context) {
	user := currentSession(c).User()

	list := controller.NewGameList(h.api, h.log, user)
	_ = list.Refresh(c.Request.Context())

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":      user,
		"State":     string(list.State()),
		"Games":     list.Games(),
		"Failure":   list.FailureMessage(),
		"Notices":   takeNotices(c),
		"Positions": models.Positions,
	})
}

// CreateGamePage renders an empty draft form with the usual defaults.
func (h *Handler) CreateGamePage(c *gin.Context) {
	c.HTML(http.StatusOK, "create_game.html", gin.H{
		"Draft": models.GameDraft{
			DurationMinutes: 90,
			MaxPlayers:      22,
			SkillLevelMin:   1,
			SkillLevelMax:   10,
		},
	})
}

// CreateGame runs the pre-submission gate and submits the draft. Gate
// failures re-render the form inline without touching the network.
func (h *Handler) CreateGame(c *gin.Context) {
	draft := draftFromForm(c)

	if err := draft.Validate(time.Now()); err != nil {
		var invalid *models.DraftInvalidError
		msg := "Invalid game details"
		if errors.As(err, &invalid) {
			msg = invalid.Message
		}
		c.HTML(http.StatusBadRequest, "create_game.html", gin.H{"Error": msg, "Draft": draft})
		return
	}

	creator := currentSession(c).User()
	game, err := h.api.CreateGame(c.Request.Context(), draft, creator.ID)
	if err != nil {
		c.HTML(http.StatusBadRequest, "create_game.html", gin.H{"Error": err.Error(), "Draft": draft})
		return
	}

	addNotice(c, controller.Notice{Kind: "success", Message: "Created " + game.Title})
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// JoinGame submits a join request through the controller and surfaces the
// outcome as a dashboard notice. The dashboard redirect re-derives every
// card from a fresh viewer-scoped fetch.
func (h *Handler) JoinGame(c *gin.Context) {
	gameID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	list := controller.NewGameList(h.api, h.log, currentSession(c).User())
	notice, err := list.Join(c.Request.Context(), gameID, c.PostForm("position_preference"))
	if err != nil && notice.Message == "" {
		notice = controller.Notice{Kind: "error", Message: err.Error()}
	}

	addNotice(c, notice)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// LeaveGame submits a leave request. The confirmation answered in the
// browser rides along as a form field; a declined prompt means no request
// is made at all.
func (h *Handler) LeaveGame(c *gin.Context) {
	gameID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	confirmed := c.PostForm("confirm") == "yes"
	list := controller.NewGameList(h.api, h.log, currentSession(c).User())
	notice, err := list.Leave(c.Request.Context(), gameID, func() bool { return confirmed })
	if errors.Is(err, controller.ErrNotConfirmed) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	if err != nil && notice.Message == "" {
		notice = controller.Notice{Kind: "error", Message: err.Error()}
	}

	addNotice(c, notice)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func draftFromForm(c *gin.Context) models.GameDraft {
	duration, _ := strconv.Atoi(c.DefaultPostForm("duration_minutes", "90"))
	maxPlayers, _ := strconv.Atoi(c.DefaultPostForm("max_players", "22"))
	skillMin, _ := strconv.Atoi(c.DefaultPostForm("skill_level_min", "1"))
	skillMax, _ := strconv.Atoi(c.DefaultPostForm("skill_level_max", "10"))

	return models.GameDraft{
		Title:           c.PostForm("title"),
		Description:     c.PostForm("description"),
		Location:        c.PostForm("location"),
		Date:            c.PostForm("date"),
		Time:            c.PostForm("time"),
		DurationMinutes: duration,
		MaxPlayers:      maxPlayers,
		SkillLevelMin:   skillMin,
		SkillLevelMax:   skillMax,
	}
}

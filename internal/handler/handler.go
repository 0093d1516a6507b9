package handler

import (
	"context"
	"net/http"
	"strings"

	"matchday/frontend/internal/controller"
	"matchday/frontend/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIClient is everything the handlers need from the remote game service.
// *gameapi.Client satisfies it; tests substitute fakes.
type APIClient interface {
	controller.GameClient
	CreateGame(ctx context.Context, draft models.GameDraft, creatorID int) (models.GameSnapshot, error)
	Login(ctx context.Context, username, password string) (models.UserProfile, error)
	Signup(ctx context.Context, input models.SignupInput) (models.UserProfile, error)
}

// Handler wires the page and form handlers to the remote service.
type Handler struct {
	api APIClient
	log *zap.Logger
}

// New builds a Handler.
func New(api APIClient, log *zap.Logger) *Handler {
	return &Handler{api: api, log: log}
}

// Register mounts all routes on the router.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/", h.Home)
	router.GET("/login", h.LoginPage)
	router.POST("/login", h.Login)
	router.GET("/signup", h.SignupPage)
	router.POST("/signup", h.Signup)
	router.POST("/logout", h.Logout)

	authed := router.Group("/")
	authed.Use(RequireLogin())
	{
		authed.GET("/dashboard", h.Dashboard)
		authed.GET("/games/new", h.CreateGamePage)
		authed.POST("/games", h.CreateGame)
		authed.POST("/games/:id/join", h.JoinGame)
		authed.POST("/games/:id/leave", h.LeaveGame)
	}
}

// Home routes the visitor by login state.
func (h *Handler) Home(c *gin.Context) {
	if currentSession(c).LoggedIn() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

// addNotice queues a one-shot notice for the next dashboard render.
func addNotice(c *gin.Context, n controller.Notice) {
	s := sessions.Default(c)
	s.AddFlash(n.Kind + "|" + n.Message)
	_ = s.Save()
}

// takeNotices drains the queued notices.
func takeNotices(c *gin.Context) []controller.Notice {
	s := sessions.Default(c)
	flashes := s.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	_ = s.Save()

	notices := make([]controller.Notice, 0, len(flashes))
	for _, f := range flashes {
		raw, ok := f.(string)
		if !ok {
			continue
		}
		kind, message := "success", raw
		if i := strings.IndexByte(raw, '|'); i >= 0 {
			kind, message = raw[:i], raw[i+1:]
		}
		notices = append(notices, controller.Notice{Kind: kind, Message: message})
	}
	return notices
}

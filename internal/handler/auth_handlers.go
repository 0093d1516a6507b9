package handler

import (
	"net/http"
	"strconv"
	"strings"

	"matchday/frontend/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginPage renders the login form.
func (h *Handler) LoginPage(c *gin.Context) {
	if currentSession(c).LoggedIn() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Username": ""})
}

// Login validates the form, exchanges credentials with the remote service
// and starts the session.
func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error":    "Username and password are required",
			"Username": username,
		})
		return
	}

	profile, err := h.api.Login(c.Request.Context(), username, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error":    err.Error(),
			"Username": username,
		})
		return
	}

	if err := currentSession(c).Login(profile); err != nil {
		h.log.Error("saving session failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error":    "Could not start your session. Please try again.",
			"Username": username,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// SignupPage renders the signup form.
func (h *Handler) SignupPage(c *gin.Context) {
	if currentSession(c).LoggedIn() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "signup.html", signupPageData(models.SignupInput{}, ""))
}

// Signup validates the form locally, creates the account remotely and logs
// the new user straight in.
func (h *Handler) Signup(c *gin.Context) {
	skill, _ := strconv.Atoi(c.DefaultPostForm("skill_level", "5"))
	input := models.SignupInput{
		Username:          strings.TrimSpace(c.PostForm("username")),
		Password:          c.PostForm("password"),
		FirstName:         strings.TrimSpace(c.PostForm("first_name")),
		LastName:          strings.TrimSpace(c.PostForm("last_name")),
		AgeRange:          c.PostForm("age_range"),
		Bio:               strings.TrimSpace(c.PostForm("bio")),
		SkillLevel:        skill,
		PreferredPosition: c.PostForm("preferred_position"),
		PlayingStyle:      c.PostForm("playing_style"),
	}

	if err := input.Validate(); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", signupPageData(input, err.Error()))
		return
	}

	profile, err := h.api.Signup(c.Request.Context(), input)
	if err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", signupPageData(input, err.Error()))
		return
	}

	if err := currentSession(c).Login(profile); err != nil {
		h.log.Error("saving session failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "signup.html", signupPageData(input, "Could not start your session. Please try again."))
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout ends the session and returns to the login page.
func (h *Handler) Logout(c *gin.Context) {
	if err := currentSession(c).Logout(); err != nil {
		h.log.Error("clearing session failed", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func signupPageData(input models.SignupInput, errMsg string) gin.H {
	return gin.H{
		"Error":         errMsg,
		"Input":         input,
		"Positions":     models.Positions,
		"PlayingStyles": models.PlayingStyles,
		"AgeRanges":     models.AgeRanges,
	}
}

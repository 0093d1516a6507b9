package gameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"matchday/frontend/internal/models"

	"go.uber.org/zap"
)

// Client is a thin typed interface over the remote game service. Every
// operation is single-shot: transport failures and non-2xx responses are
// returned to the caller unchanged, and retry policy is the caller's
// decision.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

// NewClient builds a client for the service at baseURL. The underlying
// http.Client carries no timeout; a hung request blocks until its context
// is cancelled.
func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
		log:     log,
	}
}

// region --- DTOs ---

type createGameRequest struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	Location        string  `json:"location"`
	DateTime        string  `json:"date_time"`
	DurationMinutes int     `json:"duration_minutes"`
	MaxPlayers      int     `json:"max_players"`
	SkillLevelMin   int     `json:"skill_level_min"`
	SkillLevelMax   int     `json:"skill_level_max"`
}

type joinGameRequest struct {
	PositionPreference *string `json:"position_preference"`
}

// JoinResult is the service's answer to a join request.
type JoinResult struct {
	Status           models.ParticipationStatus `json:"status"`
	Message          string                     `json:"message"`
	WaitlistPosition int                        `json:"waitlist_position,omitempty"`
}

// LeaveResult is the service's answer to a leave request.
type LeaveResult struct {
	Message string `json:"message"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// endregion

// ListGames fetches the full game list. When viewerID is non-zero the list
// is viewer-scoped and each snapshot carries the viewer's own participation
// status.
func (c *Client) ListGames(ctx context.Context, viewerID int) ([]models.GameSnapshot, error) {
	path := "/api/games"
	if viewerID != 0 {
		path += "?user_id=" + strconv.Itoa(viewerID)
	}

	var games []models.GameSnapshot
	if err := c.do(ctx, http.MethodGet, path, nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// CreateGame submits a validated draft and returns the snapshot the service
// created. Rejections of the draft itself come back as *ValidationError.
func (c *Client) CreateGame(ctx context.Context, draft models.GameDraft, creatorID int) (models.GameSnapshot, error) {
	when, err := draft.DateTime()
	if err != nil {
		return models.GameSnapshot{}, &ValidationError{Message: "invalid game date or time"}
	}

	body := createGameRequest{
		Title:           draft.Title,
		Location:        draft.Location,
		DateTime:        when.UTC().Format("2006-01-02T15:04:05Z"),
		DurationMinutes: draft.DurationMinutes,
		MaxPlayers:      draft.MaxPlayers,
		SkillLevelMin:   draft.SkillLevelMin,
		SkillLevelMax:   draft.SkillLevelMax,
	}
	if draft.Description != "" {
		body.Description = &draft.Description
	}

	var game models.GameSnapshot
	path := "/api/games?created_by=" + strconv.Itoa(creatorID)
	if err := c.do(ctx, http.MethodPost, path, body, &game); err != nil {
		var srv *ServerError
		if errors.As(err, &srv) && isRejection(srv.Status) {
			return models.GameSnapshot{}, &ValidationError{Message: srv.Message}
		}
		return models.GameSnapshot{}, err
	}
	return game, nil
}

// JoinGame asks the service to add the viewer to a game. The service decides
// between a confirmed slot and the waitlist.
func (c *Client) JoinGame(ctx context.Context, gameID, viewerID int, positionPreference string) (JoinResult, error) {
	body := joinGameRequest{}
	if positionPreference != "" {
		body.PositionPreference = &positionPreference
	}

	var res JoinResult
	path := fmt.Sprintf("/api/games/%d/join?user_id=%d", gameID, viewerID)
	if err := c.do(ctx, http.MethodPost, path, body, &res); err != nil {
		return JoinResult{}, err
	}
	return res, nil
}

// LeaveGame removes the viewer from a game's roster or waitlist.
func (c *Client) LeaveGame(ctx context.Context, gameID, viewerID int) (LeaveResult, error) {
	var res LeaveResult
	path := fmt.Sprintf("/api/games/%d/leave?user_id=%d", gameID, viewerID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &res); err != nil {
		return LeaveResult{}, err
	}
	return res, nil
}

// do runs one request/response cycle: encode the body, classify transport
// errors as *NetworkError, non-2xx statuses as *ServerError carrying the
// body's detail field, and decode a successful response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		buf = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("game service request failed", zap.String("path", path), zap.Error(err))
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		c.log.Warn("game service rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", eb.Detail))
		return &ServerError{Status: resp.StatusCode, Message: eb.Detail}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &ServerError{Status: resp.StatusCode, Message: "malformed response from game service"}
		}
	}
	return nil
}

// isRejection reports whether a status means the service refused the payload
// rather than failed outright.
func isRejection(status int) bool {
	return status == http.StatusBadRequest ||
		status == http.StatusConflict ||
		status == http.StatusUnprocessableEntity
}

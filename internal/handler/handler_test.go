package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"matchday/frontend/internal/gameapi"
	"matchday/frontend/internal/models"
	"matchday/frontend/internal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAPI struct {
	mu           sync.Mutex
	games        []models.GameSnapshot
	listErr      error
	joinRes      gameapi.JoinResult
	joinErr      error
	joinCalls    int
	leaveRes     gameapi.LeaveResult
	leaveErr     error
	leaveCalls   int
	created      []models.GameDraft
	createErr    error
	loginProfile models.UserProfile
	loginErr     error
	signupErr    error
}

func (f *fakeAPI) ListGames(ctx context.Context, viewerID int) ([]models.GameSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.games, f.listErr
}

func (f *fakeAPI) JoinGame(ctx context.Context, gameID, viewerID int, positionPreference string) (gameapi.JoinResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joinCalls++
	return f.joinRes, f.joinErr
}

func (f *fakeAPI) LeaveGame(ctx context.Context, gameID, viewerID int) (gameapi.LeaveResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leaveCalls++
	return f.leaveRes, f.leaveErr
}

func (f *fakeAPI) CreateGame(ctx context.Context, draft models.GameDraft, creatorID int) (models.GameSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return models.GameSnapshot{}, f.createErr
	}
	f.created = append(f.created, draft)
	return models.GameSnapshot{ID: 99, Title: draft.Title, Status: models.GameOpen}, nil
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return models.UserProfile{}, f.loginErr
	}
	return f.loginProfile, nil
}

func (f *fakeAPI) Signup(ctx context.Context, input models.SignupInput) (models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signupErr != nil {
		return models.UserProfile{}, f.signupErr
	}
	return models.UserProfile{ID: 7, Username: input.Username, FirstName: input.FirstName, LastName: input.LastName, SkillLevel: input.SkillLevel}, nil
}

func newApp(api APIClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("matchday", cookie.NewStore([]byte("test-secret"))))
	r.Use(SessionContext())
	r.SetHTMLTemplate(web.Templates())
	New(api, zap.NewNop()).Register(r)
	return r
}

type browser struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (b *browser) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return b.request(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.request(t, req)
}

func (b *browser) request(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		b.cookies = set
	}
	return w
}

var jamie = models.UserProfile{ID: 9, Username: "jamie88", FirstName: "Jamie", LastName: "Ortiz", SkillLevel: 6}

func loggedInBrowser(t *testing.T, api *fakeAPI) *browser {
	t.Helper()
	api.loginProfile = jamie
	b := &browser{router: newApp(api)}
	w := b.postForm(t, "/login", url.Values{"username": {"jamie88"}, "password": {"longenough"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
	return b
}

func openGame(id, createdBy int) models.GameSnapshot {
	return models.GameSnapshot{
		ID:            id,
		Title:         "Sunday pickup",
		Location:      "Riverside",
		Status:        models.GameOpen,
		CreatedBy:     createdBy,
		MaxPlayers:    10,
		SkillLevelMin: 1,
		SkillLevelMax: 10,
	}
}

func TestDashboardRequiresLogin(t *testing.T) {
	b := &browser{router: newApp(&fakeAPI{})}
	w := b.get(t, "/dashboard")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestHomeRoutesByLoginState(t *testing.T) {
	b := &browser{router: newApp(&fakeAPI{})}
	assert.Equal(t, "/login", b.get(t, "/").Header().Get("Location"))

	b = loggedInBrowser(t, &fakeAPI{})
	assert.Equal(t, "/dashboard", b.get(t, "/").Header().Get("Location"))
}

func TestLoginMissingFields(t *testing.T) {
	b := &browser{router: newApp(&fakeAPI{})}
	w := b.postForm(t, "/login", url.Values{"username": {"jamie88"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username and password are required")
}

func TestLoginBadCredentials(t *testing.T) {
	api := &fakeAPI{loginErr: &gameapi.ServerError{Status: http.StatusUnauthorized, Message: "invalid username or password"}}
	b := &browser{router: newApp(api)}
	w := b.postForm(t, "/login", url.Values{"username": {"jamie88"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")
}

func TestDashboardRendersAnnotatedGames(t *testing.T) {
	api := &fakeAPI{games: []models.GameSnapshot{openGame(1, 4), openGame(2, jamie.ID)}}
	b := loggedInBrowser(t, api)

	w := b.get(t, "/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Welcome back, Jamie")
	assert.Contains(t, body, "Sunday pickup")
	assert.Contains(t, body, "Join Game")
	assert.Contains(t, body, "Your Game")
	assert.Contains(t, body, "2 games available")
}

func TestDashboardFailedFetchShowsRetry(t *testing.T) {
	api := &fakeAPI{listErr: &gameapi.NetworkError{Err: assert.AnError}}
	b := loggedInBrowser(t, api)

	w := b.get(t, "/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Error Loading Games")
	assert.Contains(t, body, "Try Again")
}

func TestJoinSurfacesWaitlistNotice(t *testing.T) {
	api := &fakeAPI{
		games: []models.GameSnapshot{openGame(12, 4)},
		joinRes: gameapi.JoinResult{
			Status:           models.ParticipationWaitlisted,
			Message:          "Game is full, you are on the waitlist",
			WaitlistPosition: 3,
		},
	}
	b := loggedInBrowser(t, api)

	w := b.postForm(t, "/games/12/join", url.Values{"position_preference": {"Midfielder"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	body := b.get(t, "/dashboard").Body.String()
	assert.Contains(t, body, "#3")

	// the notice is one-shot
	assert.NotContains(t, b.get(t, "/dashboard").Body.String(), "#3")
}

func TestJoinFailureSurfacesServerMessage(t *testing.T) {
	api := &fakeAPI{
		games:   []models.GameSnapshot{openGame(12, 4)},
		joinErr: &gameapi.ServerError{Status: http.StatusBadRequest, Message: "you have already joined this game"},
	}
	b := loggedInBrowser(t, api)

	b.postForm(t, "/games/12/join", url.Values{})
	body := b.get(t, "/dashboard").Body.String()
	assert.Contains(t, body, "you have already joined this game")
}

func TestLeaveDeclinedMakesNoCall(t *testing.T) {
	api := &fakeAPI{games: []models.GameSnapshot{openGame(12, 4)}}
	b := loggedInBrowser(t, api)

	w := b.postForm(t, "/games/12/leave", url.Values{"confirm": {"no"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Zero(t, api.leaveCalls)
}

func TestLeaveConfirmed(t *testing.T) {
	api := &fakeAPI{
		games:    []models.GameSnapshot{openGame(12, 4)},
		leaveRes: gameapi.LeaveResult{Message: "You have left the game"},
	}
	b := loggedInBrowser(t, api)

	w := b.postForm(t, "/games/12/leave", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	api.mu.Lock()
	leaveCalls := api.leaveCalls
	api.mu.Unlock()
	assert.Equal(t, 1, leaveCalls)

	assert.Contains(t, b.get(t, "/dashboard").Body.String(), "You have left the game")
}

func TestCreateGameInvalidDraftIsInline(t *testing.T) {
	api := &fakeAPI{}
	b := loggedInBrowser(t, api)

	w := b.postForm(t, "/games", url.Values{
		"title":    {"Sunday pickup"},
		"location": {"Riverside"},
		"date":     {"2020-01-01"},
		"time":     {"18:30"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be in the future")

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Empty(t, api.created, "invalid draft must not reach the service")
}

func TestCreateGameSuccess(t *testing.T) {
	api := &fakeAPI{}
	b := loggedInBrowser(t, api)

	w := b.postForm(t, "/games", url.Values{
		"title":            {"Sunday pickup"},
		"location":         {"Riverside"},
		"date":             {"2099-09-06"},
		"time":             {"18:30"},
		"duration_minutes": {"90"},
		"max_players":      {"22"},
		"skill_level_min":  {"1"},
		"skill_level_max":  {"10"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	api.mu.Lock()
	created := api.created
	api.mu.Unlock()
	require.Len(t, created, 1)
	assert.Equal(t, "Sunday pickup", created[0].Title)

	assert.Contains(t, b.get(t, "/dashboard").Body.String(), "Created Sunday pickup")
}

func TestSignupValidatesLocally(t *testing.T) {
	api := &fakeAPI{}
	b := &browser{router: newApp(api)}

	w := b.postForm(t, "/signup", url.Values{
		"username":   {"ab"},
		"password":   {"longenough"},
		"first_name": {"Jamie"},
		"last_name":  {"Ortiz"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username must be at least 3 characters long")
}

func TestSignupLogsNewUserIn(t *testing.T) {
	api := &fakeAPI{}
	b := &browser{router: newApp(api)}

	w := b.postForm(t, "/signup", url.Values{
		"username":    {"jamie88"},
		"password":    {"longenough"},
		"first_name":  {"Jamie"},
		"last_name":   {"Ortiz"},
		"skill_level": {"6"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	assert.Contains(t, b.get(t, "/dashboard").Body.String(), "Welcome back, Jamie")
}

func TestLogoutEndsSession(t *testing.T) {
	b := loggedInBrowser(t, &fakeAPI{})

	w := b.postForm(t, "/logout", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	assert.Equal(t, "/login", b.get(t, "/dashboard").Header().Get("Location"))
}

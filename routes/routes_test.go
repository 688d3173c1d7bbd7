package routes

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/championship/brackets"
	"github.com/Dosada05/championship/handlers"
	"github.com/Dosada05/championship/middleware"
	"github.com/Dosada05/championship/models"
	"github.com/Dosada05/championship/services"
	"github.com/Dosada05/championship/storage"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("routes-secret")

type players struct{ cleared bool }

func (p *players) Register(_ context.Context, in services.RegisterPlayerInput) (*models.Player, error) {
	return &models.Player{ID: 1, Email: in.Email}, nil
}

func (p *players) ListPlayers(context.Context, services.ListPlayersInput) (*models.PlayerPage, error) {
	return &models.PlayerPage{Players: []models.Player{}, Page: 1}, nil
}

func (p *players) ClearAll(context.Context) (int64, error) {
	p.cleared = true
	return 0, nil
}

func (p *players) Wait() {}

type schedules struct{}

func (schedules) TeamPairings(context.Context, services.PairingsOptions) (*brackets.Schedule, error) {
	return &brackets.Schedule{}, nil
}

func (schedules) Knockout(context.Context, *uint64) (*brackets.TournamentResult, error) {
	return &brackets.TournamentResult{}, nil
}

func (schedules) Playoffs(context.Context, *uint64) (*brackets.PlayoffResult, error) {
	return &brackets.PlayoffResult{}, nil
}

func (schedules) ExportPairings(context.Context, services.PairingsOptions, io.Writer) error {
	return nil
}

func (schedules) ExportKnockout(context.Context, *uint64, io.Writer) error { return nil }

func (schedules) Publish(context.Context, int) (*storage.UploadResult, error) {
	return nil, services.ErrPublishingDisabled
}

func (schedules) Unpublish(context.Context, string) error { return nil }

type admins struct{}

func (admins) Login(context.Context, services.LoginInput) (*models.Admin, error) {
	return nil, services.ErrInvalidCredentials
}

func newRouter(t *testing.T, limiter *middleware.IPRateLimiter) (*chi.Mux, *players) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := &players{}
	router := chi.NewRouter()
	SetupRoutes(router,
		Options{JWTSecret: secret, AllowedOrigins: []string{"http://localhost:3000"}, RegisterLimiter: limiter, Logger: logger},
		handlers.NewPlayerHandler(p),
		handlers.NewScheduleHandler(schedules{}),
		handlers.NewAuthHandler(admins{}, string(secret)),
		handlers.NewWebSocketHandler(brackets.NewHub(logger), []string{"http://localhost:3000"}, logger),
	)
	return router, p
}

func adminToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		middleware.JWTClaimSubject: "admin@example.com",
		middleware.JWTClaimRole:    role,
		"exp":                      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPublicRoutes(t *testing.T) {
	router, _ := newRouter(t, nil)

	for _, path := range []string{"/health", "/api/players", "/api/team-pairings", "/api/knockout", "/api/playoffs"} {
		rec := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, p := newRouter(t, nil)

	requests := []*http.Request{
		httptest.NewRequest(http.MethodDelete, "/api/clear-all", nil),
		httptest.NewRequest(http.MethodPost, "/api/schedules/publish", nil),
		httptest.NewRequest(http.MethodDelete, "/api/schedules/abc", nil),
	}
	for _, req := range requests {
		rec := serve(router, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, req.URL.Path)
	}
	assert.False(t, p.cleared)
}

func TestAdminRoutesRejectOtherRoles(t *testing.T) {
	router, p := newRouter(t, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/clear-all", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "organizer"))

	assert.Equal(t, http.StatusUnauthorized, serve(router, req).Code)
	assert.False(t, p.cleared)
}

func TestAdminRoutesWithToken(t *testing.T) {
	router, p := newRouter(t, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/clear-all", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, string(models.RoleAdmin)))
	assert.Equal(t, http.StatusOK, serve(router, req).Code)
	assert.True(t, p.cleared)

	req = httptest.NewRequest(http.MethodPost, "/api/schedules/publish", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, string(models.RoleAdmin)))
	assert.Equal(t, http.StatusServiceUnavailable, serve(router, req).Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/schedules/abc", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, string(models.RoleAdmin)))
	assert.Equal(t, http.StatusNoContent, serve(router, req).Code)
}

func TestRegisterIsRateLimited(t *testing.T) {
	router, _ := newRouter(t, middleware.NewIPRateLimiter(2))

	body := `{"firstName":"A","lastName":"B","email":"a@b.co","address":"a@b.co","league":"L","club":"C"}`
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		codes = append(codes, serve(router, req).Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	// Listing is not throttled.
	assert.Equal(t, http.StatusOK, serve(router, httptest.NewRequest(http.MethodGet, "/api/players", nil)).Code)
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/register", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := serve(router, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerDoc(t *testing.T) {
	router, _ := newRouter(t, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Championship API")
	assert.Contains(t, rec.Body.String(), "/team-pairings")
}

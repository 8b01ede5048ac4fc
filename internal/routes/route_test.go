package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joshua-takyi/eventhub/internal/config"
	"github.com/joshua-takyi/eventhub/internal/container"
	"github.com/joshua-takyi/eventhub/internal/helpers"
	"github.com/joshua-takyi/eventhub/internal/models"
	"github.com/joshua-takyi/eventhub/internal/routes"
	"github.com/joshua-takyi/eventhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "route-test-secret"

type api struct {
	t      *testing.T
	router *gin.Engine
	store  *models.SQLRepo
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment:      "test",
		CORSOrigins:      []string{"http://localhost:3000"},
		MaxCommentLength: 500,
		DefaultPageSize:  20,
		MaxPageSize:      100,
	}
	logger := testutil.Logger(t)
	db := testutil.DB(t)
	verifier, err := helpers.NewTokenVerifier(testSecret, "", logger)
	require.NoError(t, err)

	c := container.NewContainer(cfg, logger, db, verifier)
	return &api{t: t, router: routes.SetupRoutes(c), store: models.NewSQLRepo(db)}
}

func (a *api) token(user *models.User) string {
	a.t.Helper()
	claims := helpers.Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(a.t, err)
	return signed
}

func (a *api) do(method, path, token string, body any) (*httptest.ResponseRecorder, models.ApiResponse) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var res models.ApiResponse
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	}
	return w, res
}

// dataID pulls data.id out of a response envelope.
func dataID(t *testing.T, res models.ApiResponse) int64 {
	t.Helper()
	data, ok := res.Data.(map[string]any)
	require.True(t, ok, "data is %T", res.Data)
	id, ok := data["id"].(float64)
	require.True(t, ok)
	return int64(id)
}

func TestHealth(t *testing.T) {
	a := newAPI(t)

	w, _ := a.do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCountryAccessControl(t *testing.T) {
	a := newAPI(t)
	admin := testutil.SeedUser(t, a.store, models.RoleAdmin)
	attendee := testutil.SeedUser(t, a.store, models.RoleAttendee)
	body := models.CreateCountryRequest{Name: "Poland", Code: "pl"}

	w, _ := a.do(http.MethodPost, "/api/v1/countries", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = a.do(http.MethodPost, "/api/v1/countries", "not-a-token", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = a.do(http.MethodPost, "/api/v1/countries", a.token(attendee), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, res := a.do(http.MethodPost, "/api/v1/countries", a.token(admin), body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, res.Success)

	w, res = a.do(http.MethodPost, "/api/v1/countries", a.token(admin), body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "duplicate_key", res.Code)

	w, _ = a.do(http.MethodGet, "/api/v1/countries/code/PL", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestErrorKindsMapToStatus(t *testing.T) {
	a := newAPI(t)
	admin := testutil.SeedUser(t, a.store, models.RoleAdmin)
	tok := a.token(admin)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"unknown country for city", http.MethodPost, "/api/v1/cities", models.CreateCityRequest{Name: "Atlantis", CountryCode: "ZZ"}, http.StatusNotFound, "not_found"},
		{"invalid country code", http.MethodPost, "/api/v1/countries", models.CreateCountryRequest{Name: "X", Code: "XYZ"}, http.StatusBadRequest, "invalid_argument"},
		{"missing event", http.MethodGet, "/api/v1/events/424242", nil, http.StatusNotFound, "not_found"},
		{"no events at all", http.MethodGet, "/api/v1/events", nil, http.StatusNotFound, "no_results_found"},
		{"unknown user name", http.MethodGet, "/api/v1/users?name=Nonexistent%20Person", nil, http.StatusNotFound, "no_results_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, res := a.do(tt.method, tt.path, tok, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.code, res.Code)
			assert.False(t, res.Success)
		})
	}

	w, _ := a.do(http.MethodGet, "/api/v1/events/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewFlow(t *testing.T) {
	a := newAPI(t)
	g := testutil.SeedGraph(t, a.store)
	anna := testutil.SeedUser(t, a.store, models.RoleAttendee)
	ben := testutil.SeedUser(t, a.store, models.RoleAttendee)
	eventPath := "/api/v1/events/" + strconv.FormatInt(g.Event.ID, 10)

	w, res := a.do(http.MethodGet, eventPath+"/summary", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no_results_found", res.Code)

	w, res = a.do(http.MethodPost, "/api/v1/reviews", a.token(anna), map[string]any{"event_id": g.Event.ID, "rating": 8})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	annaReview := dataID(t, res)

	w, _ = a.do(http.MethodPost, "/api/v1/reviews", a.token(ben), map[string]any{"event_id": g.Event.ID, "rating": 6, "comment": "Loud but fun"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, res = a.do(http.MethodPost, "/api/v1/reviews", a.token(ben), map[string]any{"event_id": g.Event.ID, "rating": 9})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", res.Code)

	w, res = a.do(http.MethodGet, eventPath+"/summary", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 7.0, summary["average_rating"], 1e-9)
	assert.EqualValues(t, 2, summary["total_reviews"])

	reviewPath := "/api/v1/reviews/" + strconv.FormatInt(annaReview, 10)
	w, _ = a.do(http.MethodDelete, reviewPath, a.token(ben), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = a.do(http.MethodDelete, reviewPath, a.token(anna), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEventOwnership(t *testing.T) {
	a := newAPI(t)
	g := testutil.SeedGraph(t, a.store)
	stranger := testutil.SeedUser(t, a.store, models.RoleOrganizer)
	eventPath := "/api/v1/events/" + strconv.FormatInt(g.Event.ID, 10)

	w, _ := a.do(http.MethodPatch, eventPath+"/status", a.token(stranger), map[string]any{"status": "cancelled"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, res := a.do(http.MethodPatch, eventPath+"/status", a.token(g.Organizer), map[string]any{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, res.Success)

	w, res = a.do(http.MethodPatch, eventPath+"/status", a.token(g.Organizer), map[string]any{"status": "published"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", res.Code)
}

func TestCreateEventUsesCaller(t *testing.T) {
	a := newAPI(t)
	g := testutil.SeedGraph(t, a.store)
	organizer := testutil.SeedUser(t, a.store, models.RoleOrganizer)
	attendee := testutil.SeedUser(t, a.store, models.RoleAttendee)
	body := map[string]any{
		"name":         "Night Market",
		"date":         time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
		"category_id":  g.Category.ID,
		"venue_id":     g.Venue.ID,
		"organizer_id": g.Organizer.ID,
	}

	w, _ := a.do(http.MethodPost, "/api/v1/events", a.token(attendee), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, res := a.do(http.MethodPost, "/api/v1/events", a.token(organizer), body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := res.Data.(map[string]any)
	assert.EqualValues(t, organizer.ID, data["organizer_id"])
	assert.Equal(t, "draft", data["status"])
}

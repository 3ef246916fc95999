package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse-srv/config"
	"brandpulse-srv/internal/middleware"
	"brandpulse-srv/internal/tracker/repository/memory"
	"brandpulse-srv/internal/tracker/usecase"
	"brandpulse-srv/pkg/log"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	uc := usecase.New(l, memory.New())
	mw := middleware.New(l, config.CORSConfig{}, config.RateLimitConfig{})

	r := gin.New()
	New(l, uc, nil).RegisterRoutes(r.Group(""), mw)
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func createTracker(t *testing.T, r *gin.Engine, body string) trackerResp {
	t.Helper()
	w, env := do(r, http.MethodPost, "/api/v1/trackers", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got trackerResp
	require.NoError(t, json.Unmarshal(env.Data, &got))
	return got
}

func TestCRUD(t *testing.T) {
	r := newTestRouter(t)

	created := createTracker(t, r, `{"influencer":"techguru","brand":"nike","platform":"YouTube","notes":"q3"}`)
	assert.Equal(t, "youtube", created.Platform)
	assert.NotEmpty(t, created.ID)

	w, env := do(r, http.MethodGet, "/api/v1/trackers/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got trackerResp
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created, got)

	w, env = do(r, http.MethodPut, "/api/v1/trackers/"+created.ID, `{"brand":"adidas"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "adidas", got.Brand)
	assert.Equal(t, "techguru", got.Influencer)
	assert.Equal(t, "q3", got.Notes)

	w, _ = do(r, http.MethodDelete, "/api/v1/trackers/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = do(r, http.MethodGet, "/api/v1/trackers/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestList_Paginated(t *testing.T) {
	r := newTestRouter(t)
	for _, name := range []string{"a", "b", "c"} {
		createTracker(t, r, `{"influencer":"`+name+`","brand":"nike"}`)
	}

	w, env := do(r, http.MethodGet, "/api/v1/trackers?page=1&limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got listResp
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got.Trackers, 2)
	assert.Equal(t, 3, got.Paginator.Total)
	assert.Equal(t, 2, got.Paginator.TotalPages)
	assert.True(t, got.Paginator.HasNext)
}

func TestCreate_Invalid(t *testing.T) {
	r := newTestRouter(t)

	w, env := do(r, http.MethodPost, "/api/v1/trackers", `{"brand":"nike"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	w, env = do(r, http.MethodPost, "/api/v1/trackers", `{"influencer":"techguru","brand":"nike","platform":"myspace"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "Platform")
}

func TestUpdate_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w, _ := do(r, http.MethodPut, "/api/v1/trackers/missing", `{"brand":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package room

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := NewRepo(openTestDB(t))
	router := gin.New()
	NewHandler(repo).RegisterRoutes(router.Group("/api"))
	return router, repo
}

func do(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRoomEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/createRoom", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Code, 6)
}

func TestGetRoomEndpoint(t *testing.T) {
	router, repo := newTestRouter(t)

	created, err := repo.Create(context.Background())
	require.NoError(t, err)

	w := do(router, http.MethodGet, "/api/room?roomCode="+created.Code, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/room?roomCode=NOSUCH", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodGet, "/api/room", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSavePreferencesEndpoint(t *testing.T) {
	router, repo := newTestRouter(t)

	created, err := repo.Create(context.Background())
	require.NoError(t, err)

	w := do(router, http.MethodPost, "/api/savePreferences",
		`{"roomCode":"`+created.Code+`","genre":"comedy","max_runtime":110}`)
	require.Equal(t, http.StatusOK, w.Code)

	prefs, err := repo.ListPreferences(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, "comedy", prefs[0].Genre)
	assert.Equal(t, 110, prefs[0].MaxRuntime)

	// unknown room
	w = do(router, http.MethodPost, "/api/savePreferences", `{"roomCode":"NOSUCH","genre":"drama"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// missing room code
	w = do(router, http.MethodPost, "/api/savePreferences", `{"genre":"drama"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

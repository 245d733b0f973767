package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comments-api/internal/auth"
	"comments-api/internal/handler"
	"comments-api/internal/repository"
	"comments-api/internal/service"
	"comments-api/internal/validator"
)

const testSecret = "router-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	router *gin.Engine
	store  *repository.MemoryCommentRepository
	token  string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	store := repository.NewMemoryCommentRepository()
	svc := service.NewCommentService(store, validator.NewValidator())

	token, err := auth.Sign(testSecret, "user-1", time.Hour)
	require.NoError(t, err)

	return &testApp{
		router: NewRouter(Deps{
			Comments: handler.NewCommentHandler(svc),
			Health:   handler.NewHealthHandler(store),
			Verifier: auth.NewVerifier(testSecret),
		}),
		store: store,
		token: token,
	}
}

func (a *testApp) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) post(body string) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, "/api/comments", body, map[string]string{auth.TokenHeader: a.token})
}

func TestRouter_CreateThenList(t *testing.T) {
	app := newTestApp(t)
	start := time.Now()

	w := app.post(`{"name":"Ada","email":"ada@example.com","comment":"first"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var first handler.CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Ada", first.Name)

	date, err := time.Parse(handler.TimeFormat, first.Date)
	require.NoError(t, err)
	assert.False(t, date.Before(start))

	time.Sleep(2 * time.Millisecond)
	w = app.post(`{"name":"Bob","email":"bob@example.com","comment":"second"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/api/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []handler.CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Comment)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestRouter_CreatedDateNeverBeforeRequestStart(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 200; i++ {
		start := time.Now()
		w := app.post(`{"name":"Ada","email":"ada@example.com","comment":"timing"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var created handler.CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		date, err := time.Parse(handler.TimeFormat, created.Date)
		require.NoError(t, err)
		require.False(t, date.Before(start), "create %d: date %s before start %s", i, date, start)
	}
}

func TestRouter_IdenticalRequestsCreateDistinctRecords(t *testing.T) {
	app := newTestApp(t)
	body := `{"name":"Ada","email":"ada@example.com","comment":"same"}`

	var a, b handler.CommentResponse
	w := app.post(body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))

	w = app.post(body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, app.store.Len())
}

func TestRouter_AuthRunsBeforeValidation(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		message string
	}{
		{
			name:    "missing token",
			headers: nil,
			message: auth.ErrMissingToken.Error(),
		},
		{
			name:    "wrong secret",
			headers: map[string]string{auth.TokenHeader: mustSign(t, "other-secret", time.Hour)},
			message: auth.ErrInvalidToken.Error(),
		},
		{
			name:    "expired token",
			headers: map[string]string{"Authorization": "Bearer " + mustSign(t, testSecret, -time.Minute)},
			message: auth.ErrInvalidToken.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			// Body is invalid too; auth must win.
			w := app.do(http.MethodPost, "/api/comments", `{}`, tt.headers)

			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, w.Body.String())
			assert.Equal(t, 0, app.store.Len())
		})
	}
}

func TestRouter_ValidationFailureStoresNothing(t *testing.T) {
	app := newTestApp(t)

	w := app.post(`{"name":"","email":"nope","comment":""}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[
		{"field":"name","message":"Name is required"},
		{"field":"email","message":"Valid email is required"},
		{"field":"comment","message":"Comment is required"}
	]}`, w.Body.String())
	assert.Equal(t, 0, app.store.Len())
}

func TestRouter_ListIsPublic(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/comments", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_PanicAnswersServerError(t *testing.T) {
	app := newTestApp(t)
	app.router.GET("/api/comments/boom", func(c *gin.Context) {
		panic("unexpected nil store")
	})

	w := app.do(http.MethodGet, "/api/comments/boom", "", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/ready", "", nil).Code)
	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/live", "", nil).Code)

	w := app.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "comments_api_")
}

func mustSign(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	token, err := auth.Sign(secret, "user-1", ttl)
	require.NoError(t, err)
	return token
}

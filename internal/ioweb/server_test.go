package ioweb_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirthatlas/tirthdb/internal/ioweb"
	"github.com/tirthatlas/tirthdb/pkg/config"
	"github.com/tirthatlas/tirthdb/pkg/search"
	"github.com/tirthatlas/tirthdb/pkg/wiki"
)

type stubSearcher struct {
	recs []wiki.Record
	err  error
	got  *search.Params
}

func (s *stubSearcher) Search(
	_ context.Context,
	p *search.Params,
) ([]wiki.Record, error) {
	s.got = p
	return s.recs, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    []wiki.Record   `json:"data"`
	Query   json.RawMessage `json:"query"`
}

func doGet(
	t *testing.T,
	stub *stubSearcher,
	target string,
) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	h := ioweb.New(config.New(), stub).Handler()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var env envelope
	if strings.HasPrefix(target, "/api/search") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestHealth(t *testing.T) {
	w, _ := doGet(t, &stubSearcher{}, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestSearchEmptyRequest(t *testing.T) {
	stub := &stubSearcher{}
	w, env := doGet(t, stub, "/api/search")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Message, "guidance, not an error")
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Data)
	assert.Nil(t, stub.got, "compositor never reached")
}

func TestSearchDefaults(t *testing.T) {
	stub := &stubSearcher{recs: []wiki.Record{{ID: 1, Name: "Temple"}}}
	w, env := doGet(t, stub, "/api/search?q=temple")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Len(t, env.Data, 1)
	assert.Contains(t, env.Message, "1 results")

	require.NotNil(t, stub.got)
	assert.Equal(t, "temple", stub.got.Query)
	assert.Equal(t, search.DefaultRadius, stub.got.Radius)
	assert.Equal(t, search.DefaultLimit, stub.got.Limit)
	assert.Zero(t, stub.got.Offset)
}

func TestSearchFilterNormalized(t *testing.T) {
	stub := &stubSearcher{}
	_, _ = doGet(t, stub, "/api/search?sect=svet&place=%20pali%20")

	require.NotNil(t, stub.got)
	assert.Equal(t, "SVET", stub.got.Sect)
	assert.Equal(t, "PALI", stub.got.Place)
}

func TestSearchLocation(t *testing.T) {
	stub := &stubSearcher{}
	_, _ = doGet(t, stub,
		"/api/search?latitude=21.485&longitude=71.829&radius=5000")

	require.NotNil(t, stub.got)
	require.NotNil(t, stub.got.Latitude)
	require.NotNil(t, stub.got.Longitude)
	assert.InDelta(t, 21.485, *stub.got.Latitude, 1e-9)
	assert.InDelta(t, 71.829, *stub.got.Longitude, 1e-9)
	assert.InDelta(t, 5000, stub.got.Radius, 1e-9)
}

func TestSearchValidation(t *testing.T) {
	tests := []struct {
		msg    string
		target string
	}{
		{"query too long",
			"/api/search?q=" + strings.Repeat("a", 101)},
		{"filter too long", "/api/search?sect=toolong"},
		{"latitude alone", "/api/search?latitude=21.485"},
		{"longitude alone", "/api/search?longitude=71.829"},
		{"latitude range",
			"/api/search?latitude=91&longitude=71.829"},
		{"longitude range",
			"/api/search?latitude=21.485&longitude=181"},
		{"latitude not a number",
			"/api/search?latitude=abc&longitude=71.829"},
		{"radius range", "/api/search?q=x&radius=10001"},
		{"radius negative", "/api/search?q=x&radius=-1"},
		{"limit zero", "/api/search?q=x&limit=0"},
		{"limit range", "/api/search?q=x&limit=101"},
		{"limit not an integer", "/api/search?q=x&limit=abc"},
		{"offset range", "/api/search?q=x&offset=1001"},
	}

	for _, v := range tests {
		stub := &stubSearcher{}
		w, env := doGet(t, stub, v.target)
		assert.Equal(t, http.StatusBadRequest, w.Code, v.msg)
		assert.False(t, env.Success, v.msg)
		assert.NotEmpty(t, env.Message, v.msg)
		assert.Nil(t, stub.got, v.msg)
	}
}

func TestSearchFailure(t *testing.T) {
	stub := &stubSearcher{err: errors.New("index corrupt")}
	w, env := doGet(t, stub, "/api/search?q=temple")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, env.Success)
	assert.NotContains(t, env.Message, "corrupt",
		"internal detail stays server-side")
}

func TestNotFound(t *testing.T) {
	w, _ := doGet(t, &stubSearcher{}, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body["error"])
}

func TestMethodNotAllowed(t *testing.T) {
	h := ioweb.New(config.New(), &stubSearcher{}).Handler()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(
		http.MethodPost, "/api/search?q=x", nil,
	))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHeaders(t *testing.T) {
	w, _ := doGet(t, &stubSearcher{}, "/health")

	h := w.Header()
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, h.Get("X-Request-Id"))
}

func TestPreflight(t *testing.T) {
	h := ioweb.New(config.New(), &stubSearcher{}).Handler()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(
		http.MethodOptions, "/api/search", nil,
	))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, OPTIONS",
		w.Header().Get("Access-Control-Allow-Methods"))
}

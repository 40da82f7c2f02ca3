package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/interview-deck/config"
	_ "github.com/daniilsolovey/interview-deck/docs"
)

func TestNew_FallbackMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(config.Default(), nil, logger)
	require.NoError(t, err)

	assert.Nil(t, a.DB)
	assert.False(t, a.Manager.Remote())

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"StudyPage", http.MethodGet, "/", "", http.StatusOK},
		{"QuestionModal", http.MethodGet, "/questions/q-biz-1", "", http.StatusOK},
		{"AdminEditor", http.MethodGet, "/admin/questions", "", http.StatusOK},
		{"Sections", http.MethodGet, "/api/v1/sections", "", http.StatusOK},
		{"Health", http.MethodGet, "/health", "", http.StatusOK},
		{"SwaggerDoc", http.MethodGet, "/swagger/doc.json", "", http.StatusOK},
		{"Stylesheet", http.MethodGet, "/static/app.css", "", http.StatusOK},
		{"RPC", http.MethodPost, "/v1/rpc/", `{"jsonrpc":"2.0","id":1,"method":"deck.categories"}`, http.StatusOK},
		{"UnknownRoute", http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			a.Echo.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

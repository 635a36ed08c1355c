package dashboard

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilaca/release-dashboard/internal/domain"
	"github.com/vilaca/release-dashboard/internal/prlink"
	"github.com/vilaca/release-dashboard/internal/service"
)

// mockRenderer is a test double for Renderer (follows FIRST - Independent).
type mockRenderer struct {
	healthErr   error
	releasesErr error
}

func (m *mockRenderer) RenderHealth(w io.Writer) error {
	if m.healthErr != nil {
		return m.healthErr
	}
	_, err := w.Write([]byte(`{"status":"ok"}`))
	return err
}

func (m *mockRenderer) RenderReleases(w io.Writer, releases []domain.Release) error {
	if m.releasesErr != nil {
		return m.releasesErr
	}
	_, err := fmt.Fprintf(w, "mock releases %d", len(releases))
	return err
}

func (m *mockRenderer) RenderRelease(w io.Writer, view *service.ReleaseView) error {
	_, err := fmt.Fprintf(w, "mock release %s", view.Release.Version)
	return err
}

func (m *mockRenderer) RenderReleaseJSON(w io.Writer, view *service.ReleaseView) error {
	_, err := fmt.Fprintf(w, `{"version":%q}`, view.Release.Version)
	return err
}

func (m *mockRenderer) RenderPullRequestLink(w io.Writer, link prlink.Link) error {
	_, err := io.WriteString(w, link.HTML())
	return err
}

// mockLogger is a test double for Logger.
type mockLogger struct {
	messages []string
}

func (m *mockLogger) Printf(format string, v ...interface{}) {
	m.messages = append(m.messages, format)
}

func newTestRouter(t *testing.T, renderer Renderer) (http.Handler, *mockLogger) {
	t.Helper()

	svc := service.NewReleaseService(prlink.NewRenderer(nil))
	svc.Replace(&service.Catalog{
		Repositories: []domain.Repository{
			{Name: "api", URL: "https://github.com/acme/api", Provider: domain.Provider{ID: "github"}},
			{Name: "web", URL: "https://gitlab.com/acme/web", Provider: domain.Provider{ID: "gitlab"}},
		},
		Releases: []domain.Release{
			{Version: "1.0.0", Repository: "api", Commits: []domain.Commit{{ID: "abc", PullRequestID: "42"}}},
		},
	})

	logger := &mockLogger{}
	return NewRouter(NewHandler(renderer, logger, svc)), logger
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// TestHandleHealth tests the health check endpoint.
// Follows AAA (Arrange, Act, Assert) and FIRST principles.
func TestHandleHealth(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t, &mockRenderer{})

	// Act
	rec := get(t, router, "/api/health")

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleHealth_RenderError(t *testing.T) {
	router, logger := newTestRouter(t, &mockRenderer{healthErr: errors.New("render failed")})

	rec := get(t, router, "/api/health")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Len(t, logger.messages, 1)
}

func TestHandleReleases(t *testing.T) {
	router, _ := newTestRouter(t, &mockRenderer{})

	rec := get(t, router, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mock releases 1", rec.Body.String())
}

func TestHandleRelease(t *testing.T) {
	router, _ := newTestRouter(t, &mockRenderer{})

	rec := get(t, router, "/releases/1.0.0")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mock release 1.0.0", rec.Body.String())

	rec = get(t, router, "/releases/2.0.0")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleReleaseJSON(t *testing.T) {
	router, _ := newTestRouter(t, NewHTMLRenderer())

	rec := get(t, router, "/api/releases/1.0.0?inline=true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://github.com/acme/api/pull/42")
	assert.Contains(t, rec.Body.String(), "inline-commit")

	rec = get(t, router, "/api/releases/1.0.0?inline=sometimes")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePullRequestLink(t *testing.T) {
	router, _ := newTestRouter(t, NewHTMLRenderer())

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantBody string
	}{
		{
			name:     "github button",
			target:   "/api/pull-request-link?repository=api&id=42",
			wantCode: http.StatusOK,
			wantBody: `class="btn btn-default btn-sm" href="https://github.com/acme/api/pull/42"`,
		},
		{
			name:     "github inline",
			target:   "/api/pull-request-link?repository=api&id=42&inline=1",
			wantCode: http.StatusOK,
			wantBody: `class="inline-commit"`,
		},
		{
			name:     "unknown provider",
			target:   "/api/pull-request-link?repository=web&id=3",
			wantCode: http.StatusOK,
			wantBody: "<span>#3</span>",
		},
		{
			name:     "unknown repository",
			target:   "/api/pull-request-link?repository=nope&id=3",
			wantCode: http.StatusNotFound,
		},
		{
			name:     "missing repository",
			target:   "/api/pull-request-link?id=42",
			wantCode: http.StatusBadRequest,
			wantBody: "repository is required",
		},
		{
			name:     "missing id",
			target:   "/api/pull-request-link?repository=api",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad inline",
			target:   "/api/pull-request-link?repository=api&id=3&inline=x",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, router, tt.target)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t, &mockRenderer{})

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

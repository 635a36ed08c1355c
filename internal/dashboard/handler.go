package dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vilaca/release-dashboard/internal/domain"
	"github.com/vilaca/release-dashboard/internal/prlink"
	"github.com/vilaca/release-dashboard/internal/service"
)

// Handler handles HTTP requests for the dashboard.
// Each handler method has a Single Responsibility (SRP).
type Handler struct {
	renderer       Renderer
	logger         Logger
	releaseService ReleaseService
}

// Logger interface for logging operations (Interface Segregation Principle).
type Logger interface {
	Printf(format string, v ...interface{})
}

// ReleaseService interface for release operations (Dependency Inversion Principle).
type ReleaseService interface {
	Releases() []domain.Release
	Release(version string, inline bool) (*service.ReleaseView, error)
	PullRequestLink(repository, pullRequestID string, inline bool) (prlink.Link, error)
}

// NewHandler creates a new Handler with injected dependencies (Dependency Inversion Principle).
func NewHandler(renderer Renderer, logger Logger, releaseService ReleaseService) *Handler {
	return &Handler{
		renderer:       renderer,
		logger:         logger,
		releaseService: releaseService,
	}
}

// NewRouter returns a router with all dashboard routes registered.
func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.handleReleases).Methods(http.MethodGet)
	r.HandleFunc("/releases/{version}", h.handleRelease).Methods(http.MethodGet)
	r.HandleFunc("/api/health", h.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/releases/{version}", h.handleReleaseJSON).Methods(http.MethodGet)
	r.HandleFunc("/api/pull-request-link", h.handlePullRequestLink).Methods(http.MethodGet)
}

// handleHealth serves the health check endpoint.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.renderer.RenderHealth(w); err != nil {
		h.logger.Printf("failed to render health: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleReleases serves the release list page.
func (h *Handler) handleReleases(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.renderer.RenderReleases(w, h.releaseService.Releases()); err != nil {
		h.logger.Printf("failed to render releases: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleRelease serves a release detail page with button-style pull request links.
func (h *Handler) handleRelease(w http.ResponseWriter, r *http.Request) {
	version := mux.Vars(r)["version"]

	view, err := h.releaseService.Release(version, false)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.RenderRelease(w, view); err != nil {
		h.logger.Printf("failed to render release %s: %v", version, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleReleaseJSON serves a release with rendered pull request fragments.
// ?inline=true switches the fragments to the inline style.
func (h *Handler) handleReleaseJSON(w http.ResponseWriter, r *http.Request) {
	version := mux.Vars(r)["version"]

	inline, err := parseInline(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.releaseService.Release(version, inline)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := h.renderer.RenderReleaseJSON(w, view); err != nil {
		h.logger.Printf("failed to render release JSON %s: %v", version, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handlePullRequestLink serves a single link fragment for embedding.
func (h *Handler) handlePullRequestLink(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	inline, err := parseInline(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	link, err := h.releaseService.PullRequestLink(query.Get("repository"), query.Get("id"), inline)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.RenderPullRequestLink(w, link); err != nil {
		h.logger.Printf("failed to render pull request link: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// writeError maps service and link errors onto HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrReleaseNotFound), errors.Is(err, service.ErrRepositoryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, prlink.ErrMissingRepository),
		errors.Is(err, prlink.ErrMissingProvider),
		errors.Is(err, prlink.ErrMissingPullRequestID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Printf("request failed: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func parseInline(r *http.Request) (bool, error) {
	v := r.URL.Query().Get("inline")
	if v == "" {
		return false, nil
	}
	inline, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New("inline must be a boolean")
	}
	return inline, nil
}

package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/inkpost/inkpost-api/internal/api/shared"
	"github.com/inkpost/inkpost-api/internal/domain"
	"github.com/inkpost/inkpost-api/internal/platform/logger"
)

// defaultListLimit bounds unpaginated listing requests.
const defaultListLimit = 20

// PostService defines the pipeline operations the handler depends on.
type PostService interface {
	GeneratePost(ctx context.Context, prompt string) (*domain.Post, error)
	GetPost(ctx context.Context, slug string) (*domain.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*domain.Post, error)
}

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postService PostService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService PostService, log *slog.Logger) *PostHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PostHandler{
		postService: postService,
		validator:   validator.New(),
		logger:      log.With(slog.String("component", "post_handler")),
	}
}

// GeneratePost handles POST /api/generate-post requests
func (h *PostHandler) GeneratePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GeneratePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Prompt is required")
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		HandleAPIError(w, r, domain.ErrEmptyPrompt)
		return
	}

	post, err := h.postService.GeneratePost(r.Context(), req.Prompt)
	if err != nil {
		log.Debug("generation pipeline failed", slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GeneratePostResponse{
		Success: true,
		Post:    postToResponse(post),
		Message: "Blog post generated and saved successfully!",
	})
}

// GetPost handles GET /api/posts/{slug} requests
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Slug is required")
		return
	}

	post, err := h.postService.GetPost(r.Context(), slug)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// ListPosts handles GET /api/posts requests
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultListLimit)
	offset := queryInt(r, "offset", 0)

	posts, err := h.postService.ListPosts(r.Context(), limit, offset)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	summaries := make([]PostSummaryResponse, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, postToSummaryResponse(post))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summaries)
}

// queryInt reads an integer query parameter, falling back on absence or
// garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

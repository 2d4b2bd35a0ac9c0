package api

import (
	"time"

	"github.com/inkpost/inkpost-api/internal/domain"
)

// GeneratePostRequest represents the request body for generating a post
type GeneratePostRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// PostResponse represents the response data for a stored post
type PostResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Excerpt   string         `json:"excerpt"`
	Content   string         `json:"content"`
	Meta      map[string]any `json:"meta"`
	CreatedAt time.Time      `json:"created_at"`
}

// GeneratePostResponse is the success envelope for the generation endpoint
type GeneratePostResponse struct {
	Success bool         `json:"success"`
	Post    PostResponse `json:"post"`
	Message string       `json:"message"`
}

// PostSummaryResponse is the listing shape: everything but the body.
type PostSummaryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	CreatedAt time.Time `json:"created_at"`
}

// postToResponse converts a domain.Post to a PostResponse
func postToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Slug:      post.Slug,
		Excerpt:   post.Excerpt,
		Content:   post.Content,
		Meta:      post.Meta,
		CreatedAt: post.CreatedAt,
	}
}

// postToSummaryResponse converts a domain.Post to a PostSummaryResponse
func postToSummaryResponse(post *domain.Post) PostSummaryResponse {
	return PostSummaryResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Slug:      post.Slug,
		Excerpt:   post.Excerpt,
		CreatedAt: post.CreatedAt,
	}
}

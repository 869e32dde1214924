package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"profeed/app/models"
	"profeed/app/repositories"

	"go.uber.org/zap"
)

// UserHeader carries the caller's opaque user id. Identity is resolved
// upstream; handlers trust the value as given.
const UserHeader = "X-User-ID"

// PostResponse is the wire shape of a post for one viewer. Counters and the
// viewer flags are derived from the membership sets at render time.
type PostResponse struct {
	ID           string            `json:"id"`
	Author       models.Author     `json:"author"`
	Content      string            `json:"content"`
	Category     models.Category   `json:"category"`
	Tags         []string          `json:"tags"`
	Visibility   models.Visibility `json:"visibility"`
	CreatedAt    time.Time         `json:"createdAt"`
	Likes        int               `json:"likes"`
	Bookmarks    int               `json:"bookmarks"`
	Comments     int               `json:"comments"`
	Views        int               `json:"views"`
	IsLiked      bool              `json:"isLiked"`
	IsBookmarked bool              `json:"isBookmarked"`
}

// NewPostResponse renders post as seen by viewerID (may be empty).
func NewPostResponse(post *models.Post, viewerID string) PostResponse {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostResponse{
		ID:           post.ID,
		Author:       post.Author,
		Content:      post.Content,
		Category:     post.Category,
		Tags:         tags,
		Visibility:   post.Visibility,
		CreatedAt:    post.CreatedAt,
		Likes:        post.Likes(),
		Bookmarks:    post.Bookmarks(),
		Comments:     post.Comments,
		Views:        post.Views,
		IsLiked:      viewerID != "" && post.IsLikedBy(viewerID),
		IsBookmarked: viewerID != "" && post.IsBookmarkedBy(viewerID),
	}
}

func newPostResponses(posts []*models.Post, viewerID string) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p, viewerID))
	}
	return out
}

func viewerID(r *http.Request) string {
	return r.Header.Get(UserHeader)
}

// responder holds the helpers for consistent response handling
type responder struct {
	logger *zap.SugaredLogger
}

func (rs responder) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rs.logger.Warnw("failed to encode response", "error", err)
	}
}

func (rs responder) sendError(w http.ResponseWriter, message string, status int) {
	rs.sendJSON(w, status, map[string]string{"error": message})
}

// sendServiceError maps engine errors onto HTTP statuses.
func (rs responder) sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		rs.sendError(w, verr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, repositories.ErrNotFound):
		rs.sendError(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, repositories.ErrUnavailable):
		rs.logger.Warnw("store unavailable", "path", r.URL.Path, "error", err)
		w.Header().Set("Retry-After", "1")
		rs.sendError(w, "Service temporarily unavailable", http.StatusServiceUnavailable)
	default:
		rs.logger.Errorw("request failed", "path", r.URL.Path, "error", err)
		rs.sendError(w, "Internal server error", http.StatusInternalServerError)
	}
}

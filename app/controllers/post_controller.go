package controllers

import (
	"encoding/json"
	"net/http"

	"profeed/app/models"
	"profeed/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// PostController handles HTTP requests for single posts and engagement
type PostController struct {
	responder
	postService       *services.PostService
	engagementService *services.EngagementService
}

type createPostRequest struct {
	Author     models.Author     `json:"author"`
	Content    string            `json:"content"`
	Category   models.Category   `json:"category"`
	Tags       []string          `json:"tags"`
	Visibility models.Visibility `json:"visibility"`
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, engagementService *services.EngagementService, logger *zap.SugaredLogger) *PostController {
	return &PostController{
		responder:         responder{logger: logger},
		postService:       postService,
		engagementService: engagementService,
	}
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(req.Author, req.Content, req.Category, req.Tags, req.Visibility)
	if err != nil {
		pc.sendServiceError(w, r, err)
		return
	}
	pc.logger.Debugw("post created", "id", post.ID, "category", post.Category)

	w.Header().Set("Location", "/api/posts/"+post.ID)
	pc.sendJSON(w, http.StatusCreated, NewPostResponse(post, viewerID(r)))
}

// Show handles displaying a single post. Each read counts as a view.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.engagementService.RecordView(mux.Vars(r)["id"])
	if err != nil {
		pc.sendServiceError(w, r, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, NewPostResponse(post, viewerID(r)))
}

// Like toggles the caller's like on a post
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	pc.toggle(w, r, "like", pc.engagementService.ToggleLike)
}

// Bookmark toggles the caller's bookmark on a post
func (pc *PostController) Bookmark(w http.ResponseWriter, r *http.Request) {
	pc.toggle(w, r, "bookmark", pc.engagementService.ToggleBookmark)
}

func (pc *PostController) toggle(w http.ResponseWriter, r *http.Request, action string, fn func(postID, userID string) (*models.Post, error)) {
	userID := viewerID(r)
	if userID == "" {
		pc.sendError(w, "Missing "+UserHeader+" header", http.StatusUnauthorized)
		return
	}

	post, err := fn(mux.Vars(r)["id"], userID)
	if err != nil {
		pc.sendServiceError(w, r, err)
		return
	}
	pc.logger.Debugw("engagement toggled", "action", action, "post", post.ID, "user", userID)
	pc.sendJSON(w, http.StatusOK, NewPostResponse(post, userID))
}

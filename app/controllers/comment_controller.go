package controllers

import (
	"encoding/json"
	"net/http"

	"profeed/app/models"
	"profeed/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CommentController handles HTTP requests for post comments
type CommentController struct {
	responder
	commentService *services.CommentService
}

type createCommentRequest struct {
	Author  models.Author `json:"author"`
	Content string        `json:"content"`
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, logger *zap.SugaredLogger) *CommentController {
	return &CommentController{
		responder:      responder{logger: logger},
		commentService: commentService,
	}
}

// Index lists all comments for a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListComments(mux.Vars(r)["id"])
	if err != nil {
		cc.sendServiceError(w, r, err)
		return
	}
	cc.sendJSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}

// Create adds a comment to a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Author.ID == "" {
		req.Author.ID = viewerID(r)
	}

	comment, err := cc.commentService.AddComment(mux.Vars(r)["id"], req.Author, req.Content)
	if err != nil {
		cc.sendServiceError(w, r, err)
		return
	}
	cc.sendJSON(w, http.StatusCreated, comment)
}

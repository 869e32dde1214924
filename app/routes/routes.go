package routes

import (
	"encoding/json"
	"net/http"

	"profeed/app/controllers"
	"profeed/app/middleware"
	"profeed/app/repositories"
	"profeed/app/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SetupRoutes wires repositories to services and controllers and returns
// the API router.
func SetupRoutes(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, logger *zap.SugaredLogger) *mux.Router {
	postService := services.NewPostService(postRepo)
	engagementService := services.NewEngagementService(postRepo)
	feedService := services.NewFeedService(postRepo, nil)
	commentService := services.NewCommentService(commentRepo)

	feedController := controllers.NewFeedController(feedService, logger)
	postController := controllers.NewPostController(postService, engagementService, logger)
	commentController := controllers.NewCommentController(commentService, logger)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
	})

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	api.HandleFunc("/feed", feedController.Index).Methods(http.MethodGet)
	api.HandleFunc("/taxonomy", feedController.Taxonomy).Methods(http.MethodGet)

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Create).Methods(http.MethodPost)
	posts.HandleFunc("/{id}", postController.Show).Methods(http.MethodGet)
	posts.HandleFunc("/{id}/like", postController.Like).Methods(http.MethodPost)
	posts.HandleFunc("/{id}/bookmark", postController.Bookmark).Methods(http.MethodPost)

	// Comments API endpoints
	posts.HandleFunc("/{id}/comments", commentController.Index).Methods(http.MethodGet)
	posts.HandleFunc("/{id}/comments", commentController.Create).Methods(http.MethodPost)

	return router
}

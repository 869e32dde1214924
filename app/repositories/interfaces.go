package repositories

import "profeed/app/models"

// PostRepository defines the interface for post data access. Posts are
// never updated wholesale; every change goes through Mutate.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	// All returns copies of every post in insertion order.
	All() ([]*models.Post, error)
	// Mutate applies fn to the post as one atomic read-modify-write. An
	// error from fn aborts the write.
	Mutate(id string, fn func(post *models.Post) error) (*models.Post, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create stores the comment and bumps the parent post's comment counter
	// in the same write.
	Create(comment *models.Comment) error
	ListByPost(postID string) ([]*models.Comment, error)
}

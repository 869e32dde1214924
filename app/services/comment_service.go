package services

import (
	"profeed/app/models"
	"profeed/app/repositories"
)

// CommentService handles business logic for post comments
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// AddComment validates and stores a comment; the post's comment counter is
// bumped by the repository in the same write.
func (s *CommentService) AddComment(postID string, author models.Author, content string) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:     postID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Content:    content,
	}
	comment.BeforeCreate()

	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the comments of a post oldest first
func (s *CommentService) ListComments(postID string) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(postID)
}

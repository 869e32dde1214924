package services

import (
	"profeed/app/models"
	"profeed/app/repositories"
)

// PostService handles creation and lookup of feed posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates and stores a new post. Nothing is written when
// validation fails.
func (s *PostService) CreatePost(author models.Author, content string, category models.Category, tags []string, visibility models.Visibility) (*models.Post, error) {
	post := &models.Post{
		Author:     author,
		Content:    content,
		Category:   category,
		Tags:       tags,
		Visibility: visibility,
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

package services

import (
	"profeed/app/models"
	"profeed/app/repositories"
)

// EngagementService applies per-user engagement to posts. Every toggle is a
// single Mutate call, so the like and bookmark sets never lose concurrent
// updates and the derived counters cannot drift from them.
type EngagementService struct {
	postRepo repositories.PostRepository
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(postRepo repositories.PostRepository) *EngagementService {
	return &EngagementService{postRepo: postRepo}
}

// ToggleLike flips userID's like on the post. Applying it twice restores the
// original state.
func (s *EngagementService) ToggleLike(postID, userID string) (*models.Post, error) {
	return s.toggle(postID, userID, (*models.Post).ToggleLike)
}

// ToggleBookmark flips userID's bookmark on the post.
func (s *EngagementService) ToggleBookmark(postID, userID string) (*models.Post, error) {
	return s.toggle(postID, userID, (*models.Post).ToggleBookmark)
}

// RecordView counts one read of the post.
func (s *EngagementService) RecordView(postID string) (*models.Post, error) {
	return s.postRepo.Mutate(postID, func(p *models.Post) error {
		p.AddView()
		return nil
	})
}

func (s *EngagementService) toggle(postID, userID string, flip func(*models.Post, string) (bool, error)) (*models.Post, error) {
	if userID == "" {
		return nil, models.NewValidationError("userId", "is required")
	}
	return s.postRepo.Mutate(postID, func(p *models.Post) error {
		_, err := flip(p, userID)
		return err
	})
}

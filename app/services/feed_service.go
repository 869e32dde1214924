package services

import (
	"time"

	"profeed/app/feed"
	"profeed/app/models"
	"profeed/app/repositories"
)

// FeedService answers feed queries: repository snapshot, then filter, then
// rank.
type FeedService struct {
	postRepo repositories.PostRepository
	now      func() time.Time
}

// NewFeedService creates a new FeedService. A nil clock means time.Now.
func NewFeedService(postRepo repositories.PostRepository, now func() time.Time) *FeedService {
	if now == nil {
		now = time.Now
	}
	return &FeedService{postRepo: postRepo, now: now}
}

// GetFeed returns the posts matching criteria in ranked order.
func (s *FeedService) GetFeed(criteria models.FilterCriteria) ([]*models.Post, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	posts, err := s.postRepo.All()
	if err != nil {
		return nil, err
	}
	return feed.Sort(feed.Apply(posts, criteria, s.now()), criteria.SortBy), nil
}

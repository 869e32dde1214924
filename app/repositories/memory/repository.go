// Package memory holds in-process repositories. They back the service when
// no data directory is configured and stand in for Badger in tests.
package memory

import (
	"sync"

	"profeed/app/models"
	"profeed/app/repositories"

	"github.com/google/uuid"
)

// PostRepository keeps posts in a map plus an insertion-ordered id list.
// Stored posts are never modified in place: Mutate publishes a new copy,
// so readers holding the read lock always see a whole post.
type PostRepository struct {
	mutex   sync.RWMutex
	posts   map[string]*models.Post
	order   []string
	nextSeq int
	locks   *repositories.LockTable
}

type CommentRepository struct {
	posts    *PostRepository
	comments map[string][]*models.Comment
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:   make(map[string]*models.Post),
		nextSeq: 1,
		locks:   repositories.NewLockTable(),
	}
}

func NewCommentRepository(posts *PostRepository) *CommentRepository {
	return &CommentRepository{
		posts:    posts,
		comments: make(map[string][]*models.Comment),
	}
}

// Clear drops every post.
func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.Post)
	m.order = nil
	m.nextSeq = 1
}

// PostRepository implementation
func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = uuid.NewString()
	post.Seq = m.nextSeq
	m.nextSeq++
	m.posts[post.ID] = post.Clone()
	m.order = append(m.order, post.ID)
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post.Clone(), nil
}

func (m *PostRepository) All() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.order))
	for _, id := range m.order {
		posts = append(posts, m.posts[id].Clone())
	}
	return posts, nil
}

func (m *PostRepository) Mutate(id string, fn func(post *models.Post) error) (*models.Post, error) {
	unlock := m.locks.Lock(id)
	defer unlock()

	post, err := m.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := fn(post); err != nil {
		return nil, err
	}

	m.mutex.Lock()
	m.posts[id] = post.Clone()
	m.mutex.Unlock()
	return post, nil
}

// CommentRepository implementation
func (m *CommentRepository) Create(comment *models.Comment) error {
	unlock := m.posts.locks.Lock(comment.PostID)
	defer unlock()

	post, err := m.posts.GetByID(comment.PostID)
	if err != nil {
		return err
	}
	comment.ID = uuid.NewString()
	if err := post.AddComment(comment); err != nil {
		return err
	}

	// The counter and the comment list change under one write lock.
	m.posts.mutex.Lock()
	defer m.posts.mutex.Unlock()
	m.posts.posts[post.ID] = post
	stored := *comment
	m.comments[post.ID] = append(m.comments[post.ID], &stored)
	return nil
}

func (m *CommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	m.posts.mutex.RLock()
	defer m.posts.mutex.RUnlock()

	if _, exists := m.posts.posts[postID]; !exists {
		return nil, repositories.ErrNotFound
	}
	comments := make([]*models.Comment, 0, len(m.comments[postID]))
	for _, c := range m.comments[postID] {
		copied := *c
		comments = append(comments, &copied)
	}
	return comments, nil
}

// Package repotest holds behaviour tests shared by every repository
// implementation.
package repotest

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"profeed/app/models"
	"profeed/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stores is what a contract run needs from an implementation.
type Stores struct {
	Posts    repositories.PostRepository
	Comments repositories.CommentRepository
}

// NewPost returns a valid post ready for Create.
func NewPost(content string) *models.Post {
	post := &models.Post{
		Author:     models.Author{ID: "author-1", Name: "Acme Supplies", Role: models.RoleSupplier},
		Content:    content,
		Category:   models.CategoryOffer,
		Tags:       []string{"packaging"},
		Visibility: models.VisibilityPublic,
	}
	post.BeforeCreate()
	return post
}

// RunPostRepository exercises the PostRepository contract against a fresh
// store for each subtest.
func RunPostRepository(t *testing.T, newStores func(t *testing.T) Stores) {
	t.Run("create and get post", func(t *testing.T) {
		repo := newStores(t).Posts
		post := NewPost("Bulk cardboard boxes available")

		require.NoError(t, repo.Create(post))
		assert.NotEmpty(t, post.ID)
		assert.Equal(t, 1, post.Seq)

		got, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.Content, got.Content)
		assert.Equal(t, post.Author, got.Author)
		assert.True(t, post.CreatedAt.Equal(got.CreatedAt))
		assert.Zero(t, got.Likes())
		assert.Zero(t, got.Bookmarks())
	})

	t.Run("get unknown post", func(t *testing.T) {
		repo := newStores(t).Posts
		_, err := repo.GetByID("nonexistent-id")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("all keeps insertion order", func(t *testing.T) {
		repo := newStores(t).Posts
		var ids []string
		for i := 0; i < 5; i++ {
			post := NewPost(fmt.Sprintf("Announcement number %d", i))
			require.NoError(t, repo.Create(post))
			ids = append(ids, post.ID)
		}

		posts, err := repo.All()
		require.NoError(t, err)
		require.Len(t, posts, 5)
		for i, p := range posts {
			assert.Equal(t, ids[i], p.ID)
			assert.Equal(t, i+1, p.Seq)
		}
	})

	t.Run("all returns copies", func(t *testing.T) {
		repo := newStores(t).Posts
		post := NewPost("Looking for a freight partner")
		require.NoError(t, repo.Create(post))

		posts, err := repo.All()
		require.NoError(t, err)
		_, _ = posts[0].ToggleLike("intruder")
		posts[0].Views = 99

		stored, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Zero(t, stored.Likes())
		assert.Zero(t, stored.Views)
	})

	t.Run("mutate writes back", func(t *testing.T) {
		repo := newStores(t).Posts
		post := NewPost("Consulting hours for export paperwork")
		require.NoError(t, repo.Create(post))

		updated, err := repo.Mutate(post.ID, func(p *models.Post) error {
			_, err := p.ToggleLike("user-1")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Likes())

		stored, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsLikedBy("user-1"))
	})

	t.Run("mutate error aborts write", func(t *testing.T) {
		repo := newStores(t).Posts
		post := NewPost("Consulting hours for export paperwork")
		require.NoError(t, repo.Create(post))

		boom := errors.New("boom")
		_, err := repo.Mutate(post.ID, func(p *models.Post) error {
			_, _ = p.ToggleLike("user-1")
			return boom
		})
		assert.ErrorIs(t, err, boom)

		stored, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Zero(t, stored.Likes())
	})

	t.Run("mutate unknown post creates nothing", func(t *testing.T) {
		repo := newStores(t).Posts
		called := false
		_, err := repo.Mutate("nonexistent-id", func(p *models.Post) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		assert.False(t, called)

		posts, err := repo.All()
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("concurrent mutations are not lost", func(t *testing.T) {
		repo := newStores(t).Posts
		post := NewPost("Seeking investors for a bakery chain")
		require.NoError(t, repo.Create(post))

		const users = 50
		var wg sync.WaitGroup
		for i := 0; i < users; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := repo.Mutate(post.ID, func(p *models.Post) error {
					_, err := p.ToggleLike(fmt.Sprintf("user-%d", i))
					return err
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		stored, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, users, stored.Likes())
	})

	t.Run("concurrent creates get distinct sequences", func(t *testing.T) {
		repo := newStores(t).Posts
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, repo.Create(NewPost("Parallel announcement text")))
			}()
		}
		wg.Wait()

		posts, err := repo.All()
		require.NoError(t, err)
		require.Len(t, posts, 20)
		seen := map[int]bool{}
		for _, p := range posts {
			assert.False(t, seen[p.Seq])
			seen[p.Seq] = true
		}
	})
}

// RunCommentRepository exercises the CommentRepository contract.
func RunCommentRepository(t *testing.T, newStores func(t *testing.T) Stores) {
	newComment := func(postID string) *models.Comment {
		c := &models.Comment{PostID: postID, AuthorID: "user-2", AuthorName: "Bob", Content: "Interested, please call"}
		c.BeforeCreate()
		return c
	}

	t.Run("create bumps post counter", func(t *testing.T) {
		stores := newStores(t)
		post := NewPost("Selling refurbished forklifts")
		require.NoError(t, stores.Posts.Create(post))

		for i := 0; i < 3; i++ {
			require.NoError(t, stores.Comments.Create(newComment(post.ID)))
		}

		stored, err := stores.Posts.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Comments)

		comments, err := stores.Comments.ListByPost(post.ID)
		require.NoError(t, err)
		assert.Len(t, comments, stored.Comments)
		for _, c := range comments {
			assert.NotEmpty(t, c.ID)
			assert.Equal(t, post.ID, c.PostID)
		}
	})

	t.Run("list keeps write order", func(t *testing.T) {
		stores := newStores(t)
		post := NewPost("Selling refurbished forklifts")
		require.NoError(t, stores.Posts.Create(post))

		var ids []string
		for i := 0; i < 12; i++ {
			c := newComment(post.ID)
			c.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
			require.NoError(t, stores.Comments.Create(c))
			ids = append(ids, c.ID)
		}

		comments, err := stores.Comments.ListByPost(post.ID)
		require.NoError(t, err)
		require.Len(t, comments, len(ids))
		for i, c := range comments {
			assert.Equal(t, ids[i], c.ID)
		}
	})

	t.Run("comment on unknown post", func(t *testing.T) {
		stores := newStores(t)
		err := stores.Comments.Create(newComment("nonexistent-id"))
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		_, err = stores.Comments.ListByPost("nonexistent-id")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("comments and likes do not clobber each other", func(t *testing.T) {
		stores := newStores(t)
		post := NewPost("Selling refurbished forklifts")
		require.NoError(t, stores.Posts.Create(post))

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				assert.NoError(t, stores.Comments.Create(newComment(post.ID)))
			}()
			go func(i int) {
				defer wg.Done()
				_, err := stores.Posts.Mutate(post.ID, func(p *models.Post) error {
					_, err := p.ToggleLike(fmt.Sprintf("user-%d", i))
					return err
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		stored, err := stores.Posts.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, stored.Comments)
		assert.Equal(t, 20, stored.Likes())
	})
}

package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAuthor() Author {
	return Author{ID: "user-1", Name: "Jane Doe", Role: RoleSupplier, Verified: true}
}

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *Post)
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid post",
			mutate:  func(p *Post) {},
			wantErr: false,
		},
		{
			name:      "content too short",
			mutate:    func(p *Post) { p.Content = "short" },
			wantErr:   true,
			wantField: "content",
		},
		{
			name:    "content exactly ten characters",
			mutate:  func(p *Post) { p.Content = "0123456789" },
			wantErr: false,
		},
		{
			name:      "content too long",
			mutate:    func(p *Post) { p.Content = strings.Repeat("a", 5001) },
			wantErr:   true,
			wantField: "content",
		},
		{
			name:    "multibyte content counted in characters",
			mutate:  func(p *Post) { p.Content = strings.Repeat("é", 10) },
			wantErr: false,
		},
		{
			name:      "unknown category",
			mutate:    func(p *Post) { p.Category = "gossip" },
			wantErr:   true,
			wantField: "category",
		},
		{
			name:      "unknown visibility",
			mutate:    func(p *Post) { p.Visibility = "friends" },
			wantErr:   true,
			wantField: "visibility",
		},
		{
			name:      "unknown author role",
			mutate:    func(p *Post) { p.Author.Role = "wizard" },
			wantErr:   true,
			wantField: "author.role",
		},
		{
			name:      "missing author id",
			mutate:    func(p *Post) { p.Author.ID = "" },
			wantErr:   true,
			wantField: "author.id",
		},
		{
			name:      "zero creation time",
			mutate:    func(p *Post) { p.CreatedAt = time.Time{} },
			wantErr:   true,
			wantField: "createdAt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &Post{
				Author:     validAuthor(),
				Content:    "Offering bulk packaging at wholesale prices",
				Category:   CategoryOffer,
				Visibility: VisibilityPublic,
				CreatedAt:  time.Now(),
			}
			tt.mutate(post)

			err := post.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{
		Content:  "   Looking for a logistics partner   ",
		Tags:     []string{"Logistics", "logistics", " EU ", ""},
		Comments: 4,
		Views:    9,
		LikedBy:  NewUserSet("u1"),
	}

	assert.True(t, post.CreatedAt.IsZero())
	post.BeforeCreate()
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, "Looking for a logistics partner", post.Content)
	assert.Equal(t, []string{"eu", "logistics"}, post.Tags)
	assert.Zero(t, post.Comments)
	assert.Zero(t, post.Views)
	assert.Zero(t, post.Likes())
	assert.Zero(t, post.Bookmarks())
}

func TestPostToggleLike(t *testing.T) {
	post := &Post{}

	liked, err := post.ToggleLike("u1")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, post.Likes())
	assert.True(t, post.IsLikedBy("u1"))

	liked, err = post.ToggleLike("u1")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 0, post.Likes())
	assert.False(t, post.IsLikedBy("u1"))

	_, err = post.ToggleLike("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPostToggleBookmarkIndependentOfLikes(t *testing.T) {
	post := &Post{}

	_, err := post.ToggleLike("u1")
	require.NoError(t, err)
	bookmarked, err := post.ToggleBookmark("u2")
	require.NoError(t, err)

	assert.True(t, bookmarked)
	assert.Equal(t, 1, post.Likes())
	assert.Equal(t, 1, post.Bookmarks())
	assert.False(t, post.IsBookmarkedBy("u1"))
	assert.False(t, post.IsLikedBy("u2"))
}

func TestPostClone(t *testing.T) {
	post := &Post{Tags: []string{"a"}, LikedBy: NewUserSet("u1"), BookmarkedBy: NewUserSet()}
	clone := post.Clone()

	_, _ = clone.ToggleLike("u2")
	clone.Tags[0] = "b"

	assert.Equal(t, 1, post.Likes())
	assert.Equal(t, "a", post.Tags[0])
	assert.Equal(t, 2, clone.Likes())
}

func TestPostAddComment(t *testing.T) {
	post := &Post{ID: "p1"}

	t.Run("add comment", func(t *testing.T) {
		comment := &Comment{Content: "Interested"}
		err := post.AddComment(comment)
		assert.NoError(t, err)
		assert.Equal(t, 1, post.Comments)
		assert.Equal(t, "p1", comment.PostID)
	})

	t.Run("add nil comment", func(t *testing.T) {
		err := post.AddComment(nil)
		assert.Error(t, err)
		assert.Equal(t, 1, post.Comments)
	})
}

func TestPostJSONDerivesCountersFromSets(t *testing.T) {
	post := &Post{ID: "p1", LikedBy: NewUserSet("b", "a", "a"), BookmarkedBy: NewUserSet()}

	data, err := json.Marshal(post)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"likedBy":["a","b"]`)

	var decoded Post
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.Likes())
	assert.True(t, decoded.IsLikedBy("a"))
}

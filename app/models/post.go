package models

import (
	"errors"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fromValidator(err)
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.Content = strings.TrimSpace(p.Content)
	p.Tags = NormalizeTags(p.Tags)
	p.Comments, p.Views = 0, 0
	p.LikedBy = UserSet{}
	p.BookmarkedBy = UserSet{}
}

// Likes is the number of users who like the post.
func (p *Post) Likes() int { return p.LikedBy.Len() }

// Bookmarks is the number of users who bookmarked the post.
func (p *Post) Bookmarks() int { return p.BookmarkedBy.Len() }

// IsLikedBy reports whether userID likes the post.
func (p *Post) IsLikedBy(userID string) bool { return p.LikedBy.Has(userID) }

// IsBookmarkedBy reports whether userID bookmarked the post.
func (p *Post) IsBookmarkedBy(userID string) bool { return p.BookmarkedBy.Has(userID) }

// ToggleLike flips userID's like and reports whether the post is liked by
// userID afterwards.
func (p *Post) ToggleLike(userID string) (bool, error) {
	if userID == "" {
		return false, NewValidationError("userId", "is required")
	}
	if p.LikedBy == nil {
		p.LikedBy = UserSet{}
	}
	return p.LikedBy.Toggle(userID), nil
}

// ToggleBookmark flips userID's bookmark and reports whether the post is
// bookmarked by userID afterwards.
func (p *Post) ToggleBookmark(userID string) (bool, error) {
	if userID == "" {
		return false, NewValidationError("userId", "is required")
	}
	if p.BookmarkedBy == nil {
		p.BookmarkedBy = UserSet{}
	}
	return p.BookmarkedBy.Toggle(userID), nil
}

// AddView records a single read of the post.
func (p *Post) AddView() { p.Views++ }

// AddComment bumps the comment counter for a newly stored comment.
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}
	comment.PostID = p.ID
	p.Comments++
	return nil
}

// Clone returns a deep copy so callers never share sets or tags with the
// store.
func (p *Post) Clone() *Post {
	c := *p
	c.Tags = append([]string(nil), p.Tags...)
	c.LikedBy = p.LikedBy.Clone()
	c.BookmarkedBy = p.BookmarkedBy.Clone()
	return &c
}

// NormalizeTags lowercases and trims tags, drops blanks and collapses
// duplicates. The result is sorted.
func NormalizeTags(tags []string) []string {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = lower.String(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

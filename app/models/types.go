package models

import "time"

// Category classifies what a post offers or asks for.
type Category string

// Visibility controls which audience a post is meant for.
type Visibility string

// Role is the professional role of an author.
type Role string

// DateRange is a relative publication window used by feed queries.
type DateRange string

// SortKey names a ranking strategy.
type SortKey string

// Author is the denormalized identity attached to a post. The engine trusts
// it as supplied by the identity layer.
type Author struct {
	ID        string `json:"id" validate:"required,max=128"`
	Name      string `json:"name" validate:"required,max=100"`
	Role      Role   `json:"role" validate:"role"`
	AvatarRef string `json:"avatarRef,omitempty" validate:"max=512"`
	Verified  bool   `json:"verified"`
}

// Post represents a marketplace announcement. LikedBy and BookmarkedBy are
// the source of truth for engagement; the counters are derived from them.
type Post struct {
	ID           string     `json:"id"`
	Seq          int        `json:"seq" validate:"gte=0"`
	Author       Author     `json:"author"`
	Content      string     `json:"content" validate:"required,min=10,max=5000"`
	Category     Category   `json:"category" validate:"category"`
	Tags         []string   `json:"tags" validate:"dive,required,max=50"`
	Visibility   Visibility `json:"visibility" validate:"visibility"`
	CreatedAt    time.Time  `json:"createdAt" validate:"required"`
	Comments     int        `json:"comments" validate:"gte=0"`
	Views        int        `json:"views" validate:"gte=0"`
	LikedBy      UserSet    `json:"likedBy"`
	BookmarkedBy UserSet    `json:"bookmarkedBy"`
}

// Comment is a reply attached to a post.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"postId" validate:"required"`
	AuthorID   string    `json:"authorId" validate:"required,max=128"`
	AuthorName string    `json:"authorName" validate:"required,max=100"`
	Content    string    `json:"content" validate:"required,min=1,max=2000"`
	CreatedAt  time.Time `json:"createdAt" validate:"required"`
}

// FilterCriteria is a per-query value object. Empty strings and "all" mean
// no constraint for the enumerated fields.
type FilterCriteria struct {
	SearchText   string     `json:"searchText,omitempty" schema:"q"`
	Category     Category   `json:"category,omitempty" schema:"category" validate:"omitempty,category|eq=all"`
	Role         Role       `json:"role,omitempty" schema:"role" validate:"omitempty,role|eq=all"`
	VerifiedOnly bool       `json:"verifiedOnly,omitempty" schema:"verified"`
	Visibility   Visibility `json:"visibility,omitempty" schema:"visibility" validate:"omitempty,visibility|eq=all"`
	DateRange    DateRange  `json:"dateRange,omitempty" schema:"date" validate:"omitempty,daterange"`
	SortBy       SortKey    `json:"sortBy,omitempty" schema:"sort" validate:"omitempty,sortkey"`
	MinLikes     int        `json:"minLikes,omitempty" schema:"min_likes" validate:"gte=0"`
	MinViews     int        `json:"minViews,omitempty" schema:"min_views" validate:"gte=0"`
}

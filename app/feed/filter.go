// Package feed holds the pure stages of the feed pipeline: filtering and
// ranking. Nothing here touches storage or mutates its input.
package feed

import (
	"math"
	"strings"
	"time"

	"profeed/app/models"

	"golang.org/x/text/cases"
)

const day = 24 * time.Hour

// Predicate decides whether a post survives a filter stage.
type Predicate func(post *models.Post) bool

// Apply returns the posts matching every criterion, in input order. now is
// the reference point for the date window.
func Apply(posts []*models.Post, criteria models.FilterCriteria, now time.Time) []*models.Post {
	preds := Predicates(criteria, now)
	out := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if matchAll(p, preds) {
			out = append(out, p)
		}
	}
	return out
}

// Predicates builds the AND-ed predicate list for criteria. Unconstrained
// criteria contribute nothing.
func Predicates(c models.FilterCriteria, now time.Time) []Predicate {
	var preds []Predicate

	if q := strings.TrimSpace(c.SearchText); q != "" {
		preds = append(preds, MatchText(q))
	}
	if !models.IsAll(c.Category) {
		preds = append(preds, func(p *models.Post) bool { return p.Category == c.Category })
	}
	if !models.IsAll(c.Role) {
		preds = append(preds, func(p *models.Post) bool { return p.Author.Role == c.Role })
	}
	if c.VerifiedOnly {
		preds = append(preds, func(p *models.Post) bool { return p.Author.Verified })
	}
	if !models.IsAll(c.Visibility) {
		preds = append(preds, func(p *models.Post) bool { return p.Visibility == c.Visibility })
	}
	if !models.IsAll(c.DateRange) {
		preds = append(preds, WithinDays(c.DateRange, now))
	}
	if c.MinLikes > 0 {
		preds = append(preds, func(p *models.Post) bool { return p.Likes() >= c.MinLikes })
	}
	if c.MinViews > 0 {
		preds = append(preds, func(p *models.Post) bool { return p.Views >= c.MinViews })
	}
	return preds
}

// MatchText matches q case-insensitively as a substring of the content, any
// tag, or the author name.
func MatchText(q string) Predicate {
	fold := cases.Fold()
	needle := fold.String(q)
	contains := func(s string) bool {
		return strings.Contains(fold.String(s), needle)
	}
	return func(p *models.Post) bool {
		if contains(p.Content) || contains(p.Author.Name) {
			return true
		}
		for _, tag := range p.Tags {
			if contains(tag) {
				return true
			}
		}
		return false
	}
}

// WithinDays keeps posts whose age in whole days fits the window. Unknown
// windows match everything.
func WithinDays(r models.DateRange, now time.Time) Predicate {
	limit := map[models.DateRange]int{
		models.DateToday: 0,
		models.DateWeek:  7,
		models.DateMonth: 30,
	}
	maxDays, ok := limit[r]
	if !ok {
		return func(*models.Post) bool { return true }
	}
	return func(p *models.Post) bool {
		days := AgeInDays(p.CreatedAt, now)
		if r == models.DateToday {
			return days == 0
		}
		return days <= maxDays
	}
}

// AgeInDays is floor((now - t) / 24h).
func AgeInDays(t, now time.Time) int {
	return int(math.Floor(float64(now.Sub(t)) / float64(day)))
}

func matchAll(p *models.Post, preds []Predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

package feed

import (
	"sort"

	"profeed/app/models"
)

// score returns the ranking value of a post under key.
func score(p *models.Post, key models.SortKey) int64 {
	switch key {
	case models.SortPopular:
		return int64(p.Likes() + p.Comments)
	case models.SortTrending:
		return int64(p.Likes() + p.Comments + p.Views)
	case models.SortViews:
		return int64(p.Views)
	}
	return p.CreatedAt.UnixNano()
}

// Sort returns a new slice ordered by key, highest first. Equal scores keep
// repository insertion order (lower Seq first). An empty or unknown key
// sorts by recency.
func Sort(posts []*models.Post, key models.SortKey) []*models.Post {
	out := append([]*models.Post(nil), posts...)
	scores := make(map[*models.Post]int64, len(out))
	for _, p := range out {
		scores[p] = score(p, key)
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := scores[out[i]], scores[out[j]]
		if si != sj {
			return si > sj
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

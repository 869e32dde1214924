package controllers

import (
	"encoding/hex"
	"encoding/json"
	"net/http"

	"profeed/app/models"
	"profeed/app/services"

	"github.com/gorilla/schema"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// FeedController serves feed queries and the taxonomy
type FeedController struct {
	responder
	feedService *services.FeedService
	decoder     *schema.Decoder
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService *services.FeedService, logger *zap.SugaredLogger) *FeedController {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &FeedController{
		responder:   responder{logger: logger},
		feedService: feedService,
		decoder:     decoder,
	}
}

// Index answers GET /api/feed. The query string maps onto FilterCriteria:
// q, category, role, verified, visibility, date, sort, min_likes, min_views.
func (fc *FeedController) Index(w http.ResponseWriter, r *http.Request) {
	var criteria models.FilterCriteria
	if err := fc.decoder.Decode(&criteria, r.URL.Query()); err != nil {
		fc.sendError(w, "Invalid query: "+err.Error(), http.StatusBadRequest)
		return
	}

	posts, err := fc.feedService.GetFeed(criteria)
	if err != nil {
		fc.sendServiceError(w, r, err)
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"posts": newPostResponses(posts, viewerID(r)),
		"count": len(posts),
	})
	if err != nil {
		fc.sendServiceError(w, r, err)
		return
	}

	etag := feedETag(body)
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(append(body, '\n'))
}

// Taxonomy answers GET /api/taxonomy with the fixed enumerations.
func (fc *FeedController) Taxonomy(w http.ResponseWriter, r *http.Request) {
	fc.sendJSON(w, http.StatusOK, map[string]interface{}{
		"categories":   models.Categories(),
		"visibilities": models.Visibilities(),
		"roles":        models.Roles(),
		"dateRanges":   models.DateRanges(),
		"sortKeys":     models.SortKeys(),
	})
}

// feedETag is a weak validator over the rendered body. The body already
// depends on the viewer, so one tag per viewer and result set.
func feedETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `W/"` + hex.EncodeToString(sum[:16]) + `"`
}

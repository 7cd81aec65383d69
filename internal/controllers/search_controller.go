package controllers

import (
	"net/http"
	"strings"
	"time"

	"alumnirabatt/internal/providers"
	"alumnirabatt/internal/services"
	"alumnirabatt/internal/structures"

	json "github.com/goccy/go-json"
)

const searchCacheControl = "public, max-age=60, s-maxage=3600"

type SearchController struct {
	logger  providers.Logger
	service services.SearchServiceInterface
	cache   providers.CacheProviderInterface
	ttl     time.Duration
}

func NewSearchController(conf *structures.Config, logger providers.Logger, service services.SearchServiceInterface, cache providers.CacheProviderInterface) *SearchController {
	return &SearchController{
		logger:  logger,
		service: service,
		cache:   cache,
		ttl:     conf.Cache.SearchTTL,
	}
}

func (sc *SearchController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := sc.cache.Get(cacheKey); ok {
		writeJSON(w, data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		sc.logger.Errorf(providers.TypeSearch, "encode search response: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sc.cache.Set(cacheKey, gson, sc.ttl)
	writeJSON(w, gson)
}

// Search handles GET /api/search?q=. A missing q is the empty query.
func (sc *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	sc.serveFromCacheOrCompute(w, "search:"+query, func() (any, error) {
		return sc.service.Search(r.Context(), query)
	})
}

func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", searchCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"alumnirabatt/internal/providers"
	"alumnirabatt/internal/services"
	"alumnirabatt/internal/structures"

	"golang.org/x/sync/singleflight"
)

const logoCacheControl = "public, max-age=31536000, immutable"

type LogoController struct {
	logger  providers.Logger
	service services.LogoServiceInterface
	cache   providers.CacheProviderInterface
	ttl     time.Duration
	group   singleflight.Group
}

func NewLogoController(conf *structures.Config, logger providers.Logger, service services.LogoServiceInterface, cache providers.CacheProviderInterface) *LogoController {
	return &LogoController{
		logger:  logger,
		service: service,
		cache:   cache,
		ttl:     conf.Cache.LogoTTL,
	}
}

// Logo handles GET /api/logo?src=&dark=. Identical concurrent requests share
// one fetch and render.
func (lc *LogoController) Logo(w http.ResponseWriter, r *http.Request) {
	src := r.URL.Query().Get("src")
	dark := r.URL.Query().Get("dark") == "true"
	key := "logo:" + strconv.FormatBool(dark) + ":" + src

	// The render outlives a single caller; the shared http.Client timeout bounds it.
	ctx := context.WithoutCancel(r.Context())
	v, err, _ := lc.group.Do(key, func() (any, error) {
		if data, ok := lc.cache.Get(key); ok {
			return data, nil
		}
		data, err := lc.service.Render(ctx, src, dark)
		if err != nil {
			return nil, err
		}
		lc.cache.Set(key, data, lc.ttl)
		return data, nil
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidImageURL) {
			http.Error(w, "Invalid image URL", http.StatusBadRequest)
			return
		}
		lc.logger.Errorf(providers.TypeLogo, "logo %q (dark=%t): %s", src, dark, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := v.([]byte)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", logoCacheControl)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

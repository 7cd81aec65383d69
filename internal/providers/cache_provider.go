package providers

import (
	"time"
	"unsafe"

	"alumnirabatt/internal/structures"

	"github.com/coocood/freecache"
)

type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

type CacheProvider struct {
	cache      *freecache.Cache
	compressor CompressorInterface
	logger     Logger
}

func NewCacheProvider(conf *structures.Config, logger Logger, compressor CompressorInterface) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	logger.Infof(TypeApp, "Cache initialized: %dMB, search TTL=%s, logo TTL=%s, compress=%t",
		conf.Cache.Size, conf.Cache.SearchTTL, conf.Cache.LogoTTL, conf.Cache.Compress)

	c := &CacheProvider{
		cache:  freecache.NewCache(sizeBytes),
		logger: logger,
	}
	if conf.Cache.Compress {
		c.compressor = compressor
	}
	return c
}

// unsafeStringToBytes converts string to []byte without allocation.
// Safe when the result is only read (not modified), which is the case
// for freecache, which copies keys internally.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	if c.compressor == nil {
		return val, true
	}
	val, err = c.compressor.Decompress(val)
	if err != nil {
		c.logger.Warnf(TypeApp, "Dropping undecodable cache entry %s: %s", key, err)
		c.cache.Del(unsafeStringToBytes(key))
		return nil, false
	}
	return val, true
}

func (c *CacheProvider) Set(key string, value []byte, ttl time.Duration) {
	if c.compressor != nil {
		compressed, err := c.compressor.Compress(value)
		if err != nil {
			c.logger.Warnf(TypeApp, "Cache compression failed for %s: %s", key, err)
			return
		}
		value = compressed
	}
	// freecache refuses entries above 1/1024 of its size.
	if err := c.cache.Set(unsafeStringToBytes(key), value, max(int(ttl.Seconds()), 1)); err != nil {
		c.logger.Debugf(TypeApp, "Cache set skipped for %s: %s", key, err)
	}
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool)             { return nil, false }
func (n *noopCache) Set(_ string, _ []byte, _ time.Duration) {}

package util

import (
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/hgapps/medicare-api/model"
)

// Generated news feeds are expensive; identical requests within a short
// window are served from memory.

var newsCache = cache.New(5*time.Minute, 10*time.Minute)

func newsCacheKey(lang model.Language, focus, region string) string {
	return fmt.Sprintf("news:%s:%s:%s", lang, focus, region)
}

// GetCachedNews returns the cached feed for the request parameters, if any.
func GetCachedNews(lang model.Language, focus, region string) ([]model.NewsItem, bool) {
	if v, ok := newsCache.Get(newsCacheKey(lang, focus, region)); ok {
		if items, ok := v.([]model.NewsItem); ok {
			return items, true
		}
	}
	return nil, false
}

// SetCachedNews stores a generated feed.
func SetCachedNews(lang model.Language, focus, region string, items []model.NewsItem) {
	newsCache.Set(newsCacheKey(lang, focus, region), items, cache.DefaultExpiration)
}

// FlushNewsCache clears all cached feeds, used by tests.
func FlushNewsCache() {
	newsCache.Flush()
}

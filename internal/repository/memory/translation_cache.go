package memory

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// TranslationCache memoizes translation round trips in process memory.
// Sample questions and repeated back-translations of short answers hit the
// same (source, target, text) triples often enough to be worth it.
type TranslationCache struct {
	cache *cache.Cache
}

func NewTranslationCache() *TranslationCache {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &TranslationCache{
		cache: c,
	}
}

func key(text, sourceLang, targetLang string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%s|%s|%x", sourceLang, targetLang, sum)
}

func (c *TranslationCache) Get(text, sourceLang, targetLang string) (string, bool) {
	if x, found := c.cache.Get(key(text, sourceLang, targetLang)); found {
		return x.(string), true
	}
	return "", false
}

func (c *TranslationCache) Save(text, sourceLang, targetLang, translated string) {
	c.cache.Set(key(text, sourceLang, targetLang), translated, cache.DefaultExpiration)
}

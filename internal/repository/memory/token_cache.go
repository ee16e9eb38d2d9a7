package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"mm-voicenote-be/internal/entity"
)

// TokenCache maps issued bearer tokens to their user so authenticated
// requests skip a storage read. Entries expire with the token lifetime.
type TokenCache struct {
	cache *cache.Cache
}

func NewTokenCache(ttl time.Duration) *TokenCache {
	// Purge expired entries every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &TokenCache{
		cache: c,
	}
}

func (r *TokenCache) Save(token string, user *entity.User) {
	r.cache.Set(token, user, cache.DefaultExpiration)
}

func (r *TokenCache) Get(token string) (*entity.User, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(*entity.User), true
	}
	return nil, false
}

func (r *TokenCache) Delete(token string) {
	r.cache.Delete(token)
}

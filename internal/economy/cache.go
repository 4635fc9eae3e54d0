package economy

import (
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// identityCache maps a chat identity to its immutable player ID.
// Balances are never cached.
type identityCache struct {
	lru *expirable.LRU[string, string]
}

func newIdentityCache() *identityCache {
	return &identityCache{
		lru: expirable.NewLRU[string, string](PlayerCacheSize, nil, PlayerCacheTTL),
	}
}

func identityKey(platform, platformID string) string {
	return platform + ":" + platformID
}

func (c *identityCache) Get(platform, platformID string) (string, bool) {
	return c.lru.Get(identityKey(platform, platformID))
}

func (c *identityCache) Set(platform, platformID, playerID string) {
	c.lru.Add(identityKey(platform, platformID), playerID)
}

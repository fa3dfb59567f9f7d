// Package cache provides the in-memory memoization map used by glyph
// providers.
//
//	c := cache.New[string, image.Image]()
//	c.Set("wK", img)
//	img, ok := c.Get("wK")
//
// Entries are never evicted or invalidated: a cache is owned by one provider
// and lives exactly as long as it does.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache

package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ClassTestListKey returns the cache key for the resolved class-test list.
// The cached value embeds course title/credit, so every class-test write and
// every course update/delete must invalidate it.
func (r *CacheKeyStruct) ClassTestListKey() string {
	return "class-tests:resolved"
}

var CacheKey = NewCacheKeyStruct()

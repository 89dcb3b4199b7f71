package repository

// CacheRepository caches serialized quote results keyed by canonical input.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

package cache

import "strings"

const (
	GlobalKeyPrefix = "consulthub"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// AssessmentSessionKey is where an assessment session's selection state lives.
func AssessmentSessionKey(sessionID string) string {
	return GenerateCacheKey("assessment", "session", sessionID)
}

// CartKey is where a shopping cart lives.
func CartKey(cartID string) string {
	return GenerateCacheKey("shop", "cart", cartID)
}

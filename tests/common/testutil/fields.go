//go:build unit || e2e

package testutil

// Field returns a mutation for DtoMap. A nil value removes the key
// entirely, anything else overwrites it.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

package cache

import "go.uber.org/zap"

// Memoize wraps fetch so results are served from the store when present.
// For a fixed cache root and a fixed argument, fetch runs at most once
// across the lifetime of that root; later processes reuse the file. A
// fetch error is returned without writing anything, so the next call
// fetches again.
func Memoize[A, V any](store *Store, makeKey func(A) string, fetch func(A) (V, error)) func(A) (V, error) {
	return func(arg A) (V, error) {
		var zero V
		key := makeKey(arg)

		var cached V
		ok, err := store.Get(key, &cached)
		if err != nil {
			return zero, err
		}
		if ok {
			store.logger.Debug("cache hit", zap.String("key", key))
			return cached, nil
		}

		store.logger.Debug("cache miss", zap.String("key", key))
		value, err := fetch(arg)
		if err != nil {
			return zero, err
		}
		if err := store.Put(key, value); err != nil {
			return zero, err
		}
		return value, nil
	}
}

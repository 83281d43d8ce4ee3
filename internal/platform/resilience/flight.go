package resilience

import "golang.org/x/sync/singleflight"

// Flight collapses concurrent loads of one key into a single call whose
// result every waiter shares.
type Flight[T any] struct {
	group singleflight.Group
}

// Do reports shared=true when the result came from another caller's load.
func (f *Flight[T]) Do(key string, load func() (T, error)) (value T, shared bool, err error) {
	raw, err, shared := f.group.Do(key, func() (any, error) {
		return load()
	})
	if err != nil {
		var zero T
		return zero, shared, err
	}
	value, _ = raw.(T)
	return value, shared, nil
}

// Forget drops an in-flight key so the next Do starts a fresh load.
func (f *Flight[T]) Forget(key string) {
	f.group.Forget(key)
}

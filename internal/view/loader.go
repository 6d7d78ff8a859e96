package view

import (
	"context"
	"errors"
	"sync"
)

// ErrStaleResponse is returned when a fetch resolves after its requesting
// view context was discarded or a newer fetch superseded it. The result is
// dropped, never applied.
var ErrStaleResponse = errors.New("stale response discarded")

// Loader runs snapshot fetches for one view. Each Load supersedes the
// previous one: only the most recent fetch may apply its result, and a
// fetch whose context was cancelled (the view unmounted) applies nothing.
type Loader[T any] struct {
	mu  sync.Mutex
	gen uint64
}

// Load runs fetch and, if the result is still current, hands it to apply.
// apply runs under the loader's lock so concurrent loads cannot interleave
// their writes.
func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error), apply func([]T)) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	snapshot, err := fetch(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if ctx.Err() != nil || gen != l.gen {
		return ErrStaleResponse
	}
	apply(snapshot)
	return nil
}

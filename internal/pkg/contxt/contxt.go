package contxt

import (
	"context"
	"time"
)

// NewContext returns a context bounding one controller invocation. A zero
// or negative timeout means the invocation runs unbounded, for flash
// sequences tuned longer than any fixed deadline.
func NewContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

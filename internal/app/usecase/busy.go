package usecase

import (
	"sync/atomic"

	"github.com/fardannozami/health-coach/internal/domain"
)

// busyFlag guards one request lifecycle; a second trigger while the first
// is outstanding is refused instead of queued.
type busyFlag struct {
	v atomic.Bool
}

func (b *busyFlag) acquire() error {
	if !b.v.CompareAndSwap(false, true) {
		return domain.ErrBusy
	}
	return nil
}

func (b *busyFlag) release() {
	b.v.Store(false)
}

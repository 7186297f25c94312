package metrics

import (
	"time"

	"github.com/katalvlaran/lvcover/cover"
)

// NoopObserver is an Observer that does nothing.
type NoopObserver struct{}

// ObserveSolve implements cover.Observer.
func (NoopObserver) ObserveSolve(cover.Algorithm, cover.Status, int, time.Duration) {}

var (
	_ cover.Observer = NoopObserver{}
	_ cover.Observer = (*PrometheusObserver)(nil)
)

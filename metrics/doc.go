// Package metrics provides cover.Observer implementations.
//
//   - NoopObserver discards every observation.
//   - PrometheusObserver exports per-solve counters and histograms:
//     lvcover_solves_total{algorithm,status}
//     lvcover_solve_duration_seconds{algorithm}
//     lvcover_search_steps{algorithm}
//
// Install one with cover.WithObserver. Both are safe for concurrent use and
// tolerate a nil receiver.
package metrics

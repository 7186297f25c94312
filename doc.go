// Package lvcover is a small in-memory engine for covering problems: exact
// cover, greedy weighted set cover, and budgeted maximum coverage.
//
// Under the hood, everything is organized under three subpackages:
//
//	membership/  element index, bitset Membership Matrix, per-branch Active State
//	cover/       ExactCover, ExactCoverAll, SetCover, MaxCover, Solve dispatcher
//	metrics/     Observer implementations (no-op, Prometheus)
//
// Quick example:
//
//	universe = 1 2 3 4 5
//	sets     = {1,2} {3,4} {5} {2,3}
//	exact    → {1,2} {3,4} {5}
//
// There is no file, network or CLI surface: callers pass slices in and get
// set indices back.
//
//	go get github.com/katalvlaran/lvcover
package lvcover

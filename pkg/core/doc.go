// Package core holds the planning core of ledwire.
//
// The core is pure: no I/O, no goroutines and no shared state. It is split
// into three stages that run in sequence:
//
//   - [grid] addresses every panel of the wall in serpentine order
//   - [wiring] derives the chain of connections between consecutive panels
//   - [cable] classifies that chain into cable tiers for one harness
//
// Every stage validates its input eagerly and never returns partial results.
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/core/grid
// [wiring]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/core/wiring
// [cable]: https://pkg.go.dev/github.com/matzehuels/ledwire/pkg/core/cable
package core

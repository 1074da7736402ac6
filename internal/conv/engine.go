// Package conv implements batched 2D cross-correlation and pooling over
// image batches.
//
// Every operation follows the same sliding-window algorithm:
//  1. Resolve the padding specification into per-side borders (ph, pw)
//  2. Compute the output size (in + 2p - k) / stride + 1 per axis
//  3. Copy the batch into a zero-bordered buffer
//  4. For every output cell extract the window under the kernel
//  5. Reduce the window (dot product with the kernel, max, or mean)
//
// Output cells are independent, so the engine partitions them across
// goroutines according to its parallel.Config. Results do not depend on
// the partitioning.
package conv

import "github.com/born-ml/xcorr/internal/parallel"

// Config configures an Engine.
type Config struct {
	// Parallel controls how output cells are spread across goroutines.
	Parallel parallel.Config
}

// DefaultConfig returns a config that parallelizes across all CPUs.
func DefaultConfig() Config {
	return Config{Parallel: parallel.DefaultConfig()}
}

// Engine runs correlation and pooling operations.
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given config.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

var defaultEngine = NewEngine(DefaultConfig())

// Default returns the engine used by the package-level functions.
func Default() *Engine {
	return defaultEngine
}

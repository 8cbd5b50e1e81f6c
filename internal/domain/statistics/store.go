package statistics

import "context"

// QuarterConfigStore holds the current month-to-quarter assignment. It is
// injected into the statistics service rather than living as hidden static
// state; last write wins, no transaction semantics.
type QuarterConfigStore interface {
	// Get returns the current configuration.
	Get(ctx context.Context) (QuarterConfig, error)

	// Set replaces the configuration wholesale.
	Set(ctx context.Context, config QuarterConfig) error

	// Reset restores the standard calendar mapping and returns it.
	Reset(ctx context.Context) (QuarterConfig, error)
}

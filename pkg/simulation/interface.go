package simulation

import "context"

// Simulation defines the interface that all registered simulations must
// implement. A simulation is configured once, run to completion or
// cancellation, and can be stopped early.
type Simulation interface {
	// Name returns the name of the simulation
	Name() string

	// Description returns a brief description of what the simulation does
	Description() string

	// Configure sets up the simulation with the provided parameters
	Configure(params map[string]interface{}) error

	// Run executes the simulation to termination or until ctx is cancelled
	Run(ctx context.Context) error

	// Stop gracefully shuts down the simulation
	Stop() error
}

package graph

import (
	"fmt"
	"runtime"

	"github.com/Roee-87/succinct-take-home/logger"
	"github.com/rs/zerolog"
)

// SolveOption defines an option for altering the behavior of Solve,
// CheckConstraints and SolveBatch. See the descriptions of functions
// returning instances of this type for implemented options.
type SolveOption func(*solveConfig) error

// solveConfig is the configuration with the options applied.
type solveConfig struct {
	logger     zerolog.Logger // defaults to logger.Logger()
	wraparound bool           // defaults to false: overflow is an error
	nbTasks    int            // defaults to runtime.NumCPU()
}

// WithLogger specifies a zerolog.Logger as the destination for the logs
// printed during evaluation. By default, uses the module logger.
// zerolog.Nop() will disable logging.
func WithLogger(l zerolog.Logger) SolveOption {
	return func(cfg *solveConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithWraparound makes additions and multiplications wrap modulo the value
// width instead of failing with ErrOverflow. Off by default: a graph whose
// constraints silently wrapped would validate values its author never
// meant to accept.
func WithWraparound() SolveOption {
	return func(cfg *solveConfig) error {
		cfg.wraparound = true
		return nil
	}
}

// WithNbTasks sets the number of clones SolveBatch evaluates in parallel.
// If not set, the number of workers is set to runtime.NumCPU().
func WithNbTasks(nbTasks int) SolveOption {
	return func(cfg *solveConfig) error {
		if nbTasks <= 0 {
			return fmt.Errorf("invalid number of tasks: %d", nbTasks)
		}
		if nbTasks > 512 {
			// cap at 512 tasks to keep the runtime scheduler out of trouble
			nbTasks = 512
		}
		cfg.nbTasks = nbTasks
		return nil
	}
}

// newSolveConfig returns a default configuration with opts applied.
func newSolveConfig(opts ...SolveOption) (solveConfig, error) {
	cfg := solveConfig{
		logger:  logger.Logger(),
		nbTasks: runtime.NumCPU(),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return solveConfig{}, err
		}
	}
	return cfg, nil
}

// Package config provides configuration structures and validation for the
// application. Everything the ledger needs at runtime (logging level,
// interest rates, worker pool sizing) is loaded here from defaults, an
// optional config file and environment variables.
package config

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Config holds the complete application configuration. Each field covers one
// subsystem and is validated during startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Interest    InterestConfig
	WorkerPool  WorkerPoolConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// InterestConfig contains the per-kind accrual rates, expressed as fractions
// (0.02 means 2%).
type InterestConfig struct {
	SavingsRate  decimal.Decimal
	CheckingRate decimal.Decimal
}

// WorkerPoolConfig contains worker pool configuration for batch accrual
type WorkerPoolConfig struct {
	Size int
}

// one is the exclusive upper bound for accrual rates.
var one = decimal.NewFromInt(1)

// validate checks all configuration values against their minimum
// requirements and logical constraints.
func (c *Config) validate() error {
	var validationErrors []string

	if c.Interest.SavingsRate.IsNegative() || !c.Interest.SavingsRate.LessThan(one) {
		validationErrors = append(validationErrors, "SAVINGS_INTEREST_RATE must be in [0, 1)")
	}
	if c.Interest.CheckingRate.IsNegative() || !c.Interest.CheckingRate.LessThan(one) {
		validationErrors = append(validationErrors, "CHECKING_INTEREST_RATE must be in [0, 1)")
	}

	if c.WorkerPool.Size <= 0 {
		validationErrors = append(validationErrors, "WORKER_POOL_SIZE must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}

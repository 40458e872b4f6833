package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// LoadConfigWithName loads configuration using the specified name,
// auto-detecting the file type.
func LoadConfigWithName(configName string) (*Config, error) {
	return loadConfig(configName, "")
}

// LoadConfigWithNameAndType loads configuration with explicit name and type
// specification (e.g. "yaml", "env").
func LoadConfigWithNameAndType(configName, configType string) (*Config, error) {
	return loadConfig(configName, configType)
}

// LoadConfig loads configuration from a .env file using the provided base
// name. This is the preferred entry point.
func LoadConfig(configName string) (*Config, error) {
	configFileName := fmt.Sprintf("%s.env", configName)
	return loadConfig(configFileName, "env")
}

// loadConfig handles configuration loading from files and environment
// variables, layered as: defaults, then config file values (if a file is
// found), then environment variables, then validation.
func loadConfig(configName, configType string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	if configType != "" {
		v.SetConfigType(configType)
	}

	// Config paths in order of priority
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Printf("INFO: No config file '%s' found, relying on environment variables and defaults.\n", configName)
		} else {
			fmt.Printf("WARNING: Error reading config file (%s): %v\n", v.ConfigFileUsed(), err)
		}
	} else {
		fmt.Printf("INFO: Config loaded from file: %s\n", v.ConfigFileUsed())
	}

	v.AutomaticEnv()

	savingsRate, err := decimal.NewFromString(v.GetString("SAVINGS_INTEREST_RATE"))
	if err != nil {
		return nil, fmt.Errorf("invalid SAVINGS_INTEREST_RATE: %w", err)
	}
	checkingRate, err := decimal.NewFromString(v.GetString("CHECKING_INTEREST_RATE"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKING_INTEREST_RATE: %w", err)
	}

	config := &Config{
		Application: ApplicationConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Interest: InterestConfig{
			SavingsRate:  savingsRate,
			CheckingRate: checkingRate,
		},
		WorkerPool: WorkerPoolConfig{
			Size: v.GetInt("WORKER_POOL_SIZE"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults initializes configuration with sensible default values, used
// when no configuration file or environment variables are present.
func setDefaults(v *viper.Viper) {
	// Interest defaults - the ledger's standard rates: 2% for savings
	// accounts, 0.5% for checking accounts
	v.SetDefault("SAVINGS_INTEREST_RATE", "0.02")
	v.SetDefault("CHECKING_INTEREST_RATE", "0.005")

	// Logging defaults - 'info' provides good balance of information vs noise
	v.SetDefault("LOG_LEVEL", "info")

	// Application defaults
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "banco-ledger")

	// Worker pool defaults - batch accrual fan-out
	v.SetDefault("WORKER_POOL_SIZE", 4)
}

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/linkpeek/internal/infrastructure/embed"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}

// validateConfig aggregates every problem into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSimulation(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" && !slices.Contains(validLogLevels, strings.ToLower(config.Logging.Level)) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of %s", strings.Join(validLogLevels[:5], ", ")))
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}

func validateSimulation(config *Config) []string {
	var validationErrors []string
	sim := config.Simulation
	if sim.ViewportWidth <= 0 || sim.ViewportHeight <= 0 {
		validationErrors = append(validationErrors, "simulation.viewport_width and viewport_height must be positive")
	}
	if sim.CharWidth <= 0 {
		validationErrors = append(validationErrors, "simulation.char_width must be positive")
	}
	if sim.LineHeight <= 0 {
		validationErrors = append(validationErrors, "simulation.line_height must be positive")
	}
	if sim.ProbeTimeoutMs < 0 {
		validationErrors = append(validationErrors, "simulation.probe_timeout_ms must be non-negative")
	}
	if sim.Engine != "" && !slices.Contains(embed.EngineNames(), sim.Engine) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("simulation.engine must be one of %s", strings.Join(embed.EngineNames(), ", ")))
	}
	switch sim.Platform {
	case "", PlatformAuto, PlatformMacOS, PlatformOther:
	default:
		validationErrors = append(validationErrors, "simulation.platform must be auto, macos or other")
	}
	return validationErrors
}

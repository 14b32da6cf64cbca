package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/planline/planline/internal/config"
	"github.com/planline/planline/internal/identity"
	"github.com/planline/planline/pkg/planline"
)

// getClient creates a client from the resolved config and identity
func getClient() (*planline.Client, error) {
	cfg, err := config.ResolveConfig()
	if err != nil {
		return nil, err
	}

	return planline.NewClient(
		planline.WithHost(cfg.ServerHost),
		planline.WithPort(cfg.ServerPort),
		planline.WithProject(cfg.Project),
		planline.WithAgentID(identity.Generate()),
	)
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if planline.IsServerNotRunning(err) {
		return ExitServerNotRunning
	}

	switch {
	case planline.IsUnknownActivity(err),
		planline.IsEdgeNotFound(err),
		planline.IsEssentialNotFound(err):
		return ExitActivityNotFound
	case planline.IsCyclicNetwork(err),
		planline.IsUnreachableEndpoint(err),
		planline.IsValidationFailed(err):
		return ExitInvalidNetwork
	case planline.IsProjectNotFound(err):
		return ExitProjectNotConfigured
	}

	if isConfigNotFoundError(err) {
		return ExitProjectNotConfigured
	}

	return ExitGeneralError
}

// isConfigNotFoundError checks if the error is a config not found error
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "No planline.toml found")
}

// handleError handles an error by printing it and exiting with the appropriate code
func handleError(err error) {
	if err == nil {
		return
	}

	printError(os.Stderr, err, jsonOutput)
	os.Exit(mapErrorToExitCode(err))
}

// parseDuration parses an edge duration argument
func parseDuration(s string) (float64, error) {
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be non-negative, got %s", s)
	}
	return d, nil
}

// pidFilePath returns the path to the PID file
func pidFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return homeDir + "/" + config.GlobalConfigDir + "/planline.pid", nil
}

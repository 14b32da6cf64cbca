package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/planline/planline/internal/server"
	"github.com/planline/planline/internal/store"
)

const (
	// DefaultDBPath is the default path for project databases,
	// relative to the user's home directory.
	DefaultDBPath = ".planline/projects"

	// BindEnvVar overrides the listen address when set.
	BindEnvVar = "PLANLINE_BIND"
)

func main() {
	// Determine database path
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}
	dbPath := filepath.Join(homeDir, DefaultDBPath)

	// Create database manager
	manager, err := store.NewManager(dbPath)
	if err != nil {
		log.Fatalf("Failed to create database manager: %v", err)
	}

	addr := os.Getenv(BindEnvVar)
	if addr == "" {
		addr = server.DefaultAddress
	}

	// ListenAndServe blocks until SIGINT/SIGTERM, then shuts down
	// gracefully and closes the manager.
	srv := server.New(addr, manager)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

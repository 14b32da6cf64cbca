package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/planline/planline/internal/config"
)

func TestInit_CreatesConfig(t *testing.T) {
	tmpDir := t.TempDir()

	// Change to temp directory
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tmpDir)

	// Run init command
	if err := runInit("bridge", "", 0); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}

	// Check config file was created
	configPath := filepath.Join(tmpDir, config.ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// Check content
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	if !strings.Contains(string(content), `project = "bridge"`) {
		t.Error("Config file should contain project name")
	}
	if strings.Contains(string(content), "[server]") {
		t.Error("Config file should not contain a server section without host/port")
	}
}

func TestInit_ConfigAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()

	// Create existing config
	configPath := filepath.Join(tmpDir, config.ConfigFileName)
	if err := os.WriteFile(configPath, []byte(`project = "existing"`), 0644); err != nil {
		t.Fatalf("Failed to create existing config: %v", err)
	}

	// Change to temp directory
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tmpDir)

	// Run init command - should fail
	err := runInit("bridge", "", 0)
	if err == nil {
		t.Error("runInit should fail when config already exists")
	}

	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Error message should mention 'already exists', got: %v", err)
	}
}

func TestInit_WithHostAndPort(t *testing.T) {
	tmpDir := t.TempDir()

	// Change to temp directory
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tmpDir)

	// Run init command with host and port
	if err := runInit("bridge", "example.com", 8080); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}

	// Check content
	configPath := filepath.Join(tmpDir, config.ConfigFileName)
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	if !strings.Contains(string(content), "[server]") {
		t.Error("Config file should contain a server section")
	}
	if !strings.Contains(string(content), `host = "example.com"`) {
		t.Error("Config file should contain the host")
	}
	if !strings.Contains(string(content), "port = 8080") {
		t.Error("Config file should contain the port")
	}
}

func TestInit_EmptyName(t *testing.T) {
	if err := runInit("", "", 0); err == nil {
		t.Error("runInit should fail with an empty project name")
	}
}

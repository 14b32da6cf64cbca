package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage the planline server",
	Long:  `Commands for starting, stopping, and checking the status of the planline server.`,
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the planline server",
	Long:  `Start the planline server as a background process.`,
	Run: func(cmd *cobra.Command, args []string) {
		bind, _ := cmd.Flags().GetString("bind")

		if err := runServerStart(bind); err != nil {
			handleError(err)
		}
	},
}

var serverStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the planline server",
	Long:  `Stop the running planline server.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServerStop(); err != nil {
			handleError(err)
		}
	},
}

var serverStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check planline server status",
	Long:  `Check if the planline server is running.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServerStatus(); err != nil {
			handleError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverStopCmd)
	serverCmd.AddCommand(serverStatusCmd)

	serverStartCmd.Flags().String("bind", "localhost:7519", "Address to bind the server to")
}

// runServerStart starts the planline server
func runServerStart(bind string) error {
	pidPath, err := pidFilePath()
	if err != nil {
		return err
	}

	// Check if already running
	if pid, err := readPIDFile(pidPath); err == nil && isProcessRunning(pid) {
		return fmt.Errorf("server is already running (PID: %d)", pid)
	}

	// Find planlined binary
	daemonPath, err := exec.LookPath("planlined")
	if err != nil {
		// Try to find it relative to the pln binary
		plnPath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to find planlined binary: %w", err)
		}
		daemonPath = filepath.Join(filepath.Dir(plnPath), "planlined")
		if _, err := os.Stat(daemonPath); os.IsNotExist(err) {
			return fmt.Errorf("planlined binary not found. Install it first.")
		}
	}

	// Start server in background
	cmd := exec.Command(daemonPath)
	cmd.Env = append(os.Environ(), fmt.Sprintf("PLANLINE_BIND=%s", bind))
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true, // Create new session to detach from terminal
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	// Write PID file
	if err := writePIDFile(pidPath, cmd.Process.Pid); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	printSuccess(os.Stdout, fmt.Sprintf("Server started (PID: %d)", cmd.Process.Pid), jsonOutput)
	return nil
}

// runServerStop stops the planline server
func runServerStop() error {
	pidPath, err := pidFilePath()
	if err != nil {
		return err
	}

	pid, err := readPIDFile(pidPath)
	if err != nil {
		return fmt.Errorf("server is not running (no PID file found)")
	}

	if !isProcessRunning(pid) {
		// Clean up stale PID file
		removePIDFile(pidPath)
		return fmt.Errorf("server is not running (stale PID file)")
	}

	// Send SIGTERM
	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Remove PID file
	removePIDFile(pidPath)

	printSuccess(os.Stdout, fmt.Sprintf("Server stopped (PID: %d)", pid), jsonOutput)
	return nil
}

// runServerStatus checks if the server is running
func runServerStatus() error {
	pidPath, err := pidFilePath()
	if err != nil {
		return err
	}

	pid, err := readPIDFile(pidPath)
	if err != nil {
		printSuccess(os.Stdout, "Server is not running", jsonOutput)
		os.Exit(ExitServerNotRunning)
		return nil
	}

	if !isProcessRunning(pid) {
		// Clean up stale PID file
		removePIDFile(pidPath)
		printSuccess(os.Stdout, "Server is not running (stale PID file removed)", jsonOutput)
		os.Exit(ExitServerNotRunning)
		return nil
	}

	printSuccess(os.Stdout, fmt.Sprintf("Server is running (PID: %d)", pid), jsonOutput)
	return nil
}

// writePIDFile writes the process ID to a file
func writePIDFile(path string, pid int) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return os.WriteFile(path, []byte(strconv.Itoa(pid)), 0644)
}

// readPIDFile reads the process ID from a file
func readPIDFile(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID file content: %w", err)
	}

	return pid, nil
}

// removePIDFile removes the PID file
func removePIDFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// isProcessRunning checks if a process is running
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// On Unix, FindProcess always succeeds, so we need to send signal 0
	// to check if the process exists
	err = process.Signal(syscall.Signal(0))
	return err == nil
}

package main

// Exit codes for the CLI
const (
	ExitSuccess              = 0
	ExitGeneralError         = 1
	ExitServerNotRunning     = 2
	ExitProjectNotConfigured = 3
	ExitActivityNotFound     = 4
	ExitInvalidNetwork       = 5
)

// Package apperrors defines the error taxonomy shared across zero-mcp.
//
// Every error here is converted to a plain "Error: <message>" string at
// the MCP tool boundary; nothing structured crosses it.
package apperrors

import (
	"fmt"
)

// ConfigurationError indicates no usable credentials could be resolved
// and auto-provisioning is unavailable or disabled.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// ProvisioningError is returned when the Zero provisioning endpoint
// responds with a non-success status. It carries the raw status code
// and response body.
type ProvisioningError struct {
	StatusCode int
	Body       string
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("failed to create TiDB Cloud Zero instance: %d %s", e.StatusCode, e.Body)
}

// ExecutionError is returned when the SQL endpoint reports a
// non-success status, returns a malformed response, or the driver
// rejects a statement. StatusCode is zero for driver-level failures.
type ExecutionError struct {
	StatusCode int
	Message    string
}

func (e *ExecutionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("TiDB API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("TiDB execution error: %s", e.Message)
}

// ValidationError is returned by the read-only entry point when a
// statement's leading keyword is not on the allow-list. The statement
// never reaches the transport layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Package errors provides coded errors for the CLI failure taxonomy.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidArguments marks a JSON argument payload that could not be decoded.
	CodeInvalidArguments Code = "INVALID_ARGUMENTS"

	// Companion process errors
	CodeConnect  Code = "COMPANION_CONNECT"
	CodeToolCall Code = "COMPANION_TOOL_CALL"
	CodeClose    Code = "COMPANION_CLOSE"
)

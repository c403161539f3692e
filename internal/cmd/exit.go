// Package cmd provides command implementations for the BuildMaster CLI.
package cmd

// Exit codes reported to the shell.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates input validation failed locally.
	ExitValidationError = 2

	// ExitConnectivityError indicates the backend was unreachable.
	ExitConnectivityError = 3

	// ExitUnauthorized indicates a missing or rejected session.
	ExitUnauthorized = 4

	// ExitNotFound indicates a component, build, or user was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitConnectivityError:
		return "Connectivity Error"
	case ExitUnauthorized:
		return "Unauthorized"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

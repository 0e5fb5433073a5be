// Package exitcodes defines the standard exit codes used by stepreport.
package exitcodes

// Exit code constants used by stepreport
// These constants define the exit codes that the application uses to indicate
// various states when it exits:
//
// * Success (0): Used when the run resolved without failures
// * RunFailure (1): Used when the run resolved to failure
// * RuntimeErr (2): Used for runtime errors such as unreadable run files
const (
	Success    = 0 // Run resolved clean
	RunFailure = 1 // Run resolved to failure
	RuntimeErr = 2 // Runtime errors
)

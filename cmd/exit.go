package cmd

const (
	exitFailure      = 1
	exitCommandError = 2 // bad configuration or unreadable source tree
)

// ExitError attaches a process exit code to a command error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

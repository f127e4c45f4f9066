package cli

import "fmt"

// ExitError asks main to exit with Code without printing anything further.
// Commands return it after writing their own report, such as a failed
// validation.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) ExitCode() int {
	return e.Code
}

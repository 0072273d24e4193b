package terminal

import "fmt"

// InitError reports that the platform terminal could not be prepared for
// styled output. It is fatal and only raised at startup.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("terminal init: %s: %v", e.Op, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

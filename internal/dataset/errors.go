package dataset

import "fmt"

// NotFoundError reports that no candidate universe file exists (or every
// existing one was empty after trimming).
type NotFoundError struct {
	Preferred string
	Fallback  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s or %s not found in expected locations", e.Preferred, e.Fallback)
}

// OpenError reports a candidate that exists but could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return fmt.Sprintf("open error %s: %v", e.Path, e.Err) }
func (e *OpenError) Unwrap() error { return e.Err }

// ReadError reports a candidate that opened but could not be fully read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read error %s: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// EmptyError reports a file whose contents are empty after trimming leading
// whitespace. The candidate scan treats this as "skip and keep probing"; it
// only surfaces to callers that load an explicit path.
type EmptyError struct {
	Path string
}

func (e *EmptyError) Error() string { return fmt.Sprintf("%s is empty", e.Path) }

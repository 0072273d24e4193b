package scaffold

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// PathError reports that the target directory could not be created or
// canonicalized.
type PathError struct {
	Path string
	Op   string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("resolving target directory %q: %s: %v", e.Path, e.Op, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// DownloadError reports a transport failure or a non-success response from
// the archive host. StatusCode is zero when no response was received.
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("downloading template archive: status %d", e.StatusCode)
	}
	return fmt.Sprintf("downloading template archive: %v", e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ArchiveError reports that the downloaded body is not a readable zip.
type ArchiveError struct {
	Err error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("reading template archive: %v", e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// ExtractionError reports a failure while writing archive entries. Written
// counts the files already on disk when extraction stopped.
type ExtractionError struct {
	Dir     string
	Written int
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting template into %s: %v", e.Dir, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func newPathError(path, op string, err error) error {
	return errors.WithHint(
		errors.WithStack(&PathError{Path: path, Op: op, Err: err}),
		"make sure the parent directory exists and is writable",
	)
}

func newDownloadError(url string, status int, err error) error {
	return errors.WithHint(
		errors.WithStack(&DownloadError{URL: url, StatusCode: status, Err: err}),
		"check your network connection and try again",
	)
}

func newArchiveError(err error) error {
	return errors.WithHint(
		errors.WithStack(&ArchiveError{Err: err}),
		"the archive host returned something that is not a zip file",
	)
}

func newExtractionError(dir string, written int, err error) error {
	return errors.WithHint(
		errors.WithStack(&ExtractionError{Dir: dir, Written: written, Err: err}),
		"partially extracted files were left in place; remove them before retrying",
	)
}

// Package errs defines the error taxonomy shared by the tool facade, the
// template store and the onboarding wizard.
//
// Four kinds cover everything the server can fail with:
//
//   - ConfigError:   a client could not be constructed (bad region,
//     missing credentials). Never retried.
//   - NotFoundError: a local artifact (template, wizard run) does not exist.
//   - RemoteError:   AWS rejected or failed a call. Carries the upstream
//     error code and message unchanged. The facade never retries these.
//   - StateError:    a persisted wizard state file cannot be parsed or is
//     internally inconsistent. Fatal, manual intervention required.
package errs

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ConfigError reports a non-retryable configuration failure.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("config: %s: %v", e.Op, e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// NotFoundError reports a missing local artifact.
type NotFoundError struct {
	Kind string // "template", "wizard run", ...
	Name string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found: %s", e.Kind, e.Name) }

// RemoteError wraps an upstream AWS failure with its code and message intact.
type RemoteError struct {
	Operation string // facade operation, e.g. "cases_create_template"
	Code      string // upstream error code, e.g. "ResourceNotFoundException"
	Message   string
	Err       error
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %s", e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// StateError reports corrupted or inconsistent wizard run state.
type StateError struct {
	Path   string
	Reason string
	Err    error
}

func (e *StateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wizard state %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("wizard state %s: %s", e.Path, e.Reason)
}

func (e *StateError) Unwrap() error { return e.Err }

// Remote classifies err as a RemoteError for op, extracting the smithy API
// error code and message when present.
func Remote(op string, err error) *RemoteError {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return &RemoteError{Operation: op, Code: ae.ErrorCode(), Message: ae.ErrorMessage(), Err: err}
	}
	return &RemoteError{Operation: op, Err: err}
}

// IsNotFound reports whether err is a local NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

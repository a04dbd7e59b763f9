package service

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a generation operation failed.
type FailureKind string

const (
	MissingCredential FailureKind = "missing_credential"
	InvalidInput      FailureKind = "invalid_input"
	EmptyResponse     FailureKind = "empty_response"
	MalformedResponse FailureKind = "malformed_response"
	InvalidCredential FailureKind = "invalid_credential"
	BackendError      FailureKind = "backend_error"
)

var (
	// ErrInvalidCredential is matched by failures the caller must react to by wiping the stored key.
	ErrInvalidCredential = errors.New("generation credential rejected by backend")
	// ErrGenerationFailed is matched by every other failure; callers show a generic retry message.
	ErrGenerationFailed = errors.New("generation failed")
)

// GenerationError is the single failure value returned by the pipeline.
type GenerationError struct {
	Op   OperationKind
	Kind FailureKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Is lets errors.Is tell the invalid-credential failure apart from the rest.
func (e *GenerationError) Is(target error) bool {
	switch target {
	case ErrInvalidCredential:
		return e.Kind == InvalidCredential
	case ErrGenerationFailed:
		return e.Kind != InvalidCredential
	}
	return false
}

// FailureKindOf returns the kind of a pipeline failure, or "" for foreign errors.
func FailureKindOf(err error) FailureKind {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

func failure(kind FailureKind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Err: err}
}

package presentation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-studio/internal/domain"
)

var (
	ErrInvalidState           = errors.New("presentation: publish state snapshot is incomplete")
	ErrSnapshotPayloadInvalid = errors.New("presentation: snapshot payload failed schema validation")
)

// InvalidStateError captures a snapshot facet that arrived undefined.
type InvalidStateError struct {
	Facet domain.Facet
}

func (e *InvalidStateError) Error() string {
	if e == nil || e.Facet == "" {
		return ErrInvalidState.Error()
	}
	return fmt.Sprintf("%s: facet=%s", ErrInvalidState.Error(), e.Facet)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ValidationIssue captures a single schema validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces snapshot payload issues with their schema
// locations so upstream services can be pointed at the offending field.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSnapshotPayloadInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSnapshotPayloadInvalid
}

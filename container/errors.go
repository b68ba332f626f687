package container

import (
	"errors"
	"fmt"
)

var (
	ErrContainerSlugRequired = errors.New("container: slug is required")
	ErrContainerSlugInvalid  = errors.New("container: slug contains invalid characters")
	ErrContainerSlugExists   = errors.New("container: slug already exists")
	ErrContainerIDRequired   = errors.New("container: container id required")
	ErrUnitIDRequired        = errors.New("container: unit id required")
	ErrUnitTitleRequired     = errors.New("container: unit title is required")
	ErrUnitStatusInvalid     = errors.New("container: unit status is invalid")
)

// NotFoundError captures missing container or unit lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

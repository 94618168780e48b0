package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProjectRequired = errors.New("a project must be specified when creating or referencing a gcp resource")
)

// AuthenticationError reports that credential material could not be loaded
// from the environment's service account reference.
type AuthenticationError struct {
	Path string
	Err  error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("failed to load gcp credentials from %s: %v", e.Path, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// EnvironmentConfigurationError reports that a project query returned no
// results. The filter is kept so the offending labels or prefix can be fixed.
type EnvironmentConfigurationError struct {
	Filter  string
	Message string
}

func (e *EnvironmentConfigurationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("no projects returned for filter %s. %s", e.Filter, e.Message)
	}

	return fmt.Sprintf("no projects returned for filter %s", e.Filter)
}

// AmbiguousProjectError reports that a prefix expected to identify a single
// project matched more than one. Every matching name is listed so the caller
// can adjust labels or use a longer prefix.
type AmbiguousProjectError struct {
	Filter string
	Names  []string
}

func (e *AmbiguousProjectError) Error() string {
	return fmt.Sprintf("more than one project returned for filter %s. projects returned: %s",
		e.Filter, strings.Join(e.Names, " "))
}

package ileap

import (
	"fmt"

	"github.com/rshade/ileap/pkg/pact"
)

type validator interface {
	Validate() error
}

func validateOptional[T validator](field string, v *T) error {
	if v == nil {
		return nil
	}
	return pact.Within(field, (*v).Validate())
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func indexField(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}

// validateEach validates every element of items, reporting the index.
func validateEach[T validator](field string, items []T) error {
	for i, it := range items {
		if err := pact.Within(indexField(field, i), it.Validate()); err != nil {
			return err
		}
	}
	return nil
}

// requireText rejects an empty identifier.
func requireText(field, s string) error {
	if s == "" {
		return pact.NewValidationError(field, "must not be empty")
	}
	return nil
}

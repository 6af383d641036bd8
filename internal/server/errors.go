// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *store.UnknownCollectionError,
		*store.EntryTypeError,
		*store.UnknownSectionError,
		*store.SectionNotOptionalError,
		*store.NotPermutationError,
		*rendering.UnknownTemplateError,
		*schemas.ValidationError,
		*schemas.SchemaLoadError:
		return http.StatusBadRequest
	case *store.EntryNotFoundError, *store.HobbyNotFoundError:
		return http.StatusNotFound
	case *export.RenderServiceError:
		return http.StatusServiceUnavailable
	default:
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}

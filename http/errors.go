package http

import (
	"errors"
	"net/http"

	"benefit-calculator/domain"
)

// statusForError maps the domain's recoverable errors onto HTTP statuses.
// Invalid field values ask the user to correct input; an uncovered
// combination asks the user to change the selection.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnsupportedCombination):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"carbonwise-server/internals"
)

// writeComputationError maps the three core failure conditions to distinct
// status codes, so clients can tell a caller error from missing reference
// data from an infrastructure failure.
func writeComputationError(w http.ResponseWriter, err error) {
	log.Println("Computation failed: ", err)

	switch {
	case errors.Is(err, internals.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, internals.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, internals.ErrUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

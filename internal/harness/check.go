package harness

import (
	"fmt"
	"net/http"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
)

// unknownID is an id no backend under test is expected to have assigned.
const unknownID int64 = 999999

// expectStatus verifies that err is a backend rejection with the wanted
// HTTP status.
func expectStatus(err error, want int) error {
	if err == nil {
		return fmt.Errorf("expected HTTP %d, request succeeded", want)
	}
	details := api.Extract(err)
	if details == nil {
		return fmt.Errorf("expected HTTP %d, got non-API error: %w", want, err)
	}
	if details.Status != want {
		return fmt.Errorf("expected HTTP %d, got %d (%s)", want, details.Status, details.ResponseBody)
	}
	return nil
}

func expectNotFound(err error) error {
	return expectStatus(err, http.StatusNotFound)
}

func expectBadRequest(err error) error {
	return expectStatus(err, http.StatusBadRequest)
}

func check(ok bool, format string, args ...any) error {
	if !ok {
		return fmt.Errorf(format, args...)
	}
	return nil
}

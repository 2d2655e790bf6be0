package orchestrator

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/trly/ping-ops/internal/repository"
)

// ErrOutOfRange is returned when a 1-based selection index does not fall
// within the listed units.
var ErrOutOfRange = errors.New("selection out of range")

// NotANumberError is returned when selection input is not numeric.
type NotANumberError struct {
	Input string
}

// Error implements the error interface.
func (e *NotANumberError) Error() string {
	return fmt.Sprintf("selection %q is not a number", e.Input)
}

// Select resolves a 1-based index against an explicit unit listing. The
// listing is always threaded in by the caller; there is no ambient
// selection state.
func Select(index int, units []repository.Unit) (repository.Unit, error) {
	if index < 1 || index > len(units) {
		return repository.Unit{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, index, len(units))
	}
	return units[index-1], nil
}

// ParseSelection parses raw operator input into a 1-based index and
// validates it against the listing length.
func ParseSelection(raw string, units []repository.Unit) (repository.Unit, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return repository.Unit{}, &NotANumberError{Input: raw}
	}
	return Select(index, units)
}

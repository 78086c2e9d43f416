package catalogs

import (
	"strconv"
	"strings"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// ParseLocation reads a shelf and row from user input. Accepted forms are
// "3 2", "3,2", "3, 2" and "[3, 2]".
func ParseLocation(s string) (Location, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != constants.LocationComponents {
		return Location{}, errors.NewValidationError("location", s, "expected shelf and row numbers, e.g. \"3 2\"")
	}

	nums := make([]int, 0, constants.LocationComponents)
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Location{}, errors.NewValidationError("location", s, strconv.Quote(f)+" is not a whole number")
		}
		nums = append(nums, n)
	}

	return Location{Shelf: nums[0], Row: nums[1]}, nil
}

// ParseQuantity reads a non-negative copy count from user input.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.NewValidationError("quantity", s, "must be a whole number")
	}
	if n < 0 {
		return 0, errors.NewValidationError("quantity", n, "cannot be negative")
	}
	return n, nil
}

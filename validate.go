// SPDX-License-Identifier: MIT
package notation

import (
	"errors"
	"fmt"
)

// Structure validation errors.
var (
	ErrUnclosedCode      = errors.New("code region is not closed")
	ErrUnexpectedEndCode = errors.New("endcode without a matching code")
)

// Validate checks the structure the Parser accepts permissively: balanced group markers &
// matched code regions.
//
// Every violation found is reported.
func Validate(items Items) error {
	var errs []error
	if _, err := BuildGroups(items); err != nil {
		errs = append(errs, err)
	}

	openCode := -1
	for index := range items {
		if items[index].Kind != ItemNotation {
			continue
		}

		switch items[index].Tag {
		case TagCode:
			if openCode > -1 {
				errs = append(errs, fmt.Errorf("%w: started at item %d", ErrUnclosedCode, openCode))
			}
			openCode = index
		case TagEndCode:
			if openCode < 0 {
				errs = append(errs, fmt.Errorf("%w: item %d", ErrUnexpectedEndCode, index))
			}
			openCode = -1
		}
	}
	if openCode > -1 {
		errs = append(errs, fmt.Errorf("%w: started at item %d", ErrUnclosedCode, openCode))
	}

	return errors.Join(errs...)
}

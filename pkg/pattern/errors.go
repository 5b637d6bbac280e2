package pattern

import (
	"fmt"
	"strings"
)

// InvalidMeasurementsError carries the complete set of validation failures
// for a request. The engine raises it before any computation, so it is never
// paired with partial output.
type InvalidMeasurementsError struct {
	Errors []string
}

func (e *InvalidMeasurementsError) Error() string {
	return fmt.Sprintf("invalid measurements: %s", strings.Join(e.Errors, ", "))
}

// UnknownFitCategoryError reports a fit value outside the three defined
// categories.
type UnknownFitCategoryError struct {
	Value string
}

func (e *UnknownFitCategoryError) Error() string {
	return fmt.Sprintf("unknown fit category %q (expected slim, regular, or loose)", e.Value)
}

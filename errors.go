package renal

import (
	"fmt"
	"strings"
)

// UnknownMethodError is returned when the requested method name does not
// normalize to any supported equation identifier.
type UnknownMethodError struct {
	Name  string   // Name as supplied by the caller
	Valid []string // All supported identifiers
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown renal function method %q\n"+
		"  valid methods: %s", e.Name, strings.Join(e.Valid, ", "))
}

// UnknownUnitError is returned when a creatinine or output unit string is
// not recognized.
type UnknownUnitError struct {
	Unit  string   // Unit as supplied by the caller
	Valid []string // Accepted spellings
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q\n"+
		"  accepted: %s", e.Unit, strings.Join(e.Valid, ", "))
}

// MissingCovariateError is returned when a covariate required by the
// selected method is absent from the request.
type MissingCovariateError struct {
	Method  Method
	Missing []string // Field names, in table order
}

func (e *MissingCovariateError) Error() string {
	return fmt.Sprintf("method %s requires covariates that are missing: %s",
		e.Method, strings.Join(e.Missing, ", "))
}

// MissingBSAError is returned when relative/absolute conversion is
// requested but no body surface area is supplied or derivable from
// weight and height.
type MissingBSAError struct {
	Method Method
}

func (e *MissingBSAError) Error() string {
	return fmt.Sprintf("method %s: BSA conversion requested but no BSA available\n"+
		"  supply Request.BSA directly, or weight and height to derive it", e.Method)
}

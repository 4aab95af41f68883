package simulate

import (
	"fmt"
)

var ErrInvalidParameter = fmt.Errorf("invalid parameter")

// ParameterError describes a rejected generator argument.
type ParameterError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s %s=%v: %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

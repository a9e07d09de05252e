// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import "github.com/cpmech/gosl/io"

// Kind classifies errors returned by Fluid
type Kind int

const (
	// ValueNotImplemented indicates a property function without value form. Always fatal
	ValueNotImplemented Kind = iota + 1

	// DerivsNotImplemented indicates a property function without derivative form; fatal in strict mode
	DerivsNotImplemented

	// PreconditionViolation indicates a bad call; e.g. duals with different number of derivatives
	PreconditionViolation
)

// String returns the name of kind
func (k Kind) String() string {
	switch k {
	case ValueNotImplemented:
		return "ValueNotImplemented"
	case DerivsNotImplemented:
		return "DerivativesNotImplemented"
	case PreconditionViolation:
		return "PreconditionViolation"
	}
	return io.Sf("Kind(%d)", int(k))
}

// Error holds an error raised when evaluating a property function
type Error struct {
	Kind  Kind   // kind of error
	Model string // name of fluid instance
	Func  string // property function; e.g. "p_from_v_e"
	Err   error  // wrapped error, if any
}

// sentinels to be used with errors.Is
var (
	ErrValueNotImplemented  = &Error{Kind: ValueNotImplemented}
	ErrDerivsNotImplemented = &Error{Kind: DerivsNotImplemented}
	ErrPrecondition         = &Error{Kind: PreconditionViolation}
)

// Error returns the error message
func (e *Error) Error() string {
	switch e.Kind {
	case ValueNotImplemented:
		return io.Sf("%s: %s not implemented", e.Model, e.Func)
	case DerivsNotImplemented:
		return io.Sf("%s: %s derivatives not implemented", e.Model, e.Func)
	case PreconditionViolation:
		return io.Sf("%s: %s: precondition violated: %v", e.Model, e.Func, e.Err)
	}
	return io.Sf("%s: %s: %v: %v", e.Model, e.Func, e.Kind, e.Err)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind. Model and Func are compared only if set in target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	if t.Model != "" && t.Model != e.Model {
		return false
	}
	if t.Func != "" && t.Func != e.Func {
		return false
	}
	return true
}

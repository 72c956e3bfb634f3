// This file is part of isa-symexec.
//
// isa-symexec is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// isa-symexec is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with isa-symexec.  If not, see <https://www.gnu.org/licenses/>.

// Package symerr implements the curated-error pattern used throughout this
// module: a fatal host-level condition carries a Kind (one of the categories
// in the error handling table) and is raised with Panic so that callers
// several frames up the stack (the engine's per-step driver) can recover,
// classify and report it without every intermediate function needing an
// error return.
//
// Recoverable solver outcomes (Unknown, Unsatisfiable) are not represented
// here - they are ordinary values attached to a Context's Solution field.
package symerr

import (
	"fmt"
	"strings"
)

// Kind categorises a fatal condition. The zero value is never raised.
type Kind int

const (
	// SymbolicIC is raised when the instruction counter cannot be
	// concretized to a program address during fetch.
	SymbolicIC Kind = iota + 1

	// UnknownOpcode is raised when decode cannot map an instruction code
	// to a table entry.
	UnknownOpcode

	// InvalidIndirectAddress is raised when LoadMI's pointer operand is
	// still symbolic after simplification. The address is not range-checked.
	InvalidIndirectAddress

	// DivisionByZeroReached is raised if host division is executed on a
	// zero divisor. The path condition ought to have pruned this away;
	// reaching it is a forker bug, not a guest program bug.
	DivisionByZeroReached

	// TypeError is raised for ill-typed Concrete arithmetic, such as an
	// arithmetic operator applied to a boolean.
	TypeError
)

func (k Kind) String() string {
	switch k {
	case SymbolicIC:
		return "symbolic instruction counter"
	case UnknownOpcode:
		return "unknown opcode"
	case InvalidIndirectAddress:
		return "invalid indirect address"
	case DivisionByZeroReached:
		return "division by zero reached"
	case TypeError:
		return "type error"
	default:
		return "unclassified error"
	}
}

// curated is the concrete error type. The message is stored unformatted
// (together with its arguments) so that Is/Has can compare errors by
// pattern rather than by rendered text.
type curated struct {
	kind    Kind
	pattern string
	values  []interface{}
}

// Errorf builds a non-fatal curated error of the given kind. Use this when
// the caller wants to propagate the condition as a normal Go error, e.g. from
// a decode table lookup that a higher layer will turn into a Panic.
func Errorf(kind Kind, pattern string, values ...interface{}) error {
	return curated{kind: kind, pattern: pattern, values: values}
}

// Panic raises a fatal condition. The engine's step driver is the only
// caller expected to recover from this; every other layer lets it propagate.
func Panic(kind Kind, pattern string, values ...interface{}) {
	panic(curated{kind: kind, pattern: pattern, values: values})
}

// Error implements the go language error interface. If the first two
// chain parts (separated by ": ") are equal, they are collapsed into one;
// later duplicates are kept. This mirrors the
// normalisation used by the error-wrapping idiom this package descends from.
func (e curated) Error() string {
	s := fmt.Errorf(e.pattern, e.values...).Error()
	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}
	return strings.Join(p, ": ")
}

// KindOf returns the Kind of err, and false if err was not raised by this
// package.
func KindOf(err error) (Kind, bool) {
	if err == nil {
		return 0, false
	}
	if e, ok := err.(curated); ok {
		return e.kind, true
	}
	return 0, false
}

// Is reports whether err is a curated error of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Has reports whether err, or any curated error wrapped within its values,
// is of the given kind.
func Has(err error, kind Kind) bool {
	e, ok := err.(curated)
	if !ok {
		return false
	}
	if e.kind == kind {
		return true
	}
	for _, v := range e.values {
		if inner, ok := v.(curated); ok && Has(inner, kind) {
			return true
		}
	}
	return false
}

// Recover turns a recovered panic value into an error, for use in a
// deferred recover() at the boundary between the engine and its caller. If
// r was not raised by Panic, it is wrapped as an unclassified error so the
// caller never has to type-switch on recover()'s result.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if e, ok := r.(curated); ok {
		return e
	}
	return fmt.Errorf("%v", r)
}

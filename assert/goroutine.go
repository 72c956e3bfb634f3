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

// Package assert holds small runtime checks used to enforce invariants that
// the type system cannot express on its own.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns the id of the calling goroutine by parsing it out of
// a runtime stack trace. It is not meant for anything but diagnostics and
// the single-goroutine check below.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SingleGoroutine records the goroutine it is first called from and panics
// if it is ever subsequently called from a different one. The engine calls
// this on every step to enforce the "suspension only inside solver queries"
// rule: tree construction and instruction semantics are single-threaded
// even though solver queries for sibling nodes may run concurrently on a
// worker pool.
type SingleGoroutine struct {
	id  uint64
	set bool
}

// Check panics if this call is not happening on the same goroutine as the
// first call to Check on g.
func (g *SingleGoroutine) Check() {
	id := GoroutineID()
	if !g.set {
		g.id = id
		g.set = true
		return
	}
	if g.id != id {
		panic("assert: tree construction entered from more than one goroutine")
	}
}

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

package smt

import (
	"fmt"
	"time"

	z3 "github.com/mitchellh/go-z3"

	"github.com/geo2a/isa-symexec/isa/sym"
	"github.com/geo2a/isa-symexec/isa/value"
	"github.com/geo2a/isa-symexec/symerr"
)

// bvWidth is the bit-vector width spec.md §4.G names explicitly: "the
// reference lowering uses 32-bit signed bit-vectors".
const bvWidth = 32

// Z3Backend drives a single z3.Context/z3.Solver pair. It is not
// goroutine-safe - Pool gives each worker its own instance.
type Z3Backend struct {
	config *z3.Config
	ctx    *z3.Context
	solver *z3.Solver

	decls map[string]*z3.AST
}

// NewZ3Backend opens a fresh Z3 context and solver, configured for
// internal parallelism per spec.md §5 ("The SMT backend... is configured
// with internal parallelism enabled").
func NewZ3Backend() (Backend, error) {
	config := z3.NewConfig()
	config.SetParamValue("parallel.enable", "true")
	ctx := z3.NewContext(config)
	config.Close()

	return &Z3Backend{
		config: config,
		ctx:    ctx,
		solver: ctx.NewSolver(),
		decls:  make(map[string]*z3.AST),
	}, nil
}

func (b *Z3Backend) Push() { b.solver.Push() }

func (b *Z3Backend) Pop() {
	b.solver.Pop()
	b.decls = make(map[string]*z3.AST)
}

func (b *Z3Backend) DeclareInt(name string) {
	sort := b.ctx.BVSort(bvWidth)
	b.decls[name] = b.ctx.Const(b.ctx.Symbol(name), sort)
}

func (b *Z3Backend) Assert(t sym.Sym) error {
	ast, err := b.lower(t)
	if err != nil {
		return err
	}
	b.solver.Assert(ast)
	return nil
}

func (b *Z3Backend) CheckSat(timeout time.Duration, modelVars []string) (Verdict, map[string]int32, error) {
	b.ctx.UpdateParamValue("timeout", fmt.Sprintf("%d", timeout.Milliseconds()))

	switch b.solver.Check() {
	case z3.True:
		model := b.solver.Model()
		defer model.Close()
		out := make(map[string]int32, len(modelVars))
		for _, name := range modelVars {
			ast, ok := b.decls[name]
			if !ok {
				continue
			}
			v, ok := model.Eval(ast).Int()
			if ok {
				out[name] = int32(v)
			}
		}
		return VSat, out, nil
	case z3.False:
		return VUnsat, nil, nil
	default:
		return VUnknown, nil, nil
	}
}

func (b *Z3Backend) Close() {
	b.solver.Close()
	b.ctx.Close()
}

// lower translates a symbolic term to Z3's AST, the 1:1 mapping spec.md
// §4.G describes. Pointer must never be reached under a satisfied path;
// encountering one here is a translator bug, not a guest-program error.
func (b *Z3Backend) lower(t sym.Sym) (*z3.AST, error) {
	switch n := t.(type) {
	case sym.Const:
		return b.lowerConst(n.Value)
	case sym.Var:
		ast, ok := b.decls[n.Name]
		if !ok {
			return nil, fmt.Errorf("smt: free variable %q has no declaration in this problem", n.Name)
		}
		return ast, nil
	case sym.Pointer:
		symerr.Panic(symerr.TypeError, "smt: Pointer reached the translator under a satisfied path: %s", n)
		return nil, nil
	case sym.Ite:
		cond, err := b.lowerBool(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := b.lower(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := b.lower(n.Else)
		if err != nil {
			return nil, err
		}
		return cond.Ite(then, els), nil
	case sym.Add:
		return b.lowerBinary(n.X, n.Y, (*z3.AST).Add)
	case sym.Sub:
		return b.lowerBinary(n.X, n.Y, (*z3.AST).Sub)
	case sym.Mul:
		return b.lowerBinary(n.X, n.Y, (*z3.AST).Mul)
	case sym.Div:
		return b.lowerBinary(n.X, n.Y, (*z3.AST).Div)
	case sym.Mod:
		return b.lowerBinary(n.X, n.Y, (*z3.AST).Mod)
	case sym.Abs:
		x, err := b.lower(n.X)
		if err != nil {
			return nil, err
		}
		zero, _ := b.lowerConst(value.CInt32(0))
		return x.Lt(zero).Ite(b.ctx.BVNeg(x), x), nil
	case sym.Eq:
		return b.lowerBinary(n.X, n.Y, (*z3.AST).Eq)
	case sym.Gt:
		return b.lowerBinary(n.X, n.Y, (*z3.AST).Gt)
	case sym.Lt:
		return b.lowerBinary(n.X, n.Y, (*z3.AST).Lt)
	case sym.And:
		return b.lowerBinary(n.X, n.Y, (*z3.AST).And)
	case sym.Or:
		return b.lowerBinary(n.X, n.Y, (*z3.AST).Or)
	case sym.Not:
		x, err := b.lowerBool(n.X)
		if err != nil {
			return nil, err
		}
		return x.Not(), nil
	default:
		return nil, fmt.Errorf("smt: unhandled Sym node %T", t)
	}
}

// lowerBool lowers a term in a boolean position (Ite's condition, Not's
// operand). It is lower itself: it does not check that the result has the
// Bool sort.
func (b *Z3Backend) lowerBool(t sym.Sym) (*z3.AST, error) { return b.lower(t) }

func (b *Z3Backend) lowerBinary(x, y sym.Sym, op func(*z3.AST, *z3.AST) *z3.AST) (*z3.AST, error) {
	xa, err := b.lower(x)
	if err != nil {
		return nil, err
	}
	ya, err := b.lower(y)
	if err != nil {
		return nil, err
	}
	return op(xa, ya), nil
}

func (b *Z3Backend) lowerConst(c value.Concrete) (*z3.AST, error) {
	switch c.Kind() {
	case value.Bool:
		if c.Bool() {
			return b.ctx.True(), nil
		}
		return b.ctx.False(), nil
	default:
		return b.ctx.Int(int64(c.Int32()), b.ctx.BVSort(bvWidth)), nil
	}
}

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

package tree

// Loc is a zipper: a cursor focused on one node of a Tree, with enough
// ancestor context (a path crumb trail, not a pointer-rebuilt context as
// in the reference's Top | Down | Left | Right ADT) to move back up. Its
// footprint is O(depth) - the path slice has one entry per level above
// the focus, per spec.md §4.E.
type Loc struct {
	tree  *Tree
	focus NodeID
	path  []crumb
}

// Focus returns the node the zipper currently points at.
func (l Loc) Focus() Node { return l.tree.Get(l.focus) }

// AtTop reports whether the zipper is focused on the tree's root.
func (l Loc) AtTop() bool { return len(l.path) == 0 }

// Up moves the focus to the parent of the current node. No-op at the
// root.
func (l Loc) Up() Loc {
	if len(l.path) == 0 {
		return l
	}
	last := l.path[len(l.path)-1]
	return Loc{tree: l.tree, focus: last.parent, path: l.path[:len(l.path)-1]}
}

// Down moves the focus to a Trunk node's sole child. No-op on a Leaf or a
// Branch - a Branch requires Left or Right to disambiguate which child.
func (l Loc) Down() Loc {
	n := l.Focus()
	if n.Kind != KindTrunk {
		return l
	}
	return Loc{tree: l.tree, focus: n.Child, path: append(append([]crumb(nil), l.path...), crumb{parent: l.focus})}
}

// Left moves the focus to a Branch node's left child. No-op otherwise.
func (l Loc) Left() Loc {
	n := l.Focus()
	if n.Kind != KindBranch {
		return l
	}
	c := crumb{parent: l.focus, isRight: false, sibling: n.Right, hasSibling: true}
	return Loc{tree: l.tree, focus: n.Left, path: append(append([]crumb(nil), l.path...), c)}
}

// Right moves the focus to a Branch node's right child. No-op otherwise.
func (l Loc) Right() Loc {
	n := l.Focus()
	if n.Kind != KindBranch {
		return l
	}
	c := crumb{parent: l.focus, isRight: true, sibling: n.Left, hasSibling: true}
	return Loc{tree: l.tree, focus: n.Right, path: append(append([]crumb(nil), l.path...), c)}
}

// Top moves the focus all the way up to the tree's root.
func (l Loc) Top() Loc {
	for !l.AtTop() {
		l = l.Up()
	}
	return l
}

// Move is one zipper movement, used to compose a script for Shift/Travel.
type Move func(Loc) Loc

var (
	MoveUp    Move = Loc.Up
	MoveDown  Move = Loc.Down
	MoveLeft  Move = Loc.Left
	MoveRight Move = Loc.Right
	MoveTop   Move = Loc.Top
)

// Shift applies script to loc in order and returns the resulting Loc.
// Every Move in this package is already a no-op at its respective
// boundary, so a script can never get "stuck" partway.
func Shift(loc Loc, script []Move) Loc {
	for _, m := range script {
		loc = m(loc)
	}
	return loc
}

// Travel is Shift plus reading the focus's Value off the final location.
func Travel(loc Loc, script []Move) (interface{}, Loc) {
	loc = Shift(loc, script)
	return loc.Focus().Value, loc
}

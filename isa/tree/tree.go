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

// Package tree implements the binary state tree the engine builds as it
// explores a program's feasible execution paths, and a zipper cursor for
// navigating it in O(depth) space. Nodes are keyed by a monotonically
// assigned integer ID; see spec.md §4.E.
//
// The reference design describes the tree as a persistent, purely
// functional structure rebuilt on every insertion. This module keeps the
// observable shape (Leaf/Trunk/Branch, insert1/insert2, leafs/keys,
// findLoc) but stores nodes in a flat arena indexed by NodeID, per the
// design note in spec.md §9 ("state tree -> arena + node-ID indices"):
// simpler and faster than rebuilding a tree of pointers on every step.
package tree

import "fmt"

// NodeID is a unique, monotonically assigned tree node identifier.
type NodeID int

// Kind tags which of the three node shapes a Node is.
type Kind int

const (
	KindLeaf Kind = iota
	KindTrunk
	KindBranch
)

// Node is one arena slot. Every node, Leaf, Trunk or Branch, carries Value (the node-ID -> Context
// association lives in the engine's Trace, not here - this package only
// knows about shape). A Trunk has one child; a Branch has two.
type Node struct {
	ID    NodeID
	Kind  Kind
	Value interface{}

	Child       NodeID // Trunk
	Left, Right NodeID // Branch
}

// Tree is the arena: a flat, append-only slice of Nodes plus the ID of the
// root. The tree only ever grows at its leaves (spec.md §9), so no node is
// ever removed or relocated once allocated.
type Tree struct {
	nodes []Node
	root  NodeID
}

// New returns a Tree with a single root Leaf holding value, at ID 0.
func New(value interface{}) *Tree {
	t := &Tree{}
	t.nodes = append(t.nodes, Node{ID: 0, Kind: KindLeaf, Value: value})
	t.root = 0
	return t
}

// Root returns the tree's root node ID.
func (t *Tree) Root() NodeID { return t.root }

// Get returns the node at id. Panics if id is out of range - every NodeID
// in circulation was handed out by this Tree, so an out-of-range ID is a
// caller bug, not a recoverable condition.
func (t *Tree) Get(id NodeID) Node {
	if int(id) < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("tree: node id %d out of range", id))
	}
	return t.nodes[id]
}

// nextID returns the next unused NodeID without allocating it.
func (t *Tree) nextID() NodeID { return NodeID(len(t.nodes)) }

func (t *Tree) alloc(n Node) NodeID {
	id := t.nextID()
	n.ID = id
	t.nodes = append(t.nodes, n)
	return id
}

// Insert1 turns the Leaf at id into a Trunk with a single new Leaf child
// holding value. Panics if id does not name a Leaf.
func (t *Tree) Insert1(id NodeID, value interface{}) (childID NodeID) {
	n := t.Get(id)
	if n.Kind != KindLeaf {
		panic(fmt.Sprintf("tree: Insert1 on non-leaf node %d", id))
	}
	child := t.alloc(Node{Kind: KindLeaf, Value: value})
	t.nodes[id] = Node{ID: id, Kind: KindTrunk, Value: n.Value, Child: child}
	return child
}

// Insert2 turns the Leaf at id into a Branch with two new Leaf children
// holding left and right. Panics if id does not name a Leaf.
func (t *Tree) Insert2(id NodeID, left, right interface{}) (leftID, rightID NodeID) {
	n := t.Get(id)
	if n.Kind != KindLeaf {
		panic(fmt.Sprintf("tree: Insert2 on non-leaf node %d", id))
	}
	l := t.alloc(Node{Kind: KindLeaf, Value: left})
	r := t.alloc(Node{Kind: KindLeaf, Value: right})
	t.nodes[id] = Node{ID: id, Kind: KindBranch, Value: n.Value, Left: l, Right: r}
	return l, r
}

// Leafs returns the IDs of every current leaf, in pre-order.
func (t *Tree) Leafs() []NodeID {
	var out []NodeID
	t.walk(t.root, func(n Node) {
		if n.Kind == KindLeaf {
			out = append(out, n.ID)
		}
	})
	return out
}

// Keys returns the IDs of every node in the tree, in pre-order.
func (t *Tree) Keys() []NodeID {
	var out []NodeID
	t.walk(t.root, func(n Node) { out = append(out, n.ID) })
	return out
}

func (t *Tree) walk(id NodeID, visit func(Node)) {
	n := t.Get(id)
	visit(n)
	switch n.Kind {
	case KindTrunk:
		t.walk(n.Child, visit)
	case KindBranch:
		t.walk(n.Left, visit)
		t.walk(n.Right, visit)
	}
}

// FindLoc returns a Zipper focused on the node with the given ID, and
// false if no such node exists in t.
func (t *Tree) FindLoc(id NodeID) (Loc, bool) {
	if int(id) < 0 || int(id) >= len(t.nodes) {
		return Loc{}, false
	}
	path, ok := t.pathTo(t.root, id, nil)
	if !ok {
		return Loc{}, false
	}
	return Loc{tree: t, focus: id, path: path}, true
}

// crumb is one step of the path from the root down to a focus: which
// parent, and, for a Branch parent, which side was taken (and the ID of
// the untaken sibling).
type crumb struct {
	parent  NodeID
	isRight bool // only meaningful when parent is a Branch
	sibling NodeID
	hasSibling bool
}

func (t *Tree) pathTo(cur, target NodeID, path []crumb) ([]crumb, bool) {
	if cur == target {
		return path, true
	}
	n := t.Get(cur)
	switch n.Kind {
	case KindTrunk:
		return t.pathTo(n.Child, target, append(path, crumb{parent: cur}))
	case KindBranch:
		if p, ok := t.pathTo(n.Left, target, append(path, crumb{parent: cur, isRight: false, sibling: n.Right, hasSibling: true})); ok {
			return p, true
		}
		return t.pathTo(n.Right, target, append(path, crumb{parent: cur, isRight: true, sibling: n.Left, hasSibling: true}))
	default:
		return nil, false
	}
}

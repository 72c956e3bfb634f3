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

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geo2a/isa-symexec/isa/tree"
)

func TestInsert1GrowsATrunk(t *testing.T) {
	tr := tree.New("root")
	child := tr.Insert1(tr.Root(), "child")

	root := tr.Get(tr.Root())
	assert.Equal(t, tree.KindTrunk, root.Kind)
	assert.Equal(t, child, root.Child)

	leaf := tr.Get(child)
	assert.Equal(t, tree.KindLeaf, leaf.Kind)
	assert.Equal(t, "child", leaf.Value)
}

func TestInsert2GrowsABranch(t *testing.T) {
	tr := tree.New("root")
	left, right := tr.Insert2(tr.Root(), "left", "right")

	root := tr.Get(tr.Root())
	assert.Equal(t, tree.KindBranch, root.Kind)
	assert.Equal(t, left, root.Left)
	assert.Equal(t, right, root.Right)
}

func TestInsertOnNonLeafPanics(t *testing.T) {
	tr := tree.New("root")
	tr.Insert1(tr.Root(), "child")
	assert.Panics(t, func() { tr.Insert1(tr.Root(), "again") })
}

func TestLeafsReturnsOnlyCurrentLeaves(t *testing.T) {
	tr := tree.New("root")
	left, right := tr.Insert2(tr.Root(), "left", "right")
	tr.Insert1(left, "grandchild")

	leafs := tr.Leafs()
	require.Len(t, leafs, 2)
	assert.NotContains(t, leafs, left)
	assert.Contains(t, leafs, right)
}

func TestKeysReturnsEveryNode(t *testing.T) {
	tr := tree.New("root")
	left, right := tr.Insert2(tr.Root(), "left", "right")

	keys := tr.Keys()
	assert.Len(t, keys, 3)
	assert.Contains(t, keys, tr.Root())
	assert.Contains(t, keys, left)
	assert.Contains(t, keys, right)
}

func TestFindLocOnUnknownIDFails(t *testing.T) {
	tr := tree.New("root")
	_, ok := tr.FindLoc(tree.NodeID(99))
	assert.False(t, ok)
}

func TestGetOutOfRangePanics(t *testing.T) {
	tr := tree.New("root")
	assert.Panics(t, func() { tr.Get(tree.NodeID(42)) })
}

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

func buildTestTree() *tree.Tree {
	tr := tree.New("root")
	left, right := tr.Insert2(tr.Root(), "left", "right")
	tr.Insert1(left, "left-child")
	tr.Insert1(right, "right-child")
	return tr
}

func TestZipperRightThenUpReturnsToRoot(t *testing.T) {
	tr := buildTestTree()
	loc, ok := tr.FindLoc(tr.Root())
	require.True(t, ok)

	moved := tree.Shift(loc, []tree.Move{tree.MoveRight, tree.MoveDown})
	assert.Equal(t, "right-child", moved.Focus().Value)

	back := tree.Shift(moved, []tree.Move{tree.MoveTop})
	assert.True(t, back.AtTop())
	assert.Equal(t, loc.Focus().Value, back.Focus().Value)
}

// TestZipperRoundTripProperty is spec.md §8 Testable Property 7: for any
// location and any script, top(shift(loc, script)) == top(loc).
func TestZipperRoundTripProperty(t *testing.T) {
	tr := buildTestTree()
	loc, ok := tr.FindLoc(tr.Root())
	require.True(t, ok)

	scripts := [][]tree.Move{
		{tree.MoveLeft, tree.MoveDown, tree.MoveUp, tree.MoveUp},
		{tree.MoveRight, tree.MoveDown},
		{tree.MoveLeft, tree.MoveUp, tree.MoveRight, tree.MoveDown, tree.MoveUp, tree.MoveUp},
		{}, // empty script is a no-op
	}

	for _, script := range scripts {
		moved := tree.Shift(loc, script)
		assert.Equal(t, loc.Top().Focus().Value, moved.Top().Focus().Value)
	}
}

func TestMovesAreNoOpsAtTheirBoundaries(t *testing.T) {
	tr := tree.New("leaf-only")
	loc, ok := tr.FindLoc(tr.Root())
	require.True(t, ok)

	assert.Equal(t, loc, loc.Up())
	assert.Equal(t, loc, loc.Down())
	assert.Equal(t, loc, loc.Left())
	assert.Equal(t, loc, loc.Right())
}

func TestTravelReadsFocusValue(t *testing.T) {
	tr := buildTestTree()
	loc, ok := tr.FindLoc(tr.Root())
	require.True(t, ok)

	value, final := tree.Travel(loc, []tree.Move{tree.MoveLeft, tree.MoveDown})
	assert.Equal(t, "left-child", value)
	assert.Equal(t, "left-child", final.Focus().Value)
}

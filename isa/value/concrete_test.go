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

package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geo2a/isa-symexec/isa/value"
)

// TestMulIsMultiplicationNotAddition guards against the transcription bug
// the source material has in its CInt32 Mul instance (defined as addition).
// 6 * 7 must be 42, not 13.
func TestMulIsMultiplicationNotAddition(t *testing.T) {
	got := value.Mul(value.CInt32(6), value.CInt32(7))
	assert.Equal(t, int32(42), got.Int32())
	assert.NotEqual(t, int32(13), got.Int32())
}

func TestAddWordAndIntCoercesToInt(t *testing.T) {
	got := value.Add(value.CWord16(10), value.CInt32(5))
	assert.Equal(t, value.Int32, got.Kind())
	assert.Equal(t, int32(15), got.Int32())
}

func TestAddWordAndWordStaysWord(t *testing.T) {
	got := value.Add(value.CWord16(10), value.CWord16(5))
	assert.Equal(t, value.Word16, got.Kind())
}

func TestDivByZeroPanicsWithDivisionByZeroReached(t *testing.T) {
	assert.Panics(t, func() {
		value.Div(value.CInt32(10), value.CInt32(0))
	})
}

func TestAbsOfNegativeIsPositive(t *testing.T) {
	got := value.Abs(value.CInt32(-7))
	assert.Equal(t, int32(7), got.Int32())
}

func TestEqualDistinguishesKindEvenWithSameBits(t *testing.T) {
	assert.False(t, value.CInt32(5).Equal(value.CWord16(5)))
	assert.True(t, value.CInt32(5).Equal(value.CInt32(5)))
}

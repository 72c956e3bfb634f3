// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geo2a/isa-symexec/logger"
)

func TestLogger(t *testing.T) {
	tw := &strings.Builder{}

	logger.Write(tw)
	assert.Equal(t, "", tw.String())

	logger.Log("test", "this is a test")
	logger.Write(tw)
	assert.Equal(t, "test: this is a test\n", tw.String())

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Reset()

	logger.Log("test2", "this is another test")
	logger.Write(tw)
	assert.Equal(t, "test: this is a test\ntest2: this is another test\n", tw.String())

	// asking for too many entries in a Tail() should be okay
	tw.Reset()
	logger.Tail(tw, 100)
	assert.Equal(t, "test: this is a test\ntest2: this is another test\n", tw.String())

	// asking for exactly the correct number of entries is okay
	tw.Reset()
	logger.Tail(tw, 2)
	assert.Equal(t, "test: this is a test\ntest2: this is another test\n", tw.String())

	// asking for fewer entries is okay too
	tw.Reset()
	logger.Tail(tw, 1)
	assert.Equal(t, "test2: this is another test\n", tw.String())

	// and no entries
	tw.Reset()
	logger.Tail(tw, 0)
	assert.Equal(t, "", tw.String())
}

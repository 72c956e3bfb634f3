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

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Visualize renders t's arena as a Graphviz dot graph via memviz.Map,
// the same "show me the shape of what happened" tool the teacher uses for
// its coprocessor call-graph developer tooling. It is purely a debugging
// aid - the engine and checker never read a rendered graph back.
func Visualize(w io.Writer, t *Tree) {
	memviz.Map(w, t)
}

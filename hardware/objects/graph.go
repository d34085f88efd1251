// This file is part of ZGopher.
//
// ZGopher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZGopher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZGopher.  If not, see <https://www.gnu.org/licenses/>.

package objects

// Node is an object in a Graph of the object tree.
type Node struct {
	Number   int
	Name     string
	Children []*Node
}

// Graph returns the object tree as a forest of Nodes, one for each object
// that has no parent. The name function supplies the short name of an
// object and can be nil.
//
// The walk of each sibling chain is bounded by the number of objects so a
// corrupt tree will not cause an infinite loop.
func Graph(tree ObjectTree, name func(obj int) string) []*Node {
	var roots []*Node

	visited := make(map[int]bool)

	var walk func(obj int) *Node
	walk = func(obj int) *Node {
		visited[obj] = true
		n := &Node{Number: obj}
		if name != nil {
			n.Name = name(obj)
		}

		c := tree.Child(obj)
		for i := 0; c != 0 && i < tree.NumObjects(); i++ {
			if c > tree.NumObjects() || visited[c] {
				break
			}
			n.Children = append(n.Children, walk(c))
			c = tree.Sibling(c)
		}

		return n
	}

	for obj := 1; obj <= tree.NumObjects(); obj++ {
		if tree.Parent(obj) == 0 && !visited[obj] {
			roots = append(roots, walk(obj))
		}
	}

	return roots
}

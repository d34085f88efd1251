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

package objects_test

import (
	"testing"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/hardware/objects"
	"github.com/zgopher/zgopher/random"
	"github.com/zgopher/zgopher/test"
)

const tableAddress = 0x40

type propDef struct {
	num  int
	data []uint8
}

type objDef struct {
	parent  int
	sibling int
	child   int
	props   []propDef
}

// build an object table in memory. property tables follow directly after the
// object entries, in the same way as a story compiler would arrange them
func build(layout objects.Layout, defs []objDef) (*memory.Memory, *objects.Tree) {
	mem := memory.NewMemory(make([]uint8, 4096))

	for i := 0; i < layout.Properties; i++ {
		mem.SetUint16(tableAddress+i*2, uint16(0x1000+i+1))
	}

	objStart := tableAddress + layout.Properties*2
	props := objStart + len(defs)*layout.EntrySize

	for i, d := range defs {
		a := objStart + i*layout.EntrySize
		if layout.EntrySize == 9 {
			mem.SetUint8(a+4, uint8(d.parent))
			mem.SetUint8(a+5, uint8(d.sibling))
			mem.SetUint8(a+6, uint8(d.child))
			mem.SetUint16(a+7, uint16(props))
		} else {
			mem.SetUint16(a+6, uint16(d.parent))
			mem.SetUint16(a+8, uint16(d.sibling))
			mem.SetUint16(a+10, uint16(d.child))
			mem.SetUint16(a+12, uint16(props))
		}

		// short name of one word
		mem.SetUint8(props, 1)
		mem.SetUint16(props+1, 0x8000|uint16(i+6)<<10|5<<5|5)
		props += 3

		for _, p := range d.props {
			if layout.EntrySize == 9 {
				mem.SetUint8(props, uint8(32*(len(p.data)-1)+p.num))
				props++
			} else {
				switch len(p.data) {
				case 1:
					mem.SetUint8(props, uint8(p.num))
					props++
				case 2:
					mem.SetUint8(props, uint8(0x40|p.num))
					props++
				default:
					mem.SetUint8(props, uint8(0x80|p.num))
					mem.SetUint8(props+1, uint8(0x80|(len(p.data)&0x3f)))
					props += 2
				}
			}
			mem.WriteBytes(props, p.data)
			props += len(p.data)
		}

		// property list terminator
		mem.SetUint8(props, 0)
		props++
	}

	return mem, objects.NewTree(mem, tableAddress, layout)
}

func emptyObjects(n int) []objDef {
	defs := make([]objDef, n)
	return defs
}

// checkTree tests the structural invariant of the tree. every object has at
// most one parent and the child chain of every object contains exactly the
// objects that claim it as their parent
func checkTree(t *testing.T, tree objects.ObjectTree) {
	t.Helper()

	for p := 1; p <= tree.NumObjects(); p++ {
		chain := make(map[int]bool)
		for c, i := tree.Child(p), 0; c != 0; c, i = tree.Sibling(c), i+1 {
			if i > tree.NumObjects() {
				t.Fatalf("sibling chain of object %d does not terminate", p)
			}
			if chain[c] {
				t.Fatalf("object %d appears twice in child chain of %d", c, p)
			}
			chain[c] = true
			test.ExpectEquality(t, tree.Parent(c), p)
		}

		for o := 1; o <= tree.NumObjects(); o++ {
			if tree.Parent(o) == p {
				test.ExpectSuccess(t, chain[o], o)
			}
		}
	}
}

func TestNumObjects(t *testing.T) {
	_, tree := build(objects.Classic, emptyObjects(5))
	test.ExpectEquality(t, tree.NumObjects(), 5)
	test.ExpectSuccess(t, tree.ValidObject(5))
	test.ExpectFailure(t, tree.ValidObject(6))
	test.ExpectFailure(t, tree.ValidObject(0))

	_, tree = build(objects.Modern, emptyObjects(3))
	test.ExpectEquality(t, tree.NumObjects(), 3)
}

func TestInsertRemove(t *testing.T) {
	for _, layout := range []objects.Layout{objects.Classic, objects.Modern} {
		_, tree := build(layout, emptyObjects(4))

		tree.InsertObject(1, 2)
		tree.InsertObject(1, 3)
		tree.InsertObject(1, 4)
		test.ExpectEquality(t, tree.Child(1), 4)
		test.ExpectEquality(t, tree.Sibling(4), 3)
		test.ExpectEquality(t, tree.Sibling(3), 2)
		checkTree(t, tree)

		// remove from middle of the chain
		tree.RemoveObject(3)
		test.ExpectEquality(t, tree.Parent(3), 0)
		test.ExpectEquality(t, tree.Sibling(3), 0)
		test.ExpectEquality(t, tree.Sibling(4), 2)
		checkTree(t, tree)

		// move an object with a parent
		tree.InsertObject(3, 2)
		test.ExpectEquality(t, tree.Child(3), 2)
		test.ExpectEquality(t, tree.Sibling(4), 0)
		checkTree(t, tree)

		// removing an orphan is harmless
		tree.RemoveObject(1)
		test.ExpectEquality(t, tree.Child(1), 4)
		checkTree(t, tree)
	}
}

func TestTreeInvariant(t *testing.T) {
	const numObjects = 12

	rnd := random.NewRandom()
	rnd.Seed(1984)

	_, tree := build(objects.Modern, emptyObjects(numObjects))

	for i := 0; i < 500; i++ {
		obj := rnd.Intn(numObjects) + 1
		if rnd.Intn(3) == 0 {
			tree.RemoveObject(obj)
		} else {
			parent := rnd.Intn(numObjects) + 1

			// inserting an object into its own descendant creates a cycle,
			// which a story file would never do
			descendant := false
			for p := parent; p != 0; p = tree.Parent(p) {
				if p == obj {
					descendant = true
					break
				}
			}
			if descendant {
				continue
			}

			tree.InsertObject(parent, obj)
		}
		checkTree(t, tree)
	}
}

func TestCorruptSiblingChain(t *testing.T) {
	defs := emptyObjects(4)
	defs[0].child = 2
	defs[1].parent = 1
	defs[1].sibling = 3
	defs[2].parent = 1
	defs[2].sibling = 2
	defs[3].parent = 1
	_, tree := build(objects.Classic, defs)

	// object 4 claims 1 as a parent but is not in the cyclic chain
	tree.RemoveObject(4)
	test.ExpectEquality(t, tree.Parent(4), 0)
	test.ExpectEquality(t, tree.Child(1), 2)
}

func TestAttributes(t *testing.T) {
	mem, tree := build(objects.Classic, emptyObjects(2))

	tree.SetAttribute(1, 0)
	tree.SetAttribute(1, 0)
	test.ExpectSuccess(t, tree.IsAttributeSet(1, 0))
	test.ExpectEquality(t, mem.Uint8(tableAddress+62), 0x80)

	tree.SetAttribute(1, 31)
	test.ExpectEquality(t, mem.Uint8(tableAddress+62+3), 0x01)

	tree.ClearAttribute(1, 0)
	test.ExpectFailure(t, tree.IsAttributeSet(1, 0))
	test.ExpectSuccess(t, tree.IsAttributeSet(1, 31))

	// out of range attributes do not touch the parent field
	tree.SetAttribute(1, 32)
	test.ExpectFailure(t, tree.IsAttributeSet(1, 32))
	test.ExpectEquality(t, tree.Parent(1), 0)

	_, tree = build(objects.Modern, emptyObjects(2))
	tree.SetAttribute(2, 47)
	test.ExpectSuccess(t, tree.IsAttributeSet(2, 47))
	test.ExpectFailure(t, tree.IsAttributeSet(1, 47))
}

func TestClassicProperties(t *testing.T) {
	defs := emptyObjects(2)
	defs[0].props = []propDef{
		{num: 18, data: []uint8{0x12, 0x34}},
		{num: 7, data: []uint8{0x56}},
		{num: 2, data: []uint8{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	_, tree := build(objects.Classic, defs)

	a := tree.PropertyAddress(1, 18)
	test.ExpectInequality(t, a, 0)
	test.ExpectEquality(t, tree.PropertyLength(a), 2)
	test.ExpectEquality(t, tree.Property(1, 18), 0x1234)
	test.ExpectEquality(t, tree.Property(1, 7), 0x56)
	test.ExpectEquality(t, tree.PropertyLength(tree.PropertyAddress(1, 2)), 8)
	test.ExpectEquality(t, tree.Property(1, 2), 0x0102)
	test.ExpectEquality(t, tree.PropertyLength(0), 0)

	// missing properties use the default value
	test.ExpectEquality(t, tree.PropertyAddress(1, 3), 0)
	test.ExpectEquality(t, tree.Property(1, 3), 0x1003)
	test.ExpectEquality(t, tree.Property(2, 31), 0x101f)

	n, err := tree.NextProperty(1, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 18)
	n, _ = tree.NextProperty(1, 18)
	test.ExpectEquality(t, n, 7)
	n, _ = tree.NextProperty(1, 7)
	test.ExpectEquality(t, n, 2)
	n, _ = tree.NextProperty(1, 2)
	test.ExpectEquality(t, n, 0)
	_, err = tree.NextProperty(1, 5)
	test.ExpectSuccess(t, curated.Is(err, objects.PropertyNotPresent))

	test.ExpectSuccess(t, tree.SetProperty(1, 7, 0x1ff))
	test.ExpectEquality(t, tree.Property(1, 7), 0xff)
	test.ExpectSuccess(t, tree.SetProperty(1, 18, 0xbeef))
	test.ExpectEquality(t, tree.Property(1, 18), 0xbeef)
	err = tree.SetProperty(2, 18, 1)
	test.ExpectSuccess(t, curated.Is(err, objects.PropertyNotPresent))

	test.ExpectEquality(t, tree.ShortNameLength(1), 2)
}

func TestModernProperties(t *testing.T) {
	long := make([]uint8, 64)
	long[0] = 0xaa
	long[1] = 0xbb

	defs := emptyObjects(1)
	defs[0].props = []propDef{
		{num: 63, data: []uint8{1}},
		{num: 40, data: []uint8{0x10, 0x20}},
		{num: 12, data: []uint8{9, 8, 7, 6, 5}},
		{num: 4, data: long},
	}
	_, tree := build(objects.Modern, defs)

	test.ExpectEquality(t, tree.PropertyLength(tree.PropertyAddress(1, 63)), 1)
	test.ExpectEquality(t, tree.Property(1, 63), 1)
	test.ExpectEquality(t, tree.Property(1, 40), 0x1020)
	test.ExpectEquality(t, tree.PropertyLength(tree.PropertyAddress(1, 12)), 5)
	test.ExpectEquality(t, tree.PropertyLength(tree.PropertyAddress(1, 4)), 64)
	test.ExpectEquality(t, tree.Property(1, 4), 0xaabb)

	n, _ := tree.NextProperty(1, 12)
	test.ExpectEquality(t, n, 4)
	n, _ = tree.NextProperty(1, 4)
	test.ExpectEquality(t, n, 0)
}

func TestGraph(t *testing.T) {
	_, tree := build(objects.Classic, emptyObjects(5))
	tree.InsertObject(1, 2)
	tree.InsertObject(1, 3)
	tree.InsertObject(3, 4)

	roots := objects.Graph(tree, nil)
	test.DemandEquality(t, len(roots), 2)
	test.ExpectEquality(t, roots[0].Number, 1)
	test.ExpectEquality(t, roots[1].Number, 5)
	test.DemandEquality(t, len(roots[0].Children), 2)
	test.ExpectEquality(t, roots[0].Children[0].Number, 3)
	test.ExpectEquality(t, roots[0].Children[0].Children[0].Number, 4)
}

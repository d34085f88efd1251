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

import (
	"fmt"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/memory"
)

// PropertyNotPresent is returned when a property is written to (or
// iterated from) when the object does not have that property.
const PropertyNotPresent = "objects: property %d of object %d is not present"

// ObjectTree is the interface to the object table used by the rest of the
// emulation.
type ObjectTree interface {
	NumObjects() int

	Parent(obj int) int
	Sibling(obj int) int
	Child(obj int) int
	SetParent(obj int, parent int)
	SetSibling(obj int, sibling int)
	SetChild(obj int, child int)

	InsertObject(parent int, obj int)
	RemoveObject(obj int)

	IsAttributeSet(obj int, attr int) bool
	SetAttribute(obj int, attr int)
	ClearAttribute(obj int, attr int)

	ShortNameAddress(obj int) int
	PropertyAddress(obj int, prop int) int
	PropertyLength(dataAddress int) int
	NextProperty(obj int, prop int) (int, error)
	Property(obj int, prop int) int
	SetProperty(obj int, prop int, value int) error
}

// Tree implements the ObjectTree interface for either of the two layouts.
type Tree struct {
	mem     memory.Accessor
	address int
	layout  Layout

	numObjects int
}

// NewTree is the preferred method of initialisation for the Tree type. The
// address is the start of the object table (ie. the start of the property
// defaults table).
func NewTree(mem memory.Accessor, address int, layout Layout) *Tree {
	tr := &Tree{
		mem:     mem,
		address: address,
		layout:  layout,
	}
	tr.numObjects = tr.countObjects()
	return tr
}

func (tr *Tree) String() string {
	return fmt.Sprintf("%s object table at %#04x with %d objects", tr.layout.Name, tr.address, tr.numObjects)
}

// Layout returns the layout of the object table.
func (tr *Tree) Layout() Layout {
	return tr.layout
}

// the number of objects is not stored anywhere. we assume that the object
// entries end where the first property table begins
func (tr *Tree) countObjects() int {
	start := tr.objectAddress(1)
	lowest := tr.mem.Size()

	n := 0
	for a := start; a+tr.layout.EntrySize <= lowest && a+tr.layout.EntrySize <= tr.mem.Size(); a += tr.layout.EntrySize {
		props := int(tr.mem.Uint16(a + tr.layout.propsPtr))
		if props < lowest && props >= a+tr.layout.EntrySize {
			lowest = props
		}
		n++

		// the classic layout can not refer to more than 255 objects
		if tr.layout.linkWidth == 1 && n == 255 {
			break
		}
	}

	return n
}

// NumObjects returns the number of objects in the table.
func (tr *Tree) NumObjects() int {
	return tr.numObjects
}

// ValidObject returns true if obj is a valid object number.
func (tr *Tree) ValidObject(obj int) bool {
	return obj > 0 && obj <= tr.numObjects
}

// ValidAttribute returns true if attr is a valid attribute number.
func (tr *Tree) ValidAttribute(attr int) bool {
	return attr >= 0 && attr < tr.layout.Attributes
}

func (tr *Tree) objectAddress(obj int) int {
	return tr.address + tr.layout.Properties*2 + (obj-1)*tr.layout.EntrySize
}

func (tr *Tree) link(obj int, offset int) int {
	a := tr.objectAddress(obj) + offset
	if tr.layout.linkWidth == 1 {
		return int(tr.mem.Uint8(a))
	}
	return int(tr.mem.Uint16(a))
}

func (tr *Tree) setLink(obj int, offset int, v int) {
	a := tr.objectAddress(obj) + offset
	if tr.layout.linkWidth == 1 {
		tr.mem.SetUint8(a, uint8(v))
	} else {
		tr.mem.SetUint16(a, uint16(v))
	}
}

// Parent of object.
func (tr *Tree) Parent(obj int) int {
	return tr.link(obj, tr.layout.parent)
}

// Sibling of object.
func (tr *Tree) Sibling(obj int) int {
	return tr.link(obj, tr.layout.sibling)
}

// Child of object.
func (tr *Tree) Child(obj int) int {
	return tr.link(obj, tr.layout.child)
}

// SetParent of object.
func (tr *Tree) SetParent(obj int, parent int) {
	tr.setLink(obj, tr.layout.parent, parent)
}

// SetSibling of object.
func (tr *Tree) SetSibling(obj int, sibling int) {
	tr.setLink(obj, tr.layout.sibling, sibling)
}

// SetChild of object.
func (tr *Tree) SetChild(obj int, child int) {
	tr.setLink(obj, tr.layout.child, child)
}

// RemoveObject detaches the object from its parent. The children of the
// object go with it.
func (tr *Tree) RemoveObject(obj int) {
	parent := tr.Parent(obj)
	tr.SetParent(obj, 0)

	if parent != 0 {
		if tr.Child(parent) == obj {
			tr.SetChild(parent, tr.Sibling(obj))
		} else {
			// find the sibling that precedes obj. the search is bounded so
			// that a corrupt sibling chain can not loop forever. if obj is
			// not found then the sibling chain is left alone
			prev := tr.Child(parent)
			next := 0
			if prev != 0 {
				next = tr.Sibling(prev)
			}
			for i := 0; i < tr.numObjects && next != 0 && next != obj; i++ {
				prev = next
				next = tr.Sibling(prev)
			}
			if next == obj {
				tr.SetSibling(prev, tr.Sibling(obj))
			}
		}
	}

	tr.SetSibling(obj, 0)
}

// InsertObject makes obj the first child of parent. If obj already has a
// parent it is removed from that parent first.
func (tr *Tree) InsertObject(parent int, obj int) {
	if tr.Parent(obj) > 0 {
		tr.RemoveObject(obj)
	}

	child := tr.Child(parent)
	tr.SetParent(obj, parent)
	tr.SetChild(parent, obj)
	tr.SetSibling(obj, child)
}

func (tr *Tree) attributeAddress(obj int, attr int) (int, uint8) {
	return tr.objectAddress(obj) + attr/8, 0x80 >> (attr & 7)
}

// IsAttributeSet returns the state of the attribute.
func (tr *Tree) IsAttributeSet(obj int, attr int) bool {
	if !tr.ValidAttribute(attr) {
		return false
	}
	a, mask := tr.attributeAddress(obj, attr)
	return tr.mem.Uint8(a)&mask == mask
}

// SetAttribute sets the attribute. Invalid attribute numbers are ignored.
func (tr *Tree) SetAttribute(obj int, attr int) {
	if !tr.ValidAttribute(attr) {
		return
	}
	a, mask := tr.attributeAddress(obj, attr)
	tr.mem.SetUint8(a, tr.mem.Uint8(a)|mask)
}

// ClearAttribute clears the attribute. Invalid attribute numbers are
// ignored.
func (tr *Tree) ClearAttribute(obj int, attr int) {
	if !tr.ValidAttribute(attr) {
		return
	}
	a, mask := tr.attributeAddress(obj, attr)
	tr.mem.SetUint8(a, tr.mem.Uint8(a)&^mask)
}

func (tr *Tree) propertyTable(obj int) int {
	return int(tr.mem.Uint16(tr.objectAddress(obj) + tr.layout.propsPtr))
}

// ShortNameAddress returns the address of the encoded short name of the
// object. The short name is preceded by a byte giving its length in words.
func (tr *Tree) ShortNameAddress(obj int) int {
	return tr.propertyTable(obj) + 1
}

// ShortNameLength returns the length of the short name in bytes.
func (tr *Tree) ShortNameLength(obj int) int {
	return int(tr.mem.Uint8(tr.propertyTable(obj))) * 2
}

func (tr *Tree) firstProperty(obj int) int {
	t := tr.propertyTable(obj)
	return t + int(tr.mem.Uint8(t))*2 + 1
}

// PropertyAddress returns the address of the data of the property. Zero if
// the object does not have the property.
func (tr *Tree) PropertyAddress(obj int, prop int) int {
	a := tr.firstProperty(obj)
	for {
		n := tr.layout.propertyNum(tr.mem, a)
		if n == 0 {
			return 0
		}
		sz := tr.layout.propertySizeBytes(tr.mem, a)
		if n == prop {
			return a + sz
		}
		a += sz + tr.layout.propertyLength(tr.mem, a+sz)
	}
}

// PropertyLength returns the length of the property data at the address.
// The address must be the address of the property data, as returned by
// PropertyAddress(). A data address of zero returns zero.
func (tr *Tree) PropertyLength(dataAddress int) int {
	return tr.layout.propertyLength(tr.mem, dataAddress)
}

// NextProperty returns the number of the property that follows prop in the
// object's property list. If prop is zero then the first property is
// returned.
func (tr *Tree) NextProperty(obj int, prop int) (int, error) {
	if prop == 0 {
		return tr.layout.propertyNum(tr.mem, tr.firstProperty(obj)), nil
	}

	a := tr.PropertyAddress(obj, prop)
	if a == 0 {
		return 0, curated.Errorf(PropertyNotPresent, prop, obj)
	}

	return tr.layout.propertyNum(tr.mem, a+tr.PropertyLength(a)), nil
}

// PropertyDefault returns the default value of the property.
func (tr *Tree) PropertyDefault(prop int) int {
	if prop < 1 || prop > tr.layout.Properties {
		return 0
	}
	return int(tr.mem.Uint16(tr.address + (prop-1)*2))
}

// Property returns the value of the property. If the object does not have
// the property then the default value is returned.
//
// A property of length one is returned as a byte value. All other
// properties return the first word of data.
func (tr *Tree) Property(obj int, prop int) int {
	a := tr.PropertyAddress(obj, prop)
	if a == 0 {
		return tr.PropertyDefault(prop)
	}
	if tr.PropertyLength(a) == 1 {
		return int(tr.mem.Uint8(a))
	}
	return int(tr.mem.Uint16(a))
}

// SetProperty sets the value of the property. It is an error if the object
// does not have the property.
func (tr *Tree) SetProperty(obj int, prop int, value int) error {
	a := tr.PropertyAddress(obj, prop)
	if a == 0 {
		return curated.Errorf(PropertyNotPresent, prop, obj)
	}
	if tr.PropertyLength(a) == 1 {
		tr.mem.SetUint8(a, uint8(value))
	} else {
		tr.mem.SetUint16(a, uint16(value))
	}
	return nil
}

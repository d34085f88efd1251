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

// Package objects implements the object table of the Z-Machine. Objects are
// numbered from one; object zero means "no object". Each object has a
// number of attributes, a parent, a sibling and a child, and a list of
// properties.
//
// There are two layouts of the object table. The Classic layout is used by
// version 1 to 3 stories and allows 255 objects with 32 attributes and 31
// properties. The Modern layout is used by version 4 stories and later and
// allows 65535 objects with 48 attributes and 63 properties. Both layouts
// are handled by the Tree type, with the layout selected once at creation.
package objects

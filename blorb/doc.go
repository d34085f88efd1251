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

// Package blorb reads resource files in the Blorb format. A Blorb file is an
// IFF FORM of type IFRS. It starts with a resource index (RIdx) that names
// every picture, sound and executable in the file by number. Other chunks
// carry the frontispiece number (Fspc), the resolution and scaling hints for
// pictures (Reso), the release number (RelN) and iFiction metadata (IFmd).
//
// LoadStory() accepts either a raw story file or a Blorb file with an
// embedded ZCOD chunk and returns the story data in both cases.
package blorb

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

// Package pictures implements the picture manager used by version 6 stories.
// Pictures come from a Blorb file and are reported at the size they should
// be shown at in the current window, according to the scaling information in
// the Blorb's Reso chunk.
//
// Decoded pictures are scaled with golang.org/x/image/draw and cached until
// the window size changes.
package pictures

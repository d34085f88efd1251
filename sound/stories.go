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

package sound

// stories that expect a sound to finish before the next sound starts
var waitingStories = []struct {
	release int
	serial  string
}{
	// the lurking horror
	{release: 203, serial: "870506"},
	{release: 219, serial: "870912"},
	{release: 221, serial: "870918"},
}

// RequiresWait returns true if the story identified by the release and
// serial number expects the WaitForPrevious option.
func RequiresWait(release int, serial string) bool {
	for _, s := range waitingStories {
		if s.release == release && s.serial == serial {
			return true
		}
	}
	return false
}

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

// Package sound implements the sound effects of the Z-machine. Sounds 1 and
// 2 are the high and low bleeps and are generated. All other sounds are
// resources in a Blorb file. AIFF, WAV and MP3 resources are decoded once,
// when first prepared or played, and kept until the story finishes with
// them.
//
// Sounds are played through an Output. The Speaker type is an Output that
// uses the host's audio device. Playing a sound starts a task that runs
// until the sound ends or is stopped. Only one sampled sound plays at a
// time: starting a sound stops the previous one, unless the System was
// created with the WaitForPrevious option, in which case the start of the
// new sound waits for the previous sound to end. The Lurking Horror relies
// on this behaviour.
//
// When a sound that was started with a routine ends without being stopped,
// the routine address is sent on the channel returned by Finished().
package sound

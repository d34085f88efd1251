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

package quetzal

import (
	"encoding/binary"
	"fmt"

	"github.com/zgopher/zgopher/curated"
	"github.com/zgopher/zgopher/hardware/cpu"
	"github.com/zgopher/zgopher/hardware/header"
	"github.com/zgopher/zgopher/hardware/memory"
	"github.com/zgopher/zgopher/iff"
)

// Sentinal error patterns.
const (
	NotQuetzal         = "quetzal: not a quetzal file (%s)"
	MalformedChunk     = "quetzal: malformed %s chunk"
	VerificationFailed = "quetzal: save is for a different story (release %d serial %s checksum %#04x)"
)

// the FORM sub-type of quetzal files
const formType = "IFZS"

// list of chunk identifiers
const (
	idHeader       = "IFhd"
	idCompressed   = "CMem"
	idUncompressed = "UMem"
	idStacks       = "Stks"
	idAnnotation   = "ANNO"
)

// PortableGameState is the state of a machine in a form that can be saved
// and restored.
type PortableGameState struct {
	Release  int
	Serial   string
	Checksum int

	// the address of the store variable or branch data of the instruction
	// that saved the game
	PC int

	// the call frames and the evaluation stack as returned by the CPU. the
	// first frame is the frame of the main routine
	Frames []cpu.Frame
	Stack  []uint16

	// the contents of dynamic memory
	DynamicMemory []uint8

	// optional annotation
	Annotation string
}

func (gs *PortableGameState) String() string {
	return fmt.Sprintf("release %d serial %s PC=%05x frames=%d stack=%d", gs.Release, gs.Serial, gs.PC, len(gs.Frames), len(gs.Stack))
}

// the checksum identifying the story. stories without a checksum in the
// header are identified by the computed checksum
func storyChecksum(hdr *header.Header, computed int) int {
	if hdr.Checksum() != 0 {
		return hdr.Checksum()
	}
	return computed & 0xffff
}

// Capture the state of the machine. The PC argument is the address the game
// should resume at, which is the address of the store variable or branch
// data of the saving instruction. The checksum argument is the computed
// checksum of the story and is used if the header does not contain one.
func Capture(mem memory.Accessor, hdr *header.Header, mc *cpu.CPU, pc int, checksum int) *PortableGameState {
	return &PortableGameState{
		Release:       hdr.Release(),
		Serial:        hdr.Serial(),
		Checksum:      storyChecksum(hdr, checksum),
		PC:            pc,
		Frames:        mc.Frames(),
		Stack:         mc.Stack(),
		DynamicMemory: mem.ReadBytes(0, hdr.StaticMemory()),
	}
}

// Verify that the game state was captured from the same story as the one
// described by the header. The checksum argument is used if the header
// does not contain a checksum.
func (gs *PortableGameState) Verify(hdr *header.Header, checksum int) error {
	checksum = storyChecksum(hdr, checksum)
	if gs.Release != hdr.Release() || gs.Serial != hdr.Serial() || gs.Checksum != checksum {
		return curated.Errorf(VerificationFailed, gs.Release, gs.Serial, gs.Checksum)
	}
	return nil
}

// Transfer the game state to the machine. The CPU is restored and dynamic
// memory is overwritten.
func (gs *PortableGameState) Transfer(mem memory.Accessor, mc *cpu.CPU) {
	mem.WriteBytes(0, gs.DynamicMemory)
	mc.Restore(gs.PC, gs.Frames, gs.Stack)
}

// Export the game state as an IFF form. The original argument is the
// dynamic memory of the story as it was when the story was loaded.
func (gs *PortableGameState) Export(original []uint8, version int) *iff.WritableForm {
	w := iff.NewWritableForm(formType)
	w.AddChunk(idHeader, gs.headerChunk())
	w.AddChunk(idCompressed, Compress(gs.DynamicMemory, original))
	w.AddChunk(idStacks, gs.stacksChunk(version))
	if gs.Annotation != "" {
		w.AddChunk(idAnnotation, []uint8(gs.Annotation))
	}
	return w
}

func (gs *PortableGameState) headerChunk() []uint8 {
	b := make([]uint8, 13)
	binary.BigEndian.PutUint16(b[0:], uint16(gs.Release))
	copy(b[2:8], gs.Serial)
	binary.BigEndian.PutUint16(b[8:], uint16(gs.Checksum))
	b[10] = uint8(gs.PC >> 16)
	b[11] = uint8(gs.PC >> 8)
	b[12] = uint8(gs.PC)
	return b
}

// Read a save file. The original argument is the dynamic memory of the
// story as it was when the story was loaded. It is required to decompress
// the CMem chunk.
func Read(data []uint8, original []uint8, version int) (*PortableGameState, error) {
	f, err := iff.ReadForm(data)
	if err != nil {
		return nil, curated.Errorf("quetzal: %v", err)
	}
	if f.SubID != formType {
		return nil, curated.Errorf(NotQuetzal, f.SubID)
	}

	gs := &PortableGameState{}

	c := f.Chunk(idHeader)
	if c == nil || c.Size() < 13 {
		return nil, curated.Errorf(MalformedChunk, idHeader)
	}
	gs.Release = int(binary.BigEndian.Uint16(c.Data[0:]))
	gs.Serial = string(c.Data[2:8])
	gs.Checksum = int(binary.BigEndian.Uint16(c.Data[8:]))
	gs.PC = int(c.Data[10])<<16 | int(c.Data[11])<<8 | int(c.Data[12])

	if c := f.Chunk(idCompressed); c != nil {
		gs.DynamicMemory, err = Decompress(c.Data, original)
		if err != nil {
			return nil, err
		}
	} else if c := f.Chunk(idUncompressed); c != nil {
		if c.Size() != len(original) {
			return nil, curated.Errorf(MalformedChunk, idUncompressed)
		}
		gs.DynamicMemory = make([]uint8, c.Size())
		copy(gs.DynamicMemory, c.Data)
	} else {
		return nil, curated.Errorf(NotQuetzal, "no memory chunk")
	}

	c = f.Chunk(idStacks)
	if c == nil {
		return nil, curated.Errorf(NotQuetzal, "no stacks chunk")
	}
	err = gs.readStacks(c.Data, version)
	if err != nil {
		return nil, err
	}

	if c := f.Chunk(idAnnotation); c != nil {
		gs.Annotation = string(c.Data)
	}

	return gs, nil
}

// This file is part of Thumbpatch.
//
// Thumbpatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Thumbpatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Thumbpatch.  If not, see <https://www.gnu.org/licenses/>.

package thumb

import "encoding/binary"

// the two halves of a format 19 instruction. the H bit (bit 11) distinguishes
// the high part of the offset from the low part
const (
	blHigh = 0xf000
	blLow  = 0xf800
	blMask = 0xf800
)

// the BL instruction is always 4 bytes long
const BLSize = 4

// Trap is the two byte value written by a trap patch. As a halfword (0xe800)
// it is not a valid ARM7TDMI thumb instruction and will cause an undefined
// instruction exception.
var Trap = [2]byte{0x00, 0xe8}

// the range of the 23 bit offset encoded by the two halves of the instruction
const (
	minOffset = -(1 << 22)
	maxOffset = (1 << 22) - 2
)

// halfwords returns the two halves of the BL instruction located at src and
// calling dst. the offset is calculated relative to the value of the PC when
// the first half is executed, which is four bytes ahead of src
func halfwords(src uint32, dst uint32) (uint16, uint16) {
	diff := int32(dst - src - 4)

	// bits 22 to 12 of the offset
	upper := uint16((diff >> 12) & 0x7ff)

	// bits 11 to 1 of the offset. bit 0 is lost
	lower := uint16((diff & 0xfff) >> 1)

	return blHigh | upper, blLow | lower
}

// EncodeBL returns the four bytes of a thumb BL (long branch with link)
// instruction. The src argument is the address of the instruction and dst is
// the address being called.
//
// The two halfwords are each stored little-endian, high half first.
//
// The function does not check that the target is within range of the
// instruction. A target further than 4MiB from src produces an encoding that
// branches to the wrong address. Use InRange() to check.
func EncodeBL(src uint32, dst uint32) [BLSize]byte {
	hi, lo := halfwords(src, dst)

	var b [BLSize]byte
	binary.LittleEndian.PutUint16(b[0:], hi)
	binary.LittleEndian.PutUint16(b[2:], lo)
	return b
}

// Opcode returns the BL instruction for src and dst as a single 32bit value,
// with the first halfword in the upper 16 bits. This is how the instruction
// is usually written in listings.
func Opcode(src uint32, dst uint32) uint32 {
	hi, lo := halfwords(src, dst)
	return uint32(hi)<<16 | uint32(lo)
}

// InRange returns true if dst can be reached by a BL instruction at src.
func InRange(src uint32, dst uint32) bool {
	diff := int64(dst) - int64(src) - 4
	return diff >= minOffset && diff <= maxOffset
}

// DecodeBL is the inverse of EncodeBL. It returns the target of the BL
// instruction in the first four bytes of b, assuming the instruction is at
// address src. Returns false if b does not contain a high/low pair.
//
// The decoding is the same as an ARM7TDMI executing the two halves of format
// 19: the first half adds the sign extended upper offset to the PC and stores
// it in LR. The second half adds the lower offset to LR and branches.
func DecodeBL(src uint32, b []byte) (uint32, bool) {
	if len(b) < BLSize {
		return 0, false
	}

	hi := binary.LittleEndian.Uint16(b[0:])
	lo := binary.LittleEndian.Uint16(b[2:])
	if hi&blMask != blHigh || lo&blMask != blLow {
		return 0, false
	}

	offset := uint32(hi&0x07ff) << 12

	// sign extend
	if offset&0x400000 == 0x400000 {
		offset |= 0xffc00000
	}

	lr := src + 4 + offset
	return lr + uint32(lo&0x07ff)<<1, true
}

package memfile

import (
	"encoding/binary"

	"github.com/sigurn/crc16"
)

// WordCount is the number of 32-bit words in a gamma image. The FPGA
// LUT has exactly this many entries; files with any other line count
// are rejected at load time.
const WordCount = 128

var crcTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// Image is a complete gamma lookup table: an ordered sequence of
// exactly WordCount unsigned 32-bit words.
type Image struct {
	words [WordCount]uint32
}

// Word returns the word at index i. Panics if i is outside
// [0, WordCount).
func (img *Image) Word(i int) uint32 {
	return img.words[i]
}

// Words returns a copy of all table words in upload order.
func (img *Image) Words() []uint32 {
	out := make([]uint32, WordCount)
	copy(out, img.words[:])
	return out
}

// Checksum returns a CRC-16/CCITT-FALSE fingerprint over the image's
// words in big-endian byte order. Logged on load and reported with the
// upload summary so an operator can match a file against what was sent.
func (img *Image) Checksum() uint16 {
	buf := make([]byte, 4*WordCount)
	for i, w := range img.words {
		binary.BigEndian.PutUint32(buf[4*i:], w)
	}
	return crc16.Checksum(buf, crcTable)
}

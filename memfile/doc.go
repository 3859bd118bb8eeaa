// Package memfile loads gamma lookup table images from .mem files.
//
// # File Format
//
// A .mem file is produced by the offline curve generators and carries
// exactly 128 non-empty lines. The first whitespace-delimited token on
// each line is a hex string (optional 0x prefix) encoding one unsigned
// 32-bit word; anything after the token is ignored, so trailing
// comments are allowed. The generators pack four consecutive 8-bit LUT
// samples per word in reversed byte order, which makes the word value
// big-endian with respect to sample order.
//
// Blank lines are skipped and do not count toward the 128.
//
// # Usage
//
//	img, err := memfile.Load("srgb.mem")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("word 0: 0x%08X checksum: 0x%04X\n", img.Word(0), img.Checksum())
//
// Any deviation from the format (wrong line count, unparseable token,
// value outside 32 bits) is a load error identifying the offending line
// or the actual line count.
package memfile

package link

import (
	"strings"

	"github.com/KevinBeach/crosslinkdemo-console/protocol"
)

// BLCChannel identifies one of the four black level correction
// channels of the Bayer pattern.
type BLCChannel int

const (
	// BLCRed is the red channel
	BLCRed BLCChannel = iota

	// BLCGreen1 is the green channel on red rows
	BLCGreen1

	// BLCGreen2 is the green channel on blue rows
	BLCGreen2

	// BLCBlue is the blue channel
	BLCBlue
)

func (c BLCChannel) String() string {
	switch c {
	case BLCRed:
		return "R"
	case BLCGreen1:
		return "G1"
	case BLCGreen2:
		return "G2"
	case BLCBlue:
		return "B"
	default:
		return "?"
	}
}

// rawAddr returns the FPGA address holding the channel's measured
// black level word.
func (c BLCChannel) rawAddr() string {
	switch c {
	case BLCRed:
		return protocol.BLCRawR
	case BLCGreen1:
		return protocol.BLCRawG1
	case BLCGreen2:
		return protocol.BLCRawG2
	default:
		return protocol.BLCRawB
	}
}

// offsetAddr returns the FPGA address of the channel's writable
// correction offset.
func (c BLCChannel) offsetAddr() string {
	switch c {
	case BLCRed:
		return protocol.BLCOffsetR
	case BLCGreen1:
		return protocol.BLCOffsetG1
	case BLCGreen2:
		return protocol.BLCOffsetG2
	default:
		return protocol.BLCOffsetB
	}
}

// ReadBlackLevel reads the measured black level word of one channel
// and returns it zero-padded to eight uppercase hex digits. A timeout
// returns the empty string so the caller can leave its display field
// unset.
func (l *Link) ReadBlackLevel(c BLCChannel) (string, error) {
	resp, err := l.ReadFpga(c.rawAddr(), protocol.DefaultSubOffset)
	if err != nil {
		return "", err
	}
	if resp == "" {
		return "", nil
	}
	return protocol.DisplayWord(resp), nil
}

// WriteBlackLevelOffset writes one channel's correction offset. The
// value is hex-mode and validated before transmission.
func (l *Link) WriteBlackLevelOffset(c BLCChannel, value string) (string, error) {
	return l.WriteFpga(c.offsetAddr(), protocol.DefaultSubOffset, value)
}

// BlackLevelRatio converts a raw black level word into the fractional
// ratio shown beside it, raw / protocol.BLCDivisor.
func BlackLevelRatio(word string) (float64, error) {
	raw, err := protocol.ParseWord(word)
	if err != nil {
		return 0, err
	}
	return float64(raw) / float64(protocol.BLCDivisor), nil
}

// ReadStatusWord reads the gamma status word at the fixed status
// address, zero-padded to eight digits for display. A timeout returns
// the empty string.
func (l *Link) ReadStatusWord() (string, error) {
	resp, err := l.ReadFpga(protocol.StatusAddr, protocol.DefaultSubOffset)
	if err != nil {
		return "", err
	}
	if resp == "" {
		return "", nil
	}
	return protocol.DisplayWord(resp), nil
}

// WriteStatusWord writes the gamma status word.
func (l *Link) WriteStatusWord(value string) (string, error) {
	return l.WriteFpga(protocol.StatusAddr, protocol.DefaultSubOffset, value)
}

// ReadClampMSB reads the sensor black level clamp high byte, uppercased
// with any 0x prefix stripped for display.
func (l *Link) ReadClampMSB() (string, error) {
	return l.readClamp(protocol.RegClampMSB)
}

// ReadClampLSB reads the sensor black level clamp low byte.
func (l *Link) ReadClampLSB() (string, error) {
	return l.readClamp(protocol.RegClampLSB)
}

// WriteClampMSB writes the sensor black level clamp high byte.
func (l *Link) WriteClampMSB(value string) (string, error) {
	return l.WriteSensorReg(protocol.RegClampMSB, value)
}

// WriteClampLSB writes the sensor black level clamp low byte.
func (l *Link) WriteClampLSB(value string) (string, error) {
	return l.WriteSensorReg(protocol.RegClampLSB, value)
}

func (l *Link) readClamp(addr string) (string, error) {
	resp, err := l.ReadSensorReg(addr)
	if err != nil {
		return "", err
	}
	if resp == "" {
		return "", nil
	}
	return strings.ToUpper(protocol.DisplayHex(resp)), nil
}

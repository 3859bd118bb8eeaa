package protocol

import "strings"

// BuildSensorRead constructs a sensor register read command.
//
//	BuildSensorRead("0157") -> "S R 0157"
func BuildSensorRead(addr string) (string, error) {
	a, err := NormalizeHex(addr)
	if err != nil {
		return "", err
	}
	return join(NamespaceSensor, OpRead, a), nil
}

// BuildSensorWrite constructs a sensor register write command. The
// value is hex-mode: an optional 0x prefix is stripped and the token is
// sent uppercase.
//
//	BuildSensorWrite("0157", "0x1F") -> "S W 0157 1F"
func BuildSensorWrite(addr, value string) (string, error) {
	a, err := NormalizeHex(addr)
	if err != nil {
		return "", err
	}
	v, err := NormalizeHex(value)
	if err != nil {
		return "", err
	}
	return join(NamespaceSensor, OpWrite, a, v), nil
}

// BuildCCMRead constructs a color correction coefficient read command.
func BuildCCMRead(addr string) (string, error) {
	a, err := NormalizeHex(addr)
	if err != nil {
		return "", err
	}
	return join(NamespaceCCM, OpRead, a), nil
}

// BuildCCMWrite constructs a color correction coefficient write
// command. The value is signed decimal in [CCMMin, CCMMax] and is
// re-emitted canonically, so "+07" goes on the wire as "7".
//
//	BuildCCMWrite("05", "50") -> "C W 05 50"
func BuildCCMWrite(addr, value string) (string, error) {
	a, err := NormalizeHex(addr)
	if err != nil {
		return "", err
	}
	v, err := FormatSigned(value, CCMMin, CCMMax)
	if err != nil {
		return "", err
	}
	return join(NamespaceCCM, OpWrite, a, v), nil
}

// BuildCCMUpload constructs the upload trigger that commits the staged
// CCM and translation matrices to the pipeline.
//
//	BuildCCMUpload() -> "C U"
func BuildCCMUpload() string {
	return join(NamespaceCCM, OpUpload)
}

// BuildTranslationRead constructs a translation coefficient read command.
func BuildTranslationRead(addr string) (string, error) {
	a, err := NormalizeHex(addr)
	if err != nil {
		return "", err
	}
	return join(NamespaceTranslation, OpRead, a), nil
}

// BuildTranslationWrite constructs a translation coefficient write
// command. The value is signed decimal in [TranslationMin, TranslationMax].
func BuildTranslationWrite(addr, value string) (string, error) {
	a, err := NormalizeHex(addr)
	if err != nil {
		return "", err
	}
	v, err := FormatSigned(value, TranslationMin, TranslationMax)
	if err != nil {
		return "", err
	}
	return join(NamespaceTranslation, OpWrite, a, v), nil
}

// BuildFpgaRead constructs an FPGA register read command. FPGA accesses
// carry a base address and a 2-digit sub-offset.
//
//	BuildFpgaRead("51400", "00") -> "F R 51400 00"
func BuildFpgaRead(addr, sub string) (string, error) {
	a, err := NormalizeHex(addr)
	if err != nil {
		return "", err
	}
	s, err := normalizeSubOffset(sub)
	if err != nil {
		return "", err
	}
	return join(NamespaceFpga, OpRead, a, s), nil
}

// BuildFpgaWrite constructs an FPGA register write command.
//
//	BuildFpgaWrite("51700", "00", "000A141E") -> "F W 51700 00 000A141E"
func BuildFpgaWrite(addr, sub, data string) (string, error) {
	a, err := NormalizeHex(addr)
	if err != nil {
		return "", err
	}
	s, err := normalizeSubOffset(sub)
	if err != nil {
		return "", err
	}
	d, err := NormalizeHex(data)
	if err != nil {
		return "", err
	}
	return join(NamespaceFpga, OpWrite, a, s, d), nil
}

// BuildPresetGamma constructs the preset gamma selection command. The
// index is a hex token; the G namespace takes no operation letter.
//
//	BuildPresetGamma("0x2") -> "G 2"
func BuildPresetGamma(index string) (string, error) {
	i, err := NormalizeHex(index)
	if err != nil {
		return "", err
	}
	return join(NamespaceGamma, i), nil
}

// BuildVerboseOff constructs the command that silences unsolicited
// firmware output. Sent once right after connecting.
//
//	BuildVerboseOff() -> "V OFF"
func BuildVerboseOff() string {
	return join(NamespaceVerbose, "OFF")
}

// normalizeSubOffset normalizes a sub-offset token and pads it to the
// fixed two digits the firmware expects.
func normalizeSubOffset(sub string) (string, error) {
	s, err := NormalizeHex(sub)
	if err != nil {
		return "", err
	}
	if len(s) == 1 {
		s = "0" + s
	}
	return s, nil
}

func join(fields ...string) string {
	return strings.Join(fields, " ")
}

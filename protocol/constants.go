package protocol

// Namespace letters selecting the target subsystem.
const (
	// NamespaceSensor addresses raw image sensor registers
	NamespaceSensor = "S"

	// NamespaceCCM addresses the 3x3 color correction matrix
	NamespaceCCM = "C"

	// NamespaceTranslation addresses the RGB translation (offset) vector
	NamespaceTranslation = "T"

	// NamespaceFpga addresses the FPGA-mapped register space
	NamespaceFpga = "F"

	// NamespaceGamma selects one of the preset gamma curves
	NamespaceGamma = "G"

	// NamespaceVerbose controls unsolicited firmware chatter
	NamespaceVerbose = "V"
)

// Operation letters.
const (
	// OpRead reads a register
	OpRead = "R"

	// OpWrite writes a register
	OpWrite = "W"

	// OpUpload commits the staged CCM and translation matrices (C only)
	OpUpload = "U"
)

// Signed value bounds per namespace.
const (
	// CCMMin and CCMMax bound color correction coefficients
	CCMMin = -99
	CCMMax = 99

	// TranslationMin and TranslationMax bound translation coefficients
	TranslationMin = -255
	TranslationMax = 255
)

// Sensor register addresses used by the demo firmware.
const (
	// RegAnalogGain is the sensor analog gain register
	RegAnalogGain = "0157"

	// RegExposureMSB is the coarse exposure high byte
	RegExposureMSB = "015A"

	// RegExposureLSB is the coarse exposure low byte
	RegExposureLSB = "015B"

	// RegClampMSB is the sensor black level clamp high byte
	RegClampMSB = "D1EA"

	// RegClampLSB is the sensor black level clamp low byte
	RegClampLSB = "D1EB"
)

// FPGA-mapped addresses. Addresses are hex tokens as they appear on the
// wire; the gamma base is numeric because the uploader increments it.
const (
	// StatusAddr is the gamma status word
	StatusAddr = "51400"

	// GammaBaseAddr is the first gamma LUT word; successive words are
	// 4 bytes apart
	GammaBaseAddr uint32 = 0x51700

	// GammaWordStride is the address increment between LUT words
	GammaWordStride uint32 = 4

	// DefaultSubOffset is the fixed 2-digit sub-offset used by every
	// FPGA access in the demo firmware
	DefaultSubOffset = "00"
)

// Black level correction addresses.
const (
	// BLCRawR, BLCRawG1, BLCRawG2, BLCRawB hold the measured per-channel
	// black level words
	BLCRawR  = "51460"
	BLCRawG1 = "51464"
	BLCRawG2 = "51468"
	BLCRawB  = "5146C"

	// BLCOffsetR, BLCOffsetG1, BLCOffsetG2, BLCOffsetB are the writable
	// per-channel correction offsets
	BLCOffsetR  = "51470"
	BLCOffsetG1 = "51474"
	BLCOffsetG2 = "51478"
	BLCOffsetB  = "5147C"
)

// BLCDivisor converts a raw black level word into the ratio shown to
// the operator (raw / BLCDivisor).
const BLCDivisor = 0x01E0000

// MaxHexDigits caps the accepted length of a hex token. The widest
// field on the wire is an 8-digit data word; 16 leaves headroom without
// letting unbounded input through.
const MaxHexDigits = 16

// WordDigits is the display width of an FPGA data word in hex digits.
const WordDigits = 8

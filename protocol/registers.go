package protocol

// Mode selects how a register's value is converted between operator
// input and the wire.
type Mode int

const (
	// ModeHex passes hex tokens through with prefix stripping
	ModeHex Mode = iota

	// ModeSigned parses signed decimal with a per-namespace bound
	ModeSigned
)

// Register describes one addressable field: its operator-facing label,
// wire address, namespace and conversion mode. The demo console's
// register map is a static table of these records.
type Register struct {
	// Name is the operator-facing label
	Name string

	// Addr is the namespace-scoped address token
	Addr string

	// Namespace is the protocol namespace letter
	Namespace string

	// Mode selects the value conversion applied on write
	Mode Mode

	// Min and Max bound signed-mode values; ignored in hex mode
	Min int
	Max int
}

// SensorRegisters lists the sensor registers exposed by the demo
// console.
var SensorRegisters = []Register{
	{Name: "Analog Gain", Addr: RegAnalogGain, Namespace: NamespaceSensor, Mode: ModeHex},
	{Name: "Exposure MSB", Addr: RegExposureMSB, Namespace: NamespaceSensor, Mode: ModeHex},
	{Name: "Exposure LSB", Addr: RegExposureLSB, Namespace: NamespaceSensor, Mode: ModeHex},
	{Name: "Clamp MSB", Addr: RegClampMSB, Namespace: NamespaceSensor, Mode: ModeHex},
	{Name: "Clamp LSB", Addr: RegClampLSB, Namespace: NamespaceSensor, Mode: ModeHex},
}

// CCMCoefficients lists the nine color correction matrix coefficients
// in row-major order.
var CCMCoefficients = []Register{
	{Name: "MRR", Addr: "05", Namespace: NamespaceCCM, Mode: ModeSigned, Min: CCMMin, Max: CCMMax},
	{Name: "MRG", Addr: "06", Namespace: NamespaceCCM, Mode: ModeSigned, Min: CCMMin, Max: CCMMax},
	{Name: "MRB", Addr: "07", Namespace: NamespaceCCM, Mode: ModeSigned, Min: CCMMin, Max: CCMMax},
	{Name: "MGR", Addr: "08", Namespace: NamespaceCCM, Mode: ModeSigned, Min: CCMMin, Max: CCMMax},
	{Name: "MGG", Addr: "09", Namespace: NamespaceCCM, Mode: ModeSigned, Min: CCMMin, Max: CCMMax},
	{Name: "MGB", Addr: "0A", Namespace: NamespaceCCM, Mode: ModeSigned, Min: CCMMin, Max: CCMMax},
	{Name: "MBR", Addr: "0B", Namespace: NamespaceCCM, Mode: ModeSigned, Min: CCMMin, Max: CCMMax},
	{Name: "MBG", Addr: "0C", Namespace: NamespaceCCM, Mode: ModeSigned, Min: CCMMin, Max: CCMMax},
	{Name: "MBB", Addr: "0D", Namespace: NamespaceCCM, Mode: ModeSigned, Min: CCMMin, Max: CCMMax},
}

// TranslationCoefficients lists the three translation (offset) vector
// elements.
var TranslationCoefficients = []Register{
	{Name: "Translation R", Addr: "02", Namespace: NamespaceTranslation, Mode: ModeSigned, Min: TranslationMin, Max: TranslationMax},
	{Name: "Translation G", Addr: "03", Namespace: NamespaceTranslation, Mode: ModeSigned, Min: TranslationMin, Max: TranslationMax},
	{Name: "Translation B", Addr: "04", Namespace: NamespaceTranslation, Mode: ModeSigned, Min: TranslationMin, Max: TranslationMax},
}

// FindRegister looks a register up by its operator-facing name across
// all tables. Returns false if no register carries that name.
func FindRegister(name string) (Register, bool) {
	for _, table := range [][]Register{SensorRegisters, CCMCoefficients, TranslationCoefficients} {
		for _, r := range table {
			if r.Name == name {
				return r, true
			}
		}
	}
	return Register{}, false
}

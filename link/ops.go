package link

import (
	"fmt"

	"github.com/KevinBeach/crosslinkdemo-console/protocol"
)

// ReadSensorReg reads a raw image sensor register. Returns the raw
// response line; use protocol.DisplayHex for the operator-facing form.
func (l *Link) ReadSensorReg(addr string) (string, error) {
	cmd, err := protocol.BuildSensorRead(addr)
	if err != nil {
		return "", err
	}
	return l.SendCommand(cmd)
}

// WriteSensorReg writes a raw image sensor register. The value is
// hex-mode; validation failures reject the write before any bytes are
// sent.
func (l *Link) WriteSensorReg(addr, value string) (string, error) {
	cmd, err := protocol.BuildSensorWrite(addr, value)
	if err != nil {
		return "", err
	}
	return l.SendCommand(cmd)
}

// ReadCCM reads a color correction coefficient. Signed-mode responses
// are returned as received.
func (l *Link) ReadCCM(addr string) (string, error) {
	cmd, err := protocol.BuildCCMRead(addr)
	if err != nil {
		return "", err
	}
	return l.SendCommand(cmd)
}

// WriteCCM writes a color correction coefficient, a signed decimal in
// [protocol.CCMMin, protocol.CCMMax].
func (l *Link) WriteCCM(addr, value string) (string, error) {
	cmd, err := protocol.BuildCCMWrite(addr, value)
	if err != nil {
		return "", err
	}
	return l.SendCommand(cmd)
}

// UploadCCM commits the staged CCM and translation matrices to the
// imaging pipeline.
func (l *Link) UploadCCM() (string, error) {
	return l.SendCommand(protocol.BuildCCMUpload())
}

// ReadTranslation reads a translation vector coefficient.
func (l *Link) ReadTranslation(addr string) (string, error) {
	cmd, err := protocol.BuildTranslationRead(addr)
	if err != nil {
		return "", err
	}
	return l.SendCommand(cmd)
}

// WriteTranslation writes a translation vector coefficient, a signed
// decimal in [protocol.TranslationMin, protocol.TranslationMax].
func (l *Link) WriteTranslation(addr, value string) (string, error) {
	cmd, err := protocol.BuildTranslationWrite(addr, value)
	if err != nil {
		return "", err
	}
	return l.SendCommand(cmd)
}

// ReadFpga reads an FPGA-mapped register at the given base address and
// sub-offset.
func (l *Link) ReadFpga(addr, sub string) (string, error) {
	cmd, err := protocol.BuildFpgaRead(addr, sub)
	if err != nil {
		return "", err
	}
	return l.SendCommand(cmd)
}

// WriteFpga writes an FPGA-mapped register.
func (l *Link) WriteFpga(addr, sub, data string) (string, error) {
	cmd, err := protocol.BuildFpgaWrite(addr, sub, data)
	if err != nil {
		return "", err
	}
	return l.SendCommand(cmd)
}

// SelectPresetGamma activates one of the firmware's built-in gamma
// curves by hex index.
func (l *Link) SelectPresetGamma(index string) (string, error) {
	cmd, err := protocol.BuildPresetGamma(index)
	if err != nil {
		return "", err
	}
	return l.SendCommand(cmd)
}

// VerboseOff silences unsolicited firmware output. Connect issues this
// automatically; it is exposed for recovery after a firmware reset.
func (l *Link) VerboseOff() (string, error) {
	return l.SendCommand(protocol.BuildVerboseOff())
}

// ReadRegister reads a register described by a table record and
// converts the response for display: hex-mode responses have a 0x
// prefix stripped, signed-mode responses pass through as received. An
// empty response (timeout) stays empty so the caller can leave its
// display field unset.
func (l *Link) ReadRegister(reg protocol.Register) (string, error) {
	var (
		resp string
		err  error
	)
	switch reg.Namespace {
	case protocol.NamespaceSensor:
		resp, err = l.ReadSensorReg(reg.Addr)
	case protocol.NamespaceCCM:
		resp, err = l.ReadCCM(reg.Addr)
	case protocol.NamespaceTranslation:
		resp, err = l.ReadTranslation(reg.Addr)
	default:
		return "", fmt.Errorf("register %q: namespace %q is not readable by table", reg.Name, reg.Namespace)
	}
	if err != nil {
		return "", err
	}
	if resp == "" {
		return "", nil
	}
	if reg.Mode == protocol.ModeHex {
		return protocol.DisplayHex(resp), nil
	}
	return resp, nil
}

// WriteRegister writes a register described by a table record, applying
// the record's conversion mode. Invalid values are rejected before any
// bytes are sent.
func (l *Link) WriteRegister(reg protocol.Register, value string) (string, error) {
	switch reg.Namespace {
	case protocol.NamespaceSensor:
		return l.WriteSensorReg(reg.Addr, value)
	case protocol.NamespaceCCM:
		return l.WriteCCM(reg.Addr, value)
	case protocol.NamespaceTranslation:
		return l.WriteTranslation(reg.Addr, value)
	default:
		return "", fmt.Errorf("register %q: namespace %q is not writable by table", reg.Name, reg.Namespace)
	}
}

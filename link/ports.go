package link

import (
	"fmt"

	"go.bug.st/serial/enumerator"
)

// PortInfo describes one serial port present on the host.
type PortInfo struct {
	// Name is the port identifier to pass to Connect
	Name string

	// Description is the human-readable product string, if known
	Description string

	// IsUSB reports whether the port is USB-backed
	IsUSB bool

	// VID and PID identify a USB-backed port's vendor and product
	VID string
	PID string

	// Serial is the USB serial number, if any
	Serial string
}

// String formats the port the way the console's selector shows it.
func (p PortInfo) String() string {
	if p.Description != "" {
		return fmt.Sprintf("%s - %s", p.Name, p.Description)
	}
	return p.Name
}

// ListPorts enumerates the serial ports available on this host.
// Returns an empty slice when none are present.
func ListPorts() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}

	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		ports = append(ports, PortInfo{
			Name:        d.Name,
			Description: d.Product,
			IsUSB:       d.IsUSB,
			VID:         d.VID,
			PID:         d.PID,
			Serial:      d.SerialNumber,
		})
	}
	return ports, nil
}

package serial

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// TrinamicVID is the USB vendor ID of Trinamic interface boards
// (Landungsbruecke, Startrampe).
const TrinamicVID = "2A3C"

// Enumerate lists serial devices that could be evaluation board bridges:
// USB serial ports with the Trinamic vendor ID first, any remaining USB
// serial ports after, so autodetection tries the most likely candidates
// first.
func Enumerate() ([]string, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerating serial ports: %w", err)
	}

	var trinamic, other []string
	for _, d := range details {
		if !d.IsUSB {
			continue
		}
		if strings.EqualFold(d.VID, TrinamicVID) {
			trinamic = append(trinamic, d.Name)
		} else {
			other = append(other, d.Name)
		}
	}
	return append(trinamic, other...), nil
}

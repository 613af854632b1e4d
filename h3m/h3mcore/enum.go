// This file contains the base enum type shared by every enumerated H3M
// field, following the Enum/XByID pattern used throughout the package.

package h3mcore

import "fmt"

// Enum is the base / common part of enum types.
type Enum struct {
	// Name of the entity
	Name string
}

// String returns the string representation of the enum (the name).
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unknown entity with a name:
//
//	"Unknown 0xID"
func UnknownEnum(id any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", id)}
}

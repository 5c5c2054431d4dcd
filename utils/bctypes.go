package utils

import "strings"

// BCType selects the closure applied at both ends of a 1D PN slab
type BCType uint8

const (
	// BCNone marks an unset or unrecognised boundary condition
	BCNone BCType = iota

	// BCReflective forces the odd angular moments to vanish at the boundary
	BCReflective
	// BCMarshak imposes vanishing odd half-range moments of the incoming flux
	BCMarshak
)

func (bc BCType) String() string {
	names := map[BCType]string{
		BCNone:       "None",
		BCReflective: "Reflective",
		BCMarshak:    "Marshak",
	}

	if name, ok := names[bc]; ok {
		return name
	}
	return "Unknown"
}

// BCNameMap provides a mapping from boundary condition names to BCType
// Keys are lowercase for case-insensitive matching
var BCNameMap = map[string]BCType{
	"reflective": BCReflective,
	"marshak":    BCMarshak,
}

// ParseBCName converts a boundary condition name string to BCType
// The matching is case-insensitive and trims whitespace, unknown names map to BCNone
func ParseBCName(name string) BCType {
	lowerName := strings.ToLower(strings.TrimSpace(name))

	if bcType, ok := BCNameMap[lowerName]; ok {
		return bcType
	}
	return BCNone
}

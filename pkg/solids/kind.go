package solids

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chazu/manualcad/pkg/geom"
)

// ErrUnknownKind is returned by ParseKind for an unrecognised solid name.
var ErrUnknownKind = errors.New("unknown solid")

// DefaultSize is the edge length (or ring radius) used by the viewer.
const DefaultSize = 100

// Kind enumerates the Platonic solids the factory can build.
type Kind int

const (
	Tetrahedron Kind = iota
	Hexahedron
	Octahedron
	Icosahedron
	Dodecahedron
)

// Kinds lists every Kind in menu order.
func Kinds() []Kind {
	return []Kind{Tetrahedron, Hexahedron, Octahedron, Icosahedron, Dodecahedron}
}

func (k Kind) String() string {
	switch k {
	case Tetrahedron:
		return "tetrahedron"
	case Hexahedron:
		return "hexahedron"
	case Octahedron:
		return "octahedron"
	case Icosahedron:
		return "icosahedron"
	case Dodecahedron:
		return "dodecahedron"
	default:
		return "unknown"
	}
}

// Faces returns the number of faces of the solid.
func (k Kind) Faces() int {
	switch k {
	case Tetrahedron:
		return 4
	case Hexahedron:
		return 6
	case Octahedron:
		return 8
	case Icosahedron:
		return 20
	case Dodecahedron:
		return 12
	default:
		return 0
	}
}

// ParseKind accepts the solid names case-insensitively, plus "cube".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "cube" {
		return Hexahedron, nil
	}
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// New builds a fresh solid of the given kind. size must be positive.
func New(k Kind, size float64) *geom.Polyhedron {
	switch k {
	case Tetrahedron:
		return NewTetrahedron(size)
	case Octahedron:
		return NewOctahedron(size)
	case Icosahedron:
		return NewIcosahedron(size)
	case Dodecahedron:
		return NewDodecahedron(size)
	default:
		return NewHexahedron(size)
	}
}

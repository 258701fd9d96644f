package geom

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidAxis is returned for an axis name other than X, Y or Z.
	ErrInvalidAxis = errors.New("invalid axis")
	// ErrInvalidPlane is returned for a plane name other than XY, YZ or XZ.
	ErrInvalidPlane = errors.New("invalid plane")
)

// Axis names a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "unknown"
	}
}

// ParseAxis accepts "x", "Y", " z " and so on.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return AxisX, nil
	case "Y":
		return AxisY, nil
	case "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w %q, expected X, Y or Z", ErrInvalidAxis, s)
}

// Plane names a coordinate plane through the origin.
type Plane int

const (
	PlaneXY Plane = iota // normal Z
	PlaneYZ              // normal X
	PlaneXZ              // normal Y
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	default:
		return "unknown"
	}
}

// Normal returns the axis perpendicular to the plane.
func (p Plane) Normal() Axis {
	switch p {
	case PlaneYZ:
		return AxisX
	case PlaneXZ:
		return AxisY
	default:
		return AxisZ
	}
}

// ParsePlane is order- and case-insensitive: "yx" and "Xy" are both XY.
func ParsePlane(s string) (Plane, error) {
	letters := []rune(strings.ToUpper(strings.TrimSpace(s)))
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	switch string(letters) {
	case "XY":
		return PlaneXY, nil
	case "YZ":
		return PlaneYZ, nil
	case "XZ":
		return PlaneXZ, nil
	}
	return 0, fmt.Errorf("%w %q, expected XY, YZ or XZ", ErrInvalidPlane, s)
}

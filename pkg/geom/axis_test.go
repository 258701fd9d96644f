package geom

import (
	"errors"
	"testing"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{"X", AxisX, false},
		{"y", AxisY, false},
		{" z ", AxisZ, false},
		{"", 0, true},
		{"w", 0, true},
		{"xy", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAxis(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAxis) {
					t.Errorf("ParseAxis(%q) error = %v, want ErrInvalidAxis", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAxis(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePlane(t *testing.T) {
	tests := []struct {
		in      string
		want    Plane
		wantErr bool
	}{
		{"XY", PlaneXY, false},
		{"yx", PlaneXY, false},
		{"zy", PlaneYZ, false},
		{" Zx", PlaneXZ, false},
		{"XX", 0, true},
		{"XYZ", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlane(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPlane) {
					t.Errorf("ParsePlane(%q) error = %v, want ErrInvalidPlane", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlane(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePlane(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlaneNormal(t *testing.T) {
	want := map[Plane]Axis{PlaneXY: AxisZ, PlaneYZ: AxisX, PlaneXZ: AxisY}
	for p, a := range want {
		if got := p.Normal(); got != a {
			t.Errorf("%v.Normal() = %v, want %v", p, got, a)
		}
	}
}

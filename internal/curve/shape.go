// =============================
// File: internal/curve/shape.go
// =============================
package curve

import (
	"fmt"
	"strings"
)

// Shape selects the pricing formula used by Price.
type Shape int

const (
	Constant Shape = iota
	Linear
	Exponential
	Logarithmic
	Sigmoid
)

var shapeNames = map[Shape]string{
	Constant:    "constant",
	Linear:      "linear",
	Exponential: "exponential",
	Logarithmic: "logarithmic",
	Sigmoid:     "sigmoid",
}

var shapeLabels = map[Shape]string{
	Constant:    "Constant Price",
	Linear:      "Linear Increase",
	Exponential: "Exponential Growth",
	Logarithmic: "Logarithmic Growth",
	Sigmoid:     "S-Curve (Sigmoid)",
}

// Shapes returns every supported shape in display order.
func Shapes() []Shape {
	return []Shape{Constant, Linear, Exponential, Logarithmic, Sigmoid}
}

// String returns the lowercase shape name.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Label returns the human readable name shown in the wizard.
func (s Shape) Label() string {
	if label, ok := shapeLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Valid reports whether s is one of the supported shapes.
func (s Shape) Valid() bool {
	_, ok := shapeNames[s]
	return ok
}

// ParseShape converts a shape name (case-insensitive) into a Shape.
func ParseShape(name string) (Shape, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for shape, n := range shapeNames {
		if n == normalized {
			return shape, nil
		}
	}
	return Constant, fmt.Errorf("unknown curve shape %q", name)
}

// MarshalText implements encoding.TextMarshaler so shapes decode from config files.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown curve shape %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

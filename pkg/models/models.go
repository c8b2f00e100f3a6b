package models

// RecordSize is the encoded size of a Point in bytes.
const RecordSize = 16

// HeaderSize is the encoded size of a frame header in bytes.
const HeaderSize = 4

// Coordinate represents a coordinate in 3D space, in metres
type Coordinate struct {
	X float32
	Y float32
	Z float32
}

// Point is a single record of a capture frame: a coordinate plus the
// auxiliary value stored alongside it
type Point struct {
	X float32
	Y float32
	Z float32
	C uint32
}

// Coordinate drops the auxiliary value.
func (p Point) Coordinate() Coordinate {
	return Coordinate{X: p.X, Y: p.Y, Z: p.Z}
}

// Colour returns the auxiliary value unpacked as an RGB0 colour.
func (p Point) Colour() Colour {
	return UnpackColour(p.C)
}

// Colour is an 8-bit per channel RGB colour
type Colour struct {
	R uint8
	G uint8
	B uint8
}

// UnpackColour splits an RGB0 value, red in the lowest byte.
func UnpackColour(c uint32) Colour {
	return Colour{
		R: uint8(c),       //nolint:gosec // masked to a byte
		G: uint8(c >> 8),  //nolint:gosec // masked to a byte
		B: uint8(c >> 16), //nolint:gosec // masked to a byte
	}
}

// Pack encodes the colour as RGB0 with red in the lowest byte.
func (c Colour) Pack() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

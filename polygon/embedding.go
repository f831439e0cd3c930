package polygon

import "github.com/jbeda/geom"

// DiskToCoord converts a Poincaré-disk point to a Euclidean coordinate
// for 2D rendering and export.
func DiskToCoord(z complex128) geom.Coord {
	return geom.Coord{X: real(z), Y: imag(z)}
}

// DiskToBowl converts a disk point to gentle-bowl coordinates (Y up) for
// 3D views: X/Z are the disk coordinates and Y curves mildly upward with
// distance from the center, staying below 0.4 even at the rim.
//
// Returns [X, Y, Z].
func DiskToBowl(z complex128) [3]float64 {
	re, im := real(z), imag(z)
	r2 := re*re + im*im
	y := 0.4 * r2 / (1 + r2)
	return [3]float64{re, y, im}
}

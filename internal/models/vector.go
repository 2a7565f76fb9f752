package models

import "math"

type Vector3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vector3D) Add(o Vector3D) Vector3D { return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3D) Sub(o Vector3D) Vector3D { return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3D) Scale(s float64) Vector3D { return Vector3D{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3D) Dot(o Vector3D) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3D) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns the unit vector, or the zero vector for a zero input.
func (v Vector3D) Normalized() Vector3D {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector3D{}
	}
	return v.Scale(1 / mag)
}

func (v Vector3D) DistanceTo(o Vector3D) float64 {
	return o.Sub(v).Magnitude()
}

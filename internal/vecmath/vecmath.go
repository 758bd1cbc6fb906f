package vecmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any scalar the vectors can be built from: signed and unsigned integers and floats.
// Arithmetic follows the scalar's own overflow and rounding rules; nothing is checked.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a 2-component vector. Value type; copy freely.
type Vec2[T Number] struct {
	X, Y T
}

// Vec3 is a 3-component vector. Z is "up" in world space.
type Vec3[T Number] struct {
	X, Y, Z T
}

func New2[T Number](x, y T) Vec2[T]    { return Vec2[T]{X: x, Y: y} }
func New3[T Number](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

// Zero2 returns the additive identity for Vec2[T]. It is the zero value literal; nothing is computed.
func Zero2[T Number]() Vec2[T] { return Vec2[T]{} }

// Zero3 returns the additive identity for Vec3[T].
func Zero3[T Number]() Vec3[T] { return Vec3[T]{} }

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }
func (a Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{a.X * s, a.Y * s} }
func (a Vec2[T]) Div(s T) Vec2[T]       { return Vec2[T]{a.X / s, a.Y / s} }
func (a Vec2[T]) Eq(b Vec2[T]) bool     { return a.X == b.X && a.Y == b.Y }

func (a Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", a.X, a.Y)
}

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3[T]) Scale(s T) Vec3[T]     { return Vec3[T]{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3[T]) Div(s T) Vec3[T]       { return Vec3[T]{a.X / s, a.Y / s, a.Z / s} }
func (a Vec3[T]) Eq(b Vec3[T]) bool     { return a.X == b.X && a.Y == b.Y && a.Z == b.Z }

// XY drops the Z component.
func (a Vec3[T]) XY() Vec2[T] { return Vec2[T]{a.X, a.Y} }

func (a Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", a.X, a.Y, a.Z)
}

// ScaleBy2 is scalar-first multiplication; ScaleBy2(s, v) == v.Scale(s).
func ScaleBy2[T Number](s T, v Vec2[T]) Vec2[T] { return v.Scale(s) }

// ScaleBy3 is scalar-first multiplication; ScaleBy3(s, v) == v.Scale(s).
func ScaleBy3[T Number](s T, v Vec3[T]) Vec3[T] { return v.Scale(s) }

// Narrow2 casts each component to float32. Precision loss is accepted.
func Narrow2(v Vec2[float64]) Vec2[float32] {
	return Vec2[float32]{float32(v.X), float32(v.Y)}
}

// Narrow3 casts each component to float32. Precision loss is accepted.
func Narrow3(v Vec3[float64]) Vec3[float32] {
	return Vec3[float32]{float32(v.X), float32(v.Y), float32(v.Z)}
}

func Widen2(v Vec2[float32]) Vec2[float64] {
	return Vec2[float64]{float64(v.X), float64(v.Y)}
}

func Widen3(v Vec3[float32]) Vec3[float64] {
	return Vec3[float64]{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Package vecmath provides fixed four lane float32 and int32 vectors with the elementwise
// semantics of 128-bit SIMD registers. Every operation rounds exactly like the corresponding
// single precision instruction: products are rounded before they are added (no fused
// multiply-add) and float to int conversion rounds half to even.
package vecmath

import "math"

// Lanes is the number of lanes in every vector.
const Lanes = 4

// Float4 is a vector of four float32 lanes.
type Float4 [Lanes]float32

// Int4 is a vector of four int32 lanes. Arithmetic wraps on overflow.
type Int4 [Lanes]int32

// SetFloat4 returns a vector with all lanes set to v.
func SetFloat4(v float32) Float4 {
	return Float4{v, v, v, v}
}

// LoadFloat4 loads up to four values from src; missing lanes are zero.
func LoadFloat4(src []float32) Float4 {
	var out Float4
	copy(out[:], src)
	return out
}

// Add returns a + b.
func (a Float4) Add(b Float4) Float4 {
	return Float4{
		float32(a[0] + b[0]),
		float32(a[1] + b[1]),
		float32(a[2] + b[2]),
		float32(a[3] + b[3]),
	}
}

// Sub returns a - b.
func (a Float4) Sub(b Float4) Float4 {
	return Float4{
		float32(a[0] - b[0]),
		float32(a[1] - b[1]),
		float32(a[2] - b[2]),
		float32(a[3] - b[3]),
	}
}

// Mul returns a * b.
func (a Float4) Mul(b Float4) Float4 {
	return Float4{
		float32(a[0] * b[0]),
		float32(a[1] * b[1]),
		float32(a[2] * b[2]),
		float32(a[3] * b[3]),
	}
}

// Div returns a / b.
func (a Float4) Div(b Float4) Float4 {
	return Float4{
		float32(a[0] / b[0]),
		float32(a[1] / b[1]),
		float32(a[2] / b[2]),
		float32(a[3] / b[3]),
	}
}

// Min returns the lanewise minimum. Like minps, the second operand is returned when either lane
// is NaN.
func (a Float4) Min(b Float4) Float4 {
	var out Float4
	for i := range out {
		if a[i] < b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// Max returns the lanewise maximum. Like maxps, the second operand is returned when either lane
// is NaN.
func (a Float4) Max(b Float4) Float4 {
	var out Float4
	for i := range out {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// Clamp limits every lane to [lo, hi]. It is Min(Max(a, lo), hi).
func (a Float4) Clamp(lo, hi float32) Float4 {
	return a.Max(SetFloat4(lo)).Min(SetFloat4(hi))
}

// RoundToInt4 converts every lane to int32 rounding to nearest, ties to even.
// Lanes that are NaN or out of the int32 range become math.MinInt32, like cvtps2dq.
func (a Float4) RoundToInt4() Int4 {
	var out Int4
	for i, v := range a {
		r := math.RoundToEven(float64(v))
		if math.IsNaN(r) || r < math.MinInt32 || r > math.MaxInt32 {
			out[i] = math.MinInt32
			continue
		}
		out[i] = int32(r)
	}
	return out
}

// SetInt4 returns a vector with all lanes set to v.
func SetInt4(v int32) Int4 {
	return Int4{v, v, v, v}
}

// LoadUint8Int4 widens the first four bytes of src to int32 lanes.
func LoadUint8Int4(src []uint8) Int4 {
	_ = src[3]
	return Int4{int32(src[0]), int32(src[1]), int32(src[2]), int32(src[3])}
}

// Add returns a + b.
func (a Int4) Add(b Int4) Int4 {
	return Int4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns a - b.
func (a Int4) Sub(b Int4) Int4 {
	return Int4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul returns the low 32 bits of a * b.
func (a Int4) Mul(b Int4) Int4 {
	return Int4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Square returns a * a.
func (a Int4) Square() Int4 {
	return a.Mul(a)
}

// ReduceSum returns the wrapping sum of all lanes.
func (a Int4) ReduceSum() int32 {
	return (a[0] + a[1]) + (a[2] + a[3])
}

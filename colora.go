// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ColorA is an RGBA color with R, G, B and A float32 channels.
// As with [Color], no channel range is enforced. Alpha is a plain channel
// for arithmetic and scalar broadcast, but is excluded from the gray-scale
// reductions, from [ColorA.Apply], and from the sRGB conversions, which
// copy it through unmodified.
type ColorA struct {
	R float32
	G float32
	B float32
	A float32
}

// NewColorA returns a new [ColorA] with the given r, g, b and a channels.
func NewColorA(r, g, b, a float32) ColorA {
	return ColorA{R: r, G: g, B: b, A: a}
}

// ColorAScalar returns a new [ColorA] with all color channels set to the
// given scalar value and the given alpha.
func ColorAScalar(s, alpha float32) ColorA {
	return ColorA{R: s, G: s, B: s, A: alpha}
}

// ColorAFromColor returns a new [ColorA] with the color channels of the
// given [Color] and full opacity (alpha = 1).
func ColorAFromColor(c Color) ColorA {
	return ColorA{R: c.R, G: c.G, B: c.B, A: 1}
}

// ColorAFromColor24 returns a new [ColorA] converted from the given
// [Color24], rescaling each 8-bit channel by 1/255, with full opacity.
func ColorAFromColor24(c Color24) ColorA {
	return c.ToColorA()
}

// ColorAFromColor32 returns a new [ColorA] converted from the given
// [Color32], rescaling each 8-bit channel by 1/255, including alpha.
func ColorAFromColor32(c Color32) ColorA {
	return c.ToColorA()
}

// ColorABlack returns a black color with the given alpha.
func ColorABlack(alpha float32) ColorA {
	return ColorA{A: alpha}
}

// ColorAWhite returns a white color with the given alpha.
func ColorAWhite(alpha float32) ColorA {
	return ColorA{R: 1, G: 1, B: 1, A: alpha}
}

// Set sets this color's R, G, B and A channels.
func (c *ColorA) Set(r, g, b, a float32) {
	c.R = r
	c.G = g
	c.B = b
	c.A = a
}

// SetScalar sets all color channels to the same scalar value and alpha as given.
func (c *ColorA) SetScalar(s, alpha float32) {
	c.R = s
	c.G = s
	c.B = s
	c.A = alpha
}

// SetBlack sets the color channels to zero and alpha as given.
func (c *ColorA) SetBlack(alpha float32) {
	c.SetScalar(0, alpha)
}

// SetWhite sets the color channels to one and alpha as given.
func (c *ColorA) SetWhite(alpha float32) {
	c.SetScalar(1, alpha)
}

// SetChan sets this color's channel value by channel index.
func (c *ColorA) SetChan(ch Chans, value float32) {
	switch ch {
	case R:
		c.R = value
	case G:
		c.G = value
	case B:
		c.B = value
	case A:
		c.A = value
	default:
		panic("chan is out of range")
	}
}

// Chan returns this color's channel value by channel index.
func (c ColorA) Chan(ch Chans) float32 {
	switch ch {
	case R:
		return c.R
	case G:
		return c.G
	case B:
		return c.B
	case A:
		return c.A
	default:
		panic("chan is out of range")
	}
}

// FromSlice sets this color's channels from the given slice, starting at offset.
func (c *ColorA) FromSlice(vals []float32, offset int) {
	c.R = vals[offset]
	c.G = vals[offset+1]
	c.B = vals[offset+2]
	c.A = vals[offset+3]
}

// ToSlice copies this color's channels to the given slice, starting at offset.
func (c ColorA) ToSlice(vals []float32, offset int) {
	vals[offset] = c.R
	vals[offset+1] = c.G
	vals[offset+2] = c.B
	vals[offset+3] = c.A
}

func (c ColorA) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", c.R, c.G, c.B, c.A)
}

// Gray-scale reductions (alpha excluded):

// Sum returns the sum of the color channels, excluding alpha.
func (c ColorA) Sum() float32 {
	return c.R + c.G + c.B
}

// Gray returns the average of the color channels, excluding alpha.
func (c ColorA) Gray() float32 {
	return c.Sum() / 3
}

// Luma1 returns the perceptual brightness using the ITU-R BT.601 weights.
func (c ColorA) Luma1() float32 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Luma2 returns the perceptual brightness using the ITU-R BT.709 weights.
func (c ColorA) Luma2() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Min returns the minimum of all channels, including alpha.
func (c ColorA) Min() float32 {
	return math32.Min(math32.Min(c.R, c.G), math32.Min(c.B, c.A))
}

// Max returns the maximum of all channels, including alpha.
func (c ColorA) Max() float32 {
	return math32.Max(math32.Max(c.R, c.G), math32.Max(c.B, c.A))
}

// Predicates:

// IsNegative returns true if any channel, including alpha, is negative.
func (c ColorA) IsNegative() bool {
	return c.R < 0 || c.G < 0 || c.B < 0 || c.A < 0
}

// IsBlack returns true if the color channels are exactly zero, ignoring alpha.
func (c ColorA) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// IsFinite returns true if all channels, including alpha, are finite real
// numbers (not NaN and not infinite).
func (c ColorA) IsFinite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B) && isFinite(c.A)
}

// sRGB transfer function:

// LinearToSRGB returns this color converted from linear space to sRGB
// gamma-encoded space, per color channel, with alpha unmodified.
func (c ColorA) LinearToSRGB() ColorA {
	return ColorA{SRGBFromLinearComp(c.R), SRGBFromLinearComp(c.G), SRGBFromLinearComp(c.B), c.A}
}

// SRGBToLinear returns this color converted from sRGB gamma-encoded space
// to linear space, per color channel, with alpha unmodified.
func (c ColorA) SRGBToLinear() ColorA {
	return ColorA{SRGBToLinearComp(c.R), SRGBToLinearComp(c.G), SRGBToLinearComp(c.B), c.A}
}

// Generic apply:

// Apply applies the given function to each color channel of this color,
// leaving alpha unmodified. Callers needing an alpha transform must handle
// it separately.
func (c *ColorA) Apply(fn func(x float32) float32) {
	c.R = fn(c.R)
	c.G = fn(c.G)
	c.B = fn(c.B)
}

// Applied returns the color that results from applying the given function
// to each color channel of this color, with alpha copied through.
func (c ColorA) Applied(fn func(x float32) float32) ColorA {
	c.Apply(fn)
	return c
}

// Limits (color channels only; alpha unmodified):

// Clamp clamps each color channel into the closed interval
// [limitMin, limitMax]. Assumes limitMin < limitMax.
func (c *ColorA) Clamp(limitMin, limitMax float32) {
	c.ClampMin(limitMin)
	c.ClampMax(limitMax)
}

// Clamp01 clamps each color channel into the unit interval [0, 1].
func (c *ColorA) Clamp01() {
	c.Clamp(0, 1)
}

// ClampMin raises each color channel to no less than limitMin.
func (c *ColorA) ClampMin(limitMin float32) {
	c.Apply(func(x float32) float32 { return math32.Max(x, limitMin) })
}

// ClampMax lowers each color channel to no more than limitMax.
func (c *ColorA) ClampMax(limitMax float32) {
	c.Apply(func(x float32) float32 { return math32.Min(x, limitMax) })
}

// Basic math operations (alpha included):

// Add adds the other given color to this one and returns the result as a new color.
func (c ColorA) Add(other ColorA) ColorA {
	return ColorA{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// AddScalar adds scalar s to each channel of this color, including alpha,
// and returns new color. Addition is commutative, so this also serves as s + c.
func (c ColorA) AddScalar(s float32) ColorA {
	return ColorA{c.R + s, c.G + s, c.B + s, c.A + s}
}

// SetAdd sets this to addition with other color (i.e., += or plus-equals).
func (c *ColorA) SetAdd(other ColorA) {
	c.R += other.R
	c.G += other.G
	c.B += other.B
	c.A += other.A
}

// SetAddScalar sets this to addition with scalar.
func (c *ColorA) SetAddScalar(s float32) {
	c.R += s
	c.G += s
	c.B += s
	c.A += s
}

// Sub subtracts other color from this one and returns result in new color.
func (c ColorA) Sub(other ColorA) ColorA {
	return ColorA{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

// SubScalar subtracts scalar s from each channel of this color and returns new color.
func (c ColorA) SubScalar(s float32) ColorA {
	return ColorA{c.R - s, c.G - s, c.B - s, c.A - s}
}

// SubFromScalar returns the color with each channel subtracted from the
// scalar s, i.e., s - c.
func (c ColorA) SubFromScalar(s float32) ColorA {
	return ColorA{s - c.R, s - c.G, s - c.B, s - c.A}
}

// SetSub sets this to subtraction with other color (i.e., -= or minus-equals).
func (c *ColorA) SetSub(other ColorA) {
	c.R -= other.R
	c.G -= other.G
	c.B -= other.B
	c.A -= other.A
}

// SetSubScalar sets this to subtraction of scalar.
func (c *ColorA) SetSubScalar(s float32) {
	c.R -= s
	c.G -= s
	c.B -= s
	c.A -= s
}

// Mul multiplies each channel of this color by the corresponding one from
// other and returns resulting color.
func (c ColorA) Mul(other ColorA) ColorA {
	return ColorA{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// MulScalar multiplies each channel of this color, including alpha, by the
// scalar s and returns resulting color. Multiplication is commutative, so
// this also serves as s * c.
func (c ColorA) MulScalar(s float32) ColorA {
	return ColorA{c.R * s, c.G * s, c.B * s, c.A * s}
}

// SetMul sets this to multiplication with other color (i.e., *= or times-equals).
func (c *ColorA) SetMul(other ColorA) {
	c.R *= other.R
	c.G *= other.G
	c.B *= other.B
	c.A *= other.A
}

// SetMulScalar sets this to multiplication by scalar.
func (c *ColorA) SetMulScalar(s float32) {
	c.R *= s
	c.G *= s
	c.B *= s
	c.A *= s
}

// Div divides each channel of this color by the corresponding one from
// other color and returns resulting color. Division by a zero channel
// follows standard floating-point semantics, producing Inf or NaN.
func (c ColorA) Div(other ColorA) ColorA {
	return ColorA{c.R / other.R, c.G / other.G, c.B / other.B, c.A / other.A}
}

// DivScalar divides each channel of this color by the scalar s and
// returns resulting color. Division by zero follows standard
// floating-point semantics, producing Inf or NaN.
func (c ColorA) DivScalar(s float32) ColorA {
	return ColorA{c.R / s, c.G / s, c.B / s, c.A / s}
}

// SetDiv sets this to division by other color (i.e., /= or divide-equals).
func (c *ColorA) SetDiv(other ColorA) {
	c.R /= other.R
	c.G /= other.G
	c.B /= other.B
	c.A /= other.A
}

// SetDivScalar sets this to division by scalar.
func (c *ColorA) SetDivScalar(s float32) {
	c.R /= s
	c.G /= s
	c.B /= s
	c.A /= s
}

// Negate returns the color with each channel, including alpha, negated.
func (c ColorA) Negate() ColorA {
	return ColorA{-c.R, -c.G, -c.B, -c.A}
}

// Abs returns this color with the absolute value of each color channel,
// with alpha unmodified.
func (c ColorA) Abs() ColorA {
	return c.Applied(math32.Abs)
}

// Lerp returns a color with each channel as the linear interpolated value
// of t between itself and the corresponding other channel.
func (c ColorA) Lerp(other ColorA, t float32) ColorA {
	return ColorA{c.R + (other.R-c.R)*t, c.G + (other.G-c.G)*t,
		c.B + (other.B-c.B)*t, c.A + (other.A-c.A)*t}
}

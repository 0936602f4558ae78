// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Color is an RGB color with R, G and B float32 channels.
// Channels are typically in the unit range [0, 1], but no range is
// enforced: arithmetic operates on arbitrary values, including negative
// and out-of-range results. Use [Color.IsFinite] and [Color.IsNegative]
// to check validity where needed.
type Color struct {
	R float32
	G float32
	B float32
}

// NewColor returns a new [Color] with the given r, g and b channels.
func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// ColorScalar returns a new [Color] with all channels set to the given
// scalar value.
func ColorScalar(s float32) Color {
	return Color{R: s, G: s, B: s}
}

// ColorFromColorA returns a new [Color] with the color channels of the
// given [ColorA], dropping alpha.
func ColorFromColorA(c ColorA) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// ColorFromColor24 returns a new [Color] converted from the given
// [Color24], rescaling each 8-bit channel by 1/255.
func ColorFromColor24(c Color24) Color {
	return c.ToColor()
}

// ColorFromColor32 returns a new [Color] converted from the given
// [Color32], rescaling each 8-bit color channel by 1/255 and dropping alpha.
func ColorFromColor32(c Color32) Color {
	return c.ToColor()
}

// ColorBlack returns a black color, with all channels zero.
func ColorBlack() Color {
	return Color{}
}

// ColorWhite returns a white color, with all channels one.
func ColorWhite() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Set sets this color's R, G and B channels.
func (c *Color) Set(r, g, b float32) {
	c.R = r
	c.G = g
	c.B = b
}

// SetScalar sets all channels to the same scalar value.
func (c *Color) SetScalar(s float32) {
	c.R = s
	c.G = s
	c.B = s
}

// SetBlack sets all channels to zero.
func (c *Color) SetBlack() {
	c.SetScalar(0)
}

// SetWhite sets all channels to one.
func (c *Color) SetWhite() {
	c.SetScalar(1)
}

// SetChan sets this color's channel value by channel index.
func (c *Color) SetChan(ch Chans, value float32) {
	switch ch {
	case R:
		c.R = value
	case G:
		c.G = value
	case B:
		c.B = value
	default:
		panic("chan is out of range")
	}
}

// Chan returns this color's channel value by channel index.
func (c Color) Chan(ch Chans) float32 {
	switch ch {
	case R:
		return c.R
	case G:
		return c.G
	case B:
		return c.B
	default:
		panic("chan is out of range")
	}
}

// FromSlice sets this color's channels from the given slice, starting at offset.
func (c *Color) FromSlice(vals []float32, offset int) {
	c.R = vals[offset]
	c.G = vals[offset+1]
	c.B = vals[offset+2]
}

// ToSlice copies this color's channels to the given slice, starting at offset.
func (c Color) ToSlice(vals []float32, offset int) {
	vals[offset] = c.R
	vals[offset+1] = c.G
	vals[offset+2] = c.B
}

func (c Color) String() string {
	return fmt.Sprintf("(%v, %v, %v)", c.R, c.G, c.B)
}

// Gray-scale reductions:

// Sum returns the sum of the color channels.
func (c Color) Sum() float32 {
	return c.R + c.G + c.B
}

// Gray returns the average of the color channels.
func (c Color) Gray() float32 {
	return c.Sum() / 3
}

// Luma1 returns the perceptual brightness using the ITU-R BT.601 weights.
func (c Color) Luma1() float32 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Luma2 returns the perceptual brightness using the ITU-R BT.709 weights.
func (c Color) Luma2() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Min returns the minimum of the color channels.
func (c Color) Min() float32 {
	return math32.Min(c.R, math32.Min(c.G, c.B))
}

// Max returns the maximum of the color channels.
func (c Color) Max() float32 {
	return math32.Max(c.R, math32.Max(c.G, c.B))
}

// Predicates:

// IsNegative returns true if any channel is negative.
func (c Color) IsNegative() bool {
	return c.R < 0 || c.G < 0 || c.B < 0
}

// IsBlack returns true if all channels are exactly zero.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// IsFinite returns true if all channels are finite real numbers
// (not NaN and not infinite).
func (c Color) IsFinite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B)
}

// sRGB transfer function:

// LinearToSRGB returns this color converted from linear space to
// sRGB gamma-encoded space, per channel.
func (c Color) LinearToSRGB() Color {
	return Color{SRGBFromLinearComp(c.R), SRGBFromLinearComp(c.G), SRGBFromLinearComp(c.B)}
}

// SRGBToLinear returns this color converted from sRGB gamma-encoded
// space to linear space, per channel.
func (c Color) SRGBToLinear() Color {
	return Color{SRGBToLinearComp(c.R), SRGBToLinearComp(c.G), SRGBToLinearComp(c.B)}
}

// Generic apply:

// Apply applies the given function to each channel of this color.
func (c *Color) Apply(fn func(x float32) float32) {
	c.R = fn(c.R)
	c.G = fn(c.G)
	c.B = fn(c.B)
}

// Applied returns the color that results from applying the given function
// to each channel of this color.
func (c Color) Applied(fn func(x float32) float32) Color {
	c.Apply(fn)
	return c
}

// Limits:

// Clamp clamps each channel into the closed interval [limitMin, limitMax].
// Assumes limitMin < limitMax.
func (c *Color) Clamp(limitMin, limitMax float32) {
	c.ClampMin(limitMin)
	c.ClampMax(limitMax)
}

// Clamp01 clamps each channel into the unit interval [0, 1].
func (c *Color) Clamp01() {
	c.Clamp(0, 1)
}

// ClampMin raises each channel to no less than limitMin.
func (c *Color) ClampMin(limitMin float32) {
	c.Apply(func(x float32) float32 { return math32.Max(x, limitMin) })
}

// ClampMax lowers each channel to no more than limitMax.
func (c *Color) ClampMax(limitMax float32) {
	c.Apply(func(x float32) float32 { return math32.Min(x, limitMax) })
}

// Basic math operations:

// Add adds the other given color to this one and returns the result as a new color.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// AddScalar adds scalar s to each channel of this color and returns new color.
// Addition is commutative, so this also serves as s + c.
func (c Color) AddScalar(s float32) Color {
	return Color{c.R + s, c.G + s, c.B + s}
}

// SetAdd sets this to addition with other color (i.e., += or plus-equals).
func (c *Color) SetAdd(other Color) {
	c.R += other.R
	c.G += other.G
	c.B += other.B
}

// SetAddScalar sets this to addition with scalar.
func (c *Color) SetAddScalar(s float32) {
	c.R += s
	c.G += s
	c.B += s
}

// Sub subtracts other color from this one and returns result in new color.
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// SubScalar subtracts scalar s from each channel of this color and returns new color.
func (c Color) SubScalar(s float32) Color {
	return Color{c.R - s, c.G - s, c.B - s}
}

// SubFromScalar returns the color with each channel subtracted from the
// scalar s, i.e., s - c.
func (c Color) SubFromScalar(s float32) Color {
	return Color{s - c.R, s - c.G, s - c.B}
}

// SetSub sets this to subtraction with other color (i.e., -= or minus-equals).
func (c *Color) SetSub(other Color) {
	c.R -= other.R
	c.G -= other.G
	c.B -= other.B
}

// SetSubScalar sets this to subtraction of scalar.
func (c *Color) SetSubScalar(s float32) {
	c.R -= s
	c.G -= s
	c.B -= s
}

// Mul multiplies each channel of this color by the corresponding one from
// other and returns resulting color.
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// MulScalar multiplies each channel of this color by the scalar s and
// returns resulting color. Multiplication is commutative, so this also
// serves as s * c.
func (c Color) MulScalar(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// SetMul sets this to multiplication with other color (i.e., *= or times-equals).
func (c *Color) SetMul(other Color) {
	c.R *= other.R
	c.G *= other.G
	c.B *= other.B
}

// SetMulScalar sets this to multiplication by scalar.
func (c *Color) SetMulScalar(s float32) {
	c.R *= s
	c.G *= s
	c.B *= s
}

// Div divides each channel of this color by the corresponding one from
// other color and returns resulting color. Division by a zero channel
// follows standard floating-point semantics, producing Inf or NaN.
func (c Color) Div(other Color) Color {
	return Color{c.R / other.R, c.G / other.G, c.B / other.B}
}

// DivScalar divides each channel of this color by the scalar s and
// returns resulting color. Division by zero follows standard
// floating-point semantics, producing Inf or NaN.
func (c Color) DivScalar(s float32) Color {
	return Color{c.R / s, c.G / s, c.B / s}
}

// SetDiv sets this to division by other color (i.e., /= or divide-equals).
func (c *Color) SetDiv(other Color) {
	c.R /= other.R
	c.G /= other.G
	c.B /= other.B
}

// SetDivScalar sets this to division by scalar.
func (c *Color) SetDivScalar(s float32) {
	c.R /= s
	c.G /= s
	c.B /= s
}

// Negate returns the color with each channel negated.
func (c Color) Negate() Color {
	return Color{-c.R, -c.G, -c.B}
}

// Abs returns this color with the absolute value of each channel.
func (c Color) Abs() Color {
	return c.Applied(math32.Abs)
}

// Lerp returns a color with each channel as the linear interpolated value
// of t between itself and the corresponding other channel.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{c.R + (other.R-c.R)*t, c.G + (other.G-c.G)*t, c.B + (other.B-c.B)*t}
}

func isFinite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

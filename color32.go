// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

import "fmt"

// Color32 is a 32-bit RGBA color with R, G, B and A uint8 channels in
// [0, 255], with non-premultiplied (straight) alpha. The underlying
// representation keeps every channel in range by construction;
// conversions from float colors saturate rather than wrap. It implements
// the standard [image/color.Color] interface.
type Color32 struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// NewColor32 returns a new [Color32] with the given r, g, b and a channels.
func NewColor32(r, g, b, a uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: a}
}

// Color32FromColor returns a new [Color32] converted from the given
// [Color], scaling each channel by 255, rounding half up, and saturating
// into [0, 255], with full opacity (alpha = 255).
func Color32FromColor(c Color) Color32 {
	return Color32{floatToByte(c.R), floatToByte(c.G), floatToByte(c.B), 255}
}

// Color32FromColorA returns a new [Color32] converted from the given
// [ColorA], scaling each channel by 255, rounding half up, and saturating
// into [0, 255], including alpha.
func Color32FromColorA(c ColorA) Color32 {
	return Color32{floatToByte(c.R), floatToByte(c.G), floatToByte(c.B), floatToByte(c.A)}
}

// Color32FromColor24 returns a new [Color32] with the color channels of
// the given [Color24] and full opacity (alpha = 255).
func Color32FromColor24(c Color24) Color32 {
	return Color32{R: c.R, G: c.G, B: c.B, A: 255}
}

// Color32Black returns a black color with the given alpha.
func Color32Black(alpha uint8) Color32 {
	return Color32{A: alpha}
}

// Color32White returns a white color with the given alpha.
func Color32White(alpha uint8) Color32 {
	return Color32{R: 255, G: 255, B: 255, A: alpha}
}

// ToColor returns the [Color] equivalent of this color, rescaling each
// color channel by 1/255 into [0, 1], dropping alpha.
func (c Color32) ToColor() Color {
	return Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// ToColorA returns the [ColorA] equivalent of this color, rescaling each
// channel by 1/255 into [0, 1], including alpha.
func (c Color32) ToColorA() ColorA {
	return ColorA{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// Set sets this color's R, G, B and A channels.
func (c *Color32) Set(r, g, b, a uint8) {
	c.R = r
	c.G = g
	c.B = b
	c.A = a
}

// SetBlack sets the color channels to zero and alpha as given.
func (c *Color32) SetBlack(alpha uint8) {
	c.Set(0, 0, 0, alpha)
}

// SetWhite sets the color channels to 255 and alpha as given.
func (c *Color32) SetWhite(alpha uint8) {
	c.Set(255, 255, 255, alpha)
}

// SetChan sets this color's channel value by channel index.
func (c *Color32) SetChan(ch Chans, value uint8) {
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
func (c Color32) Chan(ch Chans) uint8 {
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
func (c *Color32) FromSlice(vals []uint8, offset int) {
	c.R = vals[offset]
	c.G = vals[offset+1]
	c.B = vals[offset+2]
	c.A = vals[offset+3]
}

// ToSlice copies this color's channels to the given slice, starting at offset.
func (c Color32) ToSlice(vals []uint8, offset int) {
	vals[offset] = c.R
	vals[offset+1] = c.G
	vals[offset+2] = c.B
	vals[offset+3] = c.A
}

func (c Color32) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", c.R, c.G, c.B, c.A)
}

// Gray-scale reductions (alpha excluded):

// Sum returns the sum of the color channels, excluding alpha, using a
// wide accumulator (maximum 765, which does not fit in a uint8).
func (c Color32) Sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// Gray returns the average of the color channels, using rounding integer
// division: (Sum()+1)/3.
func (c Color32) Gray() uint8 {
	return uint8((c.Sum() + 1) / 3)
}

// Min returns the minimum of all channels, including alpha.
func (c Color32) Min() uint8 {
	return min(min(c.R, c.G), min(c.B, c.A))
}

// Max returns the maximum of all channels, including alpha.
func (c Color32) Max() uint8 {
	return max(max(c.R, c.G), max(c.B, c.A))
}

// IsBlack returns true if the color channels are exactly zero, ignoring alpha.
func (c Color32) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Limits (all channels, including alpha):

// Clamp clamps each channel into the closed interval [limitMin, limitMax].
// Assumes limitMin < limitMax.
func (c *Color32) Clamp(limitMin, limitMax uint8) {
	c.ClampMin(limitMin)
	c.ClampMax(limitMax)
}

// ClampMin raises each channel to no less than limitMin.
func (c *Color32) ClampMin(limitMin uint8) {
	c.R = max(c.R, limitMin)
	c.G = max(c.G, limitMin)
	c.B = max(c.B, limitMin)
	c.A = max(c.A, limitMin)
}

// ClampMax lowers each channel to no more than limitMax.
func (c *Color32) ClampMax(limitMax uint8) {
	c.R = min(c.R, limitMax)
	c.G = min(c.G, limitMax)
	c.B = min(c.B, limitMax)
	c.A = min(c.A, limitMax)
}

// RGBA implements the [image/color.Color] interface, returning
// alpha-premultiplied 16-bit channel values from the straight-alpha
// representation.
func (c Color32) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

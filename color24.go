// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

import "fmt"

// Color24 is a 24-bit RGB color with R, G and B uint8 channels in [0, 255].
// The underlying representation keeps every channel in range by
// construction; conversions from float colors saturate rather than wrap.
// It implements the standard [image/color.Color] interface as a fully
// opaque color.
type Color24 struct {
	R uint8
	G uint8
	B uint8
}

// NewColor24 returns a new [Color24] with the given r, g and b channels.
func NewColor24(r, g, b uint8) Color24 {
	return Color24{R: r, G: g, B: b}
}

// Color24FromColor returns a new [Color24] converted from the given
// [Color], scaling each channel by 255, rounding half up, and saturating
// into [0, 255].
func Color24FromColor(c Color) Color24 {
	return Color24{floatToByte(c.R), floatToByte(c.G), floatToByte(c.B)}
}

// Color24FromColorA returns a new [Color24] converted from the given
// [ColorA], scaling each color channel by 255, rounding half up, and
// saturating into [0, 255], dropping alpha.
func Color24FromColorA(c ColorA) Color24 {
	return Color24{floatToByte(c.R), floatToByte(c.G), floatToByte(c.B)}
}

// Color24FromColor32 returns a new [Color24] with the color channels of
// the given [Color32], dropping alpha.
func Color24FromColor32(c Color32) Color24 {
	return Color24{R: c.R, G: c.G, B: c.B}
}

// Color24Black returns a black color, with all channels zero.
func Color24Black() Color24 {
	return Color24{}
}

// Color24White returns a white color, with all channels 255.
func Color24White() Color24 {
	return Color24{R: 255, G: 255, B: 255}
}

// ToColor returns the [Color] equivalent of this color, rescaling each
// channel by 1/255 into [0, 1].
func (c Color24) ToColor() Color {
	return Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// ToColorA returns the [ColorA] equivalent of this color, rescaling each
// channel by 1/255 into [0, 1], with full opacity.
func (c Color24) ToColorA() ColorA {
	return ColorA{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
}

// Set sets this color's R, G and B channels.
func (c *Color24) Set(r, g, b uint8) {
	c.R = r
	c.G = g
	c.B = b
}

// SetBlack sets all channels to zero.
func (c *Color24) SetBlack() {
	c.Set(0, 0, 0)
}

// SetWhite sets all channels to 255.
func (c *Color24) SetWhite() {
	c.Set(255, 255, 255)
}

// SetChan sets this color's channel value by channel index.
func (c *Color24) SetChan(ch Chans, value uint8) {
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
func (c Color24) Chan(ch Chans) uint8 {
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
func (c *Color24) FromSlice(vals []uint8, offset int) {
	c.R = vals[offset]
	c.G = vals[offset+1]
	c.B = vals[offset+2]
}

// ToSlice copies this color's channels to the given slice, starting at offset.
func (c Color24) ToSlice(vals []uint8, offset int) {
	vals[offset] = c.R
	vals[offset+1] = c.G
	vals[offset+2] = c.B
}

func (c Color24) String() string {
	return fmt.Sprintf("(%v, %v, %v)", c.R, c.G, c.B)
}

// Gray-scale reductions:

// Sum returns the sum of the color channels, using a wide accumulator
// (maximum 765, which does not fit in a uint8).
func (c Color24) Sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// Gray returns the average of the color channels, using rounding integer
// division: (Sum()+1)/3.
func (c Color24) Gray() uint8 {
	return uint8((c.Sum() + 1) / 3)
}

// Min returns the minimum of the color channels.
func (c Color24) Min() uint8 {
	return min(c.R, min(c.G, c.B))
}

// Max returns the maximum of the color channels.
func (c Color24) Max() uint8 {
	return max(c.R, max(c.G, c.B))
}

// IsBlack returns true if all channels are exactly zero.
func (c Color24) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Limits:

// Clamp clamps each channel into the closed interval [limitMin, limitMax].
// Assumes limitMin < limitMax.
func (c *Color24) Clamp(limitMin, limitMax uint8) {
	c.ClampMin(limitMin)
	c.ClampMax(limitMax)
}

// ClampMin raises each channel to no less than limitMin.
func (c *Color24) ClampMin(limitMin uint8) {
	c.R = max(c.R, limitMin)
	c.G = max(c.G, limitMin)
	c.B = max(c.B, limitMin)
}

// ClampMax lowers each channel to no more than limitMax.
func (c *Color24) ClampMax(limitMax uint8) {
	c.R = min(c.R, limitMax)
	c.G = min(c.G, limitMax)
	c.B = min(c.B, limitMax)
}

// RGBA implements the [image/color.Color] interface, returning
// alpha-premultiplied 16-bit channel values for a fully opaque color.
func (c Color24) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// floatToByte converts a float channel value to a byte channel value,
// scaling by 255, rounding half up, and saturating into [0, 255].
func floatToByte(v float32) uint8 {
	i := int(v*255 + 0.5)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return uint8(i)
}

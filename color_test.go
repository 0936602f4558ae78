// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-6)

func TolAssertEqualColor(t *testing.T, tol float32, want, have Color) {
	assert.InDelta(t, want.R, have.R, float64(tol))
	assert.InDelta(t, want.G, have.G, float64(tol))
	assert.InDelta(t, want.B, have.B, float64(tol))
}

func TolAssertEqualColorA(t *testing.T, tol float32, want, have ColorA) {
	assert.InDelta(t, want.R, have.R, float64(tol))
	assert.InDelta(t, want.G, have.G, float64(tol))
	assert.InDelta(t, want.B, have.B, float64(tol))
	assert.InDelta(t, want.A, have.A, float64(tol))
}

func TestColor(t *testing.T) {
	assert.Equal(t, Color{0.1, 0.2, 0.3}, NewColor(0.1, 0.2, 0.3))
	assert.Equal(t, Color{0.5, 0.5, 0.5}, ColorScalar(0.5))
	assert.Equal(t, Color{0.1, 0.2, 0.3}, ColorFromColorA(ColorA{0.1, 0.2, 0.3, 0.4}))
	assert.Equal(t, Color{}, ColorBlack())
	assert.Equal(t, Color{1, 1, 1}, ColorWhite())

	c := Color{}
	c.Set(0.25, 0.5, 0.75)
	assert.Equal(t, Color{0.25, 0.5, 0.75}, c)

	c.SetScalar(0.125)
	assert.Equal(t, Color{0.125, 0.125, 0.125}, c)

	c.SetWhite()
	assert.Equal(t, ColorWhite(), c)

	c.SetBlack()
	assert.Equal(t, ColorBlack(), c)
}

func TestColorSlice(t *testing.T) {
	c := Color{}
	c.FromSlice([]float32{0, 0.25, 0.5, 0.75, 1}, 1)
	assert.Equal(t, Color{0.25, 0.5, 0.75}, c)

	vals := make([]float32, 5)
	c.ToSlice(vals, 2)
	assert.Equal(t, []float32{0, 0, 0.25, 0.5, 0.75}, vals)
}

func TestColorChan(t *testing.T) {
	c := NewColor(0.25, 0.5, 0.75)
	assert.Equal(t, c.R, c.Chan(R))
	assert.Equal(t, c.G, c.Chan(G))
	assert.Equal(t, c.B, c.Chan(B))

	c.SetChan(G, 0.9)
	assert.Equal(t, float32(0.9), c.G)

	assert.Panics(t, func() { c.Chan(A) })
	assert.Panics(t, func() { c.SetChan(A, 1) })
}

func TestColorGray(t *testing.T) {
	assert.Equal(t, float32(1), NewColor(1, 0, 0).Sum())
	assert.InDelta(t, 1.0/3.0, NewColor(1, 0, 0).Gray(), float64(StandardTol))
	assert.InDelta(t, 0.5, NewColor(0.25, 0.5, 0.75).Gray(), float64(StandardTol))

	assert.InDelta(t, 1, ColorWhite().Luma1(), float64(StandardTol))
	assert.InDelta(t, 1, ColorWhite().Luma2(), float64(StandardTol))
	assert.InDelta(t, 0.299, NewColor(1, 0, 0).Luma1(), float64(StandardTol))
	assert.InDelta(t, 0.7152, NewColor(0, 1, 0).Luma2(), float64(StandardTol))

	assert.Equal(t, float32(0.25), NewColor(0.5, 0.25, 0.75).Min())
	assert.Equal(t, float32(0.75), NewColor(0.5, 0.25, 0.75).Max())
}

func TestColorPredicates(t *testing.T) {
	assert.True(t, NewColor(-0.001, 0.5, 0.5).IsNegative())
	assert.False(t, NewColor(0, 0.5, 0.5).IsNegative())

	assert.True(t, ColorBlack().IsBlack())
	assert.False(t, NewColor(0.0000001, 0, 0).IsBlack())

	assert.True(t, NewColor(0.1, 0.2, 0.3).IsFinite())
	assert.False(t, NewColor(math32.Inf(1), 0, 0).IsFinite())
	assert.False(t, NewColor(0, math32.NaN(), 0).IsFinite())
	assert.False(t, ColorWhite().DivScalar(0).IsFinite())
}

func TestColorApply(t *testing.T) {
	double := func(x float32) float32 { return x * 2 }

	c := NewColor(1, 2, 3)
	c.Apply(double)
	assert.Equal(t, Color{2, 4, 6}, c)

	assert.Equal(t, Color{4, 8, 12}, c.Applied(double))
	assert.Equal(t, Color{2, 4, 6}, c) // Applied does not mutate
}

func TestColorClamp(t *testing.T) {
	c := NewColor(-1, 0.5, 2)
	c.Clamp01()
	assert.Equal(t, Color{0, 0.5, 1}, c)

	c = NewColor(-1, 0.5, 2)
	c.Clamp(0.25, 0.75)
	assert.Equal(t, Color{0.25, 0.5, 0.75}, c)

	c = NewColor(-1, 0.5, 2)
	c.ClampMin(0)
	assert.Equal(t, Color{0, 0.5, 2}, c)
	c.ClampMax(1)
	assert.Equal(t, Color{0, 0.5, 1}, c)

	assert.Equal(t, Color{1, 0.5, 2}, NewColor(-1, 0.5, -2).Abs())
}

func TestColorMath(t *testing.T) {
	c := NewColor(1, 2, 3)

	assert.Equal(t, Color{5, 7, 9}, c.Add(NewColor(4, 5, 6)))
	assert.Equal(t, Color{3, 4, 5}, c.AddScalar(2))
	assert.Equal(t, Color{-3, -3, -3}, c.Sub(NewColor(4, 5, 6)))
	assert.Equal(t, Color{-1, 0, 1}, c.SubScalar(2))
	assert.Equal(t, Color{3, 2, 1}, c.SubFromScalar(4))
	assert.Equal(t, Color{4, 10, 18}, c.Mul(NewColor(4, 5, 6)))
	assert.Equal(t, Color{2, 4, 6}, c.MulScalar(2))
	assert.Equal(t, Color{2, 2, 2}, NewColor(8, 6, 4).Div(NewColor(4, 3, 2)))
	assert.Equal(t, Color{4, 3, 2}, NewColor(8, 6, 4).DivScalar(2))
	assert.Equal(t, Color{-1, -2, -3}, c.Negate())

	// identities
	assert.Equal(t, c, c.Add(ColorBlack()))
	assert.Equal(t, c, c.Mul(ColorWhite()))

	v := c
	v.SetAdd(NewColor(1, 1, 1))
	assert.Equal(t, Color{2, 3, 4}, v)
	v.SetAddScalar(1)
	assert.Equal(t, Color{3, 4, 5}, v)
	v.SetSub(NewColor(1, 1, 1))
	assert.Equal(t, Color{2, 3, 4}, v)
	v.SetSubScalar(1)
	assert.Equal(t, Color{1, 2, 3}, v)
	v.SetMul(NewColor(2, 2, 2))
	assert.Equal(t, Color{2, 4, 6}, v)
	v.SetMulScalar(2)
	assert.Equal(t, Color{4, 8, 12}, v)
	v.SetDiv(NewColor(2, 2, 2))
	assert.Equal(t, Color{2, 4, 6}, v)
	v.SetDivScalar(2)
	assert.Equal(t, Color{1, 2, 3}, v)
}

func TestColorLerp(t *testing.T) {
	assert.Equal(t, Color{0.5, 0.5, 0.5}, ColorBlack().Lerp(ColorWhite(), 0.5))
	assert.Equal(t, Color{1, 2, 3}, NewColor(1, 2, 3).Lerp(NewColor(7, 8, 9), 0))
	assert.Equal(t, Color{7, 8, 9}, NewColor(1, 2, 3).Lerp(NewColor(7, 8, 9), 1))
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "(1, 0.5, 0)", NewColor(1, 0.5, 0).String())
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSRGBComp(t *testing.T) {
	// linear segment
	assert.InDelta(t, 0.01292, SRGBFromLinearComp(0.001), 1e-7)
	assert.InDelta(t, 0.00015479876, SRGBToLinearComp(0.002), 1e-9)

	// power segment
	assert.InDelta(t, 0.73535698, SRGBFromLinearComp(0.5), 1e-5)
	assert.InDelta(t, 0.21404114, SRGBToLinearComp(0.5), 1e-5)

	assert.InDelta(t, 0, SRGBFromLinearComp(0), 1e-7)
	assert.InDelta(t, 0, SRGBToLinearComp(0), 1e-7)
	assert.InDelta(t, 1, SRGBFromLinearComp(1), 1e-6)
	assert.InDelta(t, 1, SRGBToLinearComp(1), 1e-6)
}

func TestSRGBRoundTrip(t *testing.T) {
	vals := []float32{0, 0.001, 0.0031308, 0.004, 0.04045, 0.05, 0.18, 0.5, 0.73, 1}
	for _, v := range vals {
		assert.InDelta(t, v, SRGBFromLinearComp(SRGBToLinearComp(v)), 1e-5)
		assert.InDelta(t, v, SRGBToLinearComp(SRGBFromLinearComp(v)), 1e-5)
	}
}

func TestColorSRGB(t *testing.T) {
	c := NewColor(0.001, 0.5, 1)
	s := c.LinearToSRGB()
	TolAssertEqualColor(t, 1e-5, NewColor(0.01292, 0.73535698, 1), s)
	TolAssertEqualColor(t, 1e-5, c, s.SRGBToLinear())
}

func TestColorASRGB(t *testing.T) {
	// alpha passes through unmodified
	c := NewColorA(0.001, 0.5, 1, 0.25)
	s := c.LinearToSRGB()
	assert.Equal(t, float32(0.25), s.A)
	TolAssertEqualColorA(t, 1e-5, NewColorA(0.01292, 0.73535698, 1, 0.25), s)

	l := s.SRGBToLinear()
	assert.Equal(t, float32(0.25), l.A)
	TolAssertEqualColorA(t, 1e-5, c, l)
}

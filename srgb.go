// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

import "github.com/chewxy/math32"

// SRGBFromLinearComp converts a linear channel value to an sRGB
// gamma-encoded value, using the standard piecewise sRGB transfer function.
func SRGBFromLinearComp(lin float32) float32 {
	if lin < 0.0031308 {
		return lin * 12.92
	}
	return math32.Pow(lin, 1.0/2.4)*1.055 - 0.055
}

// SRGBToLinearComp converts an sRGB gamma-encoded channel value to a
// linear value, inverting [SRGBFromLinearComp].
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

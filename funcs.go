// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

import "github.com/chewxy/math32"

// FloatColor is a constraint satisfied by the float color types, [Color]
// and [ColorA], for the generic per-channel math functions. Each function
// goes through the Applied mechanism, so for [ColorA] it applies to the
// color channels only, with alpha copied through unmodified.
type FloatColor[C any] interface {
	Applied(fn func(x float32) float32) C
}

// Abs returns the given color with the absolute value applied to each
// color channel.
func Abs[C FloatColor[C]](c C) C {
	return c.Applied(math32.Abs)
}

// Exp returns the given color with the base-e exponential applied to each
// color channel.
func Exp[C FloatColor[C]](c C) C {
	return c.Applied(math32.Exp)
}

// Exp2 returns the given color with the base-2 exponential applied to each
// color channel.
func Exp2[C FloatColor[C]](c C) C {
	return c.Applied(math32.Exp2)
}

// Log returns the given color with the natural logarithm applied to each
// color channel.
func Log[C FloatColor[C]](c C) C {
	return c.Applied(math32.Log)
}

// Log2 returns the given color with the base-2 logarithm applied to each
// color channel.
func Log2[C FloatColor[C]](c C) C {
	return c.Applied(math32.Log2)
}

// Log10 returns the given color with the base-10 logarithm applied to each
// color channel.
func Log10[C FloatColor[C]](c C) C {
	return c.Applied(math32.Log10)
}

// Sqrt returns the given color with the square root applied to each
// color channel.
func Sqrt[C FloatColor[C]](c C) C {
	return c.Applied(math32.Sqrt)
}

// Pow returns the given color with each color channel raised to the given
// exponent.
func Pow[C FloatColor[C]](c C, exponent float32) C {
	return c.Applied(func(x float32) float32 { return math32.Pow(x, exponent) })
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorf provides small fixed-size color value types for graphics
// pipelines: [Color] and [ColorA] with float32 channels, and their 8-bit
// counterparts [Color24] and [Color32], with explicit conversions between
// all four, component-wise math, gray-scale and luma reductions, and sRGB
// transfer-function support.
package colorf

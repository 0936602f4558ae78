// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

import "image/color"

var (
	_ color.Color = Color24{}
	_ color.Color = Color32{}
)

// Color32FromImageColor returns a new [Color32] from the given
// [image/color.Color], converting from the standard alpha-premultiplied
// 16-bit channels back to straight 8-bit alpha.
func Color32FromImageColor(ic color.Color) Color32 {
	nc := color.NRGBAModel.Convert(ic).(color.NRGBA)
	return Color32{R: nc.R, G: nc.G, B: nc.B, A: nc.A}
}

// Color24FromImageColor returns a new [Color24] from the given
// [image/color.Color], dropping alpha.
func Color24FromImageColor(ic color.Color) Color24 {
	return Color24FromColor32(Color32FromImageColor(ic))
}

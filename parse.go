// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Color32FromString returns a new [Color32] from the given string, which
// can be a hex value of the forms #RGB, #RGBA, #RRGGBB, or #RRGGBBAA, or
// a lowercase SVG 1.1 color name such as "red" (see
// [golang.org/x/image/colornames]). Alpha defaults to 255 where the
// string does not specify it.
func Color32FromString(str string) (Color32, error) {
	if len(str) == 0 {
		return Color32{}, fmt.Errorf("colorf.Color32FromString: empty color string")
	}
	if str[0] == '#' {
		return color32FromHex(str)
	}
	nc, ok := colornames.Map[strings.ToLower(str)]
	if !ok {
		return Color32{}, fmt.Errorf("colorf.Color32FromString: name not found: %q", str)
	}
	return Color32{R: nc.R, G: nc.G, B: nc.B, A: nc.A}, nil
}

// Color24FromString returns a new [Color24] from the given string,
// accepting what [Color32FromString] accepts and dropping any alpha.
func Color24FromString(str string) (Color24, error) {
	c, err := Color32FromString(str)
	return Color24FromColor32(c), err
}

func color32FromHex(x string) (Color32, error) {
	x = strings.TrimPrefix(x, "#")
	var r, g, b int
	a := 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 4:
		fmt.Sscanf(x, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		a |= a << 4
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return Color32{}, fmt.Errorf("colorf.Color32FromString: could not process hex value: %v", x)
	}
	return Color32{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorf

// Chans is a list of color channel indexes, for indexed access to the
// channels of a color via the Chan and SetChan methods. Channel 0 is R
// and the last channel is A for the 4-channel types.
type Chans int32

const (
	R Chans = iota
	G
	B
	A
)

func (ch Chans) String() string {
	switch ch {
	case R:
		return "R"
	case G:
		return "G"
	case B:
		return "B"
	case A:
		return "A"
	}
	return "ChansN"
}

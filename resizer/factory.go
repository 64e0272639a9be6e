//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package resizer

import (
	"github.com/fogfish/thumbnail/geometry"
)

// Factory chooses the resizer for the given source and target sizes.
type Factory interface {
	Resizer(src, dst geometry.Dimension) Resizer
}

// Default policy:
//   - same size: Null
//   - upscale in both axes: Bicubic
//   - downscale more than factor 2 in any axis: Tile
//   - otherwise: Bilinear
var Default Factory = &policy{downscale: Tile}

// DefaultProgressive is the Default policy that uses Progressive for large
// downscales.
var DefaultProgressive Factory = &policy{downscale: Progressive}

type policy struct{ downscale Resizer }

func (p *policy) Resizer(src, dst geometry.Dimension) Resizer {
	switch {
	case src == dst:
		return Null
	case dst.Width >= src.Width && dst.Height >= src.Height:
		return Bicubic
	case dst.Width*2 < src.Width || dst.Height*2 < src.Height:
		return p.downscale
	default:
		return Bilinear
	}
}

// Fixed factory always returns the same resizer regardless of sizes.
func Fixed(r Resizer) Factory { return fixed{resizer: r} }

type fixed struct{ resizer Resizer }

func (f fixed) Resizer(geometry.Dimension, geometry.Dimension) Resizer { return f.resizer }

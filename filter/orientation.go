//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package filter

import (
	"image"

	"github.com/disintegration/imaging"
)

// Orientation is the EXIF orientation tag (1..8). The filter of orientation
// brings image to the upright position.
type Orientation int

const (
	OrientationNormal Orientation = 1 + iota
	OrientationMirrorHorizontal
	OrientationRotate180
	OrientationMirrorVertical
	OrientationTranspose
	OrientationRotate90CW
	OrientationTransverse
	OrientationRotate90CCW
)

var orientations = map[Orientation]func(image.Image) *image.NRGBA{
	OrientationMirrorHorizontal: imaging.FlipH,
	OrientationRotate180:        imaging.Rotate180,
	OrientationMirrorVertical:   imaging.FlipV,
	OrientationTranspose:        imaging.Transpose,
	OrientationRotate90CW:       imaging.Rotate270,
	OrientationTransverse:       imaging.Transverse,
	OrientationRotate90CCW:      imaging.Rotate90,
}

// ForOrientation returns filter that corrects orientation, false if the
// orientation is normal or unknown.
func ForOrientation(o Orientation) (Filter, bool) {
	if _, has := orientations[o]; !has {
		return nil, false
	}
	return o, true
}

func (o Orientation) Valid() bool { return o >= OrientationNormal && o <= OrientationRotate90CCW }

// Inverse orientation undoes the correction
func (o Orientation) Inverse() Orientation {
	switch o {
	case OrientationRotate90CW:
		return OrientationRotate90CCW
	case OrientationRotate90CCW:
		return OrientationRotate90CW
	default:
		return o
	}
}

// SwapsAxes is true if the correction exchanges width and height
func (o Orientation) SwapsAxes() bool {
	return o >= OrientationTranspose && o <= OrientationRotate90CCW
}

func (o Orientation) Apply(img image.Image) image.Image {
	f, has := orientations[o]
	if !has {
		return img
	}
	return f(img)
}

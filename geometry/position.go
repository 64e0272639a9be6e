//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package geometry

import (
	"image"
)

// Insets reserves space along the edges of the enclosing object.
type Insets struct {
	Left, Right, Top, Bottom int
}

// Position calculates the top-left corner of an inner object placed within
// an enclosing one.
type Position interface {
	Calculate(outer, inner Dimension, insets Insets) image.Point
}

// Anchor is one of nine canonical positions within an enclosing object.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var anchors = map[string]Anchor{
	"top-left":      TopLeft,
	"top-center":    TopCenter,
	"top-right":     TopRight,
	"center-left":   CenterLeft,
	"center":        Center,
	"center-right":  CenterRight,
	"bottom-left":   BottomLeft,
	"bottom-center": BottomCenter,
	"bottom-right":  BottomRight,
}

// AnchorOf parses anchor name (e.g. "top-left", "center").
func AnchorOf(name string) (Anchor, bool) {
	a, has := anchors[name]
	return a, has
}

func (a Anchor) String() string {
	for name, x := range anchors {
		if x == a {
			return name
		}
	}
	return "unknown"
}

func (a Anchor) Calculate(outer, inner Dimension, insets Insets) image.Point {
	var x, y int

	switch a % 3 {
	case 0:
		x = insets.Left
	case 1:
		x = outer.Width/2 - inner.Width/2
	case 2:
		x = outer.Width - inner.Width - insets.Right
	}

	switch a / 3 {
	case 0:
		y = insets.Top
	case 1:
		y = outer.Height/2 - inner.Height/2
	case 2:
		y = outer.Height - inner.Height - insets.Bottom
	}

	return image.Point{X: x, Y: y}
}

// Coordinate is an absolute position, insets are ignored.
type Coordinate image.Point

func (c Coordinate) Calculate(Dimension, Dimension, Insets) image.Point {
	return image.Point(c)
}

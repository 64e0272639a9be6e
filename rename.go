//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/thumbnail
//

package thumbnail

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"
)

// Rename derives the name of thumbnail from the name of source file.
type Rename func(name string) string

var (
	// NoChange keeps the name as-is
	NoChange Rename = func(name string) string { return name }

	// PrefixThumbnail renames photo.jpg to thumbnail.photo.jpg
	PrefixThumbnail Rename = func(name string) string { return "thumbnail." + name }

	// SuffixThumbnail renames photo.jpg to photo.thumbnail.jpg
	SuffixThumbnail Rename = func(name string) string {
		ext := filepath.Ext(name)
		return strings.TrimSuffix(name, ext) + ".thumbnail" + ext
	}
)

// Path applies rename to the file name keeping the directory
func (r Rename) Path(path string) string {
	dir, file := filepath.Split(path)
	return dir + r(file)
}

// Consecutive is infinite sequence of names produced by formatting the
// counter (e.g. thumbnail-%d.png), starting from start.
func Consecutive(pattern string, start int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := start; ; i++ {
			if !yield(fmt.Sprintf(pattern, i)) {
				return
			}
		}
	}
}

// Renamed is sequence of names derived from the source names.
func Renamed(rename Rename, names ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range names {
			if !yield(rename.Path(name)) {
				return
			}
		}
	}
}

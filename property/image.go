// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned by [DecodeImage] for data that is not an image.
var ErrNotImage = errors.New("property: data is not an image")

// DecodeImage decodes the given file data into an image for use as the new
// value of an [ImagePicker]. The format is sniffed from the data, and it
// returns [ErrNotImage] if the data is not a supported image.
func DecodeImage(data []byte) (image.Image, error) {
	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrNotImage, kind.MIME.Value, err)
	}
	return img, nil
}

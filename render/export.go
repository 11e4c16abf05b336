// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import (
	"encoding/base64"
	"encoding/json"
	"net/url"

	"github.com/cockroachdb/errors"
)

// DefaultViewerURL is the page GenerateURL links to when no base is given.
var DefaultViewerURL = url.URL{
	Scheme: "https",
	Host:   "structviz.github.io",
	Path:   "viewer/decode.html",
}

// EncodeFrames encodes frames as compressed JSON in unpadded URL-safe base64.
// The first decoded byte identifies the codec.
func EncodeFrames(frames []Frame, codec Codec) (string, error) {
	data, err := json.Marshal(frames)
	if err != nil {
		return "", errors.Wrap(err, "encoding frames")
	}
	compressed, err := codec.compress(data)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(compressed), nil
}

// DecodeFrames decodes the output of EncodeFrames.
func DecodeFrames(s string) ([]Frame, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding base64")
	}
	data, err := decompress(compressed)
	if err != nil {
		return nil, errors.Wrap(err, "decompressing frames")
	}
	var frames []Frame
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, errors.Wrap(err, "decoding frames")
	}
	return frames, nil
}

// GenerateURL returns a URL replaying the frames. The frames are encoded in
// the URL fragment so they never reach the server.
func GenerateURL(base url.URL, frames []Frame, codec Codec) (url.URL, error) {
	enc, err := EncodeFrames(frames, codec)
	if err != nil {
		return url.URL{}, err
	}
	base.Fragment = enc
	base.RawFragment = ""
	return base, nil
}

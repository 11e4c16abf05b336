// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/minio/minlz"
)

// Codec is the compression applied to exported frames.
type Codec uint8

const (
	Snappy Codec = iota
	MinLZ
	Zstd
	numCodecs
)

var codecNames = [numCodecs]string{
	Snappy: "snappy",
	MinLZ:  "minlz",
	Zstd:   "zstd",
}

// Codecs returns all the supported codecs.
func Codecs() []Codec {
	return []Codec{Snappy, MinLZ, Zstd}
}

func (c Codec) String() string {
	if c < numCodecs {
		return codecNames[c]
	}
	return fmt.Sprintf("codec(%d)", uint8(c))
}

// ParseCodec returns the codec with the given name.
func ParseCodec(s string) (Codec, error) {
	for c, name := range codecNames {
		if name == s {
			return Codec(c), nil
		}
	}
	return 0, errors.Newf("unknown codec %q", s)
}

// compress returns the compressed form of src prefixed by the codec that
// produced it.
func (c Codec) compress(src []byte) ([]byte, error) {
	// MinLZ cannot encode blocks larger than MaxBlockSize; MinLZ readers can
	// decode Snappy, but the prefix records what was used.
	if c == MinLZ && len(src) > minlz.MaxBlockSize {
		c = Snappy
	}
	dst := []byte{byte(c)}
	switch c {
	case Snappy:
		return append(dst, snappy.Encode(nil, src)...), nil
	case MinLZ:
		out, err := minlz.Encode(nil, src, minlz.LevelBalanced)
		if err != nil {
			return nil, errors.Wrap(err, "minlz compression")
		}
		return append(dst, out...), nil
	case Zstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, errors.Wrap(err, "zstd compression")
		}
		out := enc.EncodeAll(src, dst)
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "zstd compression")
		}
		return out, nil
	default:
		return nil, errors.AssertionFailedf("unknown codec %d", uint8(c))
	}
}

// decompress reverses compress.
func decompress(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, errors.New("missing codec prefix")
	}
	c, src := Codec(b[0]), b[1:]
	var out []byte
	var err error
	switch c {
	case Snappy:
		out, err = snappy.Decode(nil, src)
	case MinLZ:
		out, err = minlz.Decode(nil, src)
	case Zstd:
		var dec *zstd.Decoder
		if dec, err = zstd.NewReader(nil); err == nil {
			out, err = dec.DecodeAll(src, nil)
			dec.Close()
		}
	default:
		return nil, errors.Newf("unknown codec %d", uint8(c))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s decompression", c)
	}
	return out, nil
}

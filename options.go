// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultAnimationSpeed  = 500 * time.Millisecond
	defaultNodeSpacing     = 100
	defaultLevelSpacing    = 80
	defaultMarkerOffset    = 60
	defaultViewportWidth   = 800
	defaultViewportHeight  = 600
	defaultMaxZoom         = 2
	defaultDefaultCapacity = 5
	defaultMaxCapacity     = 1024
)

// Clock is the only suspension primitive used by structures. Every step of an
// operation ends with a call to Sleep.
type Clock interface {
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// DefaultClock sleeps on the wall clock.
var DefaultClock Clock = realClock{}

// Options holds the optional parameters for configuring a structure. These
// options apply to the structure at the time it is created; modifying them
// afterwards has no effect.
type Options struct {
	// AnimationSpeed is the base delay unit. Every wait lasts a multiple of it.
	//
	// The default value is 500ms.
	AnimationSpeed time.Duration

	// DisableCentering disables zooming and panning the view to the bounding
	// box of the structure at the start and end of every operation.
	DisableCentering bool

	// NodeSpacing is the horizontal distance between neighboring nodes.
	NodeSpacing float64

	// LevelSpacing is the vertical distance between tree levels. Nodes being
	// inserted into a list wait this far below the list.
	LevelSpacing float64

	// MarkerOffset is the vertical distance between a marker (temporary
	// pointer, cursor, queue begin/end) and the node it points at.
	MarkerOffset float64

	// ViewportWidth and ViewportHeight are the size of the view used for
	// centering.
	ViewportWidth, ViewportHeight float64

	// MaxZoom caps the zoom level chosen by centering.
	MaxZoom float64

	// DefaultCapacity is the capacity of array-backed structures initialized
	// with a zero Config.Capacity.
	DefaultCapacity int

	// MaxCapacity bounds the capacity of array-backed structures. Larger
	// requested capacities are clamped by Init and rejected by Exec.
	//
	// The default value is 1024.
	MaxCapacity int

	// RandomSeed seeds the generator used by Random. Zero picks a random seed.
	RandomSeed uint64

	// Clock is used for every wait. The default sleeps on the wall clock.
	Clock Clock

	// Logger used to write log messages.
	//
	// The default logger uses the Go standard library log package.
	Logger Logger

	// EventListener provides hooks for animation phases and reports. The
	// default listener does nothing.
	EventListener *EventListener

	// Renderer receives the model after every change. The default renderer
	// discards everything.
	Renderer Renderer

	// OperationLatency, if set, observes the wall-clock duration (in seconds)
	// of every operation that passed the animation guard.
	OperationLatency prometheus.Histogram
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified.
func (o *Options) EnsureDefaults() {
	if o.AnimationSpeed <= 0 {
		o.AnimationSpeed = defaultAnimationSpeed
	}
	if o.NodeSpacing <= 0 {
		o.NodeSpacing = defaultNodeSpacing
	}
	if o.LevelSpacing <= 0 {
		o.LevelSpacing = defaultLevelSpacing
	}
	if o.MarkerOffset <= 0 {
		o.MarkerOffset = defaultMarkerOffset
	}
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = defaultViewportWidth
	}
	if o.ViewportHeight <= 0 {
		o.ViewportHeight = defaultViewportHeight
	}
	if o.MaxZoom <= 0 {
		o.MaxZoom = defaultMaxZoom
	}
	if o.DefaultCapacity <= 0 {
		o.DefaultCapacity = defaultDefaultCapacity
	}
	if o.MaxCapacity <= 0 {
		o.MaxCapacity = defaultMaxCapacity
	}
	if o.DefaultCapacity > o.MaxCapacity {
		o.DefaultCapacity = o.MaxCapacity
	}
	if o.RandomSeed == 0 {
		o.RandomSeed = rand.Uint64()
	}
	if o.Clock == nil {
		o.Clock = DefaultClock
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger
	}
	if o.EventListener == nil {
		o.EventListener = &EventListener{}
	}
	o.EventListener.EnsureDefaults(o.Logger)
	if o.Renderer == nil {
		o.Renderer = nopRenderer{}
	}
}

// Clone creates a shallow-copy of the supplied options.
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}
	n := *o
	if o.EventListener != nil {
		l := *o.EventListener
		n.EventListener = &l
	}
	return &n
}

// String returns the serializable options in INI form.
func (o *Options) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "[Options]\n")
	fmt.Fprintf(&buf, "  animation_speed=%s\n", o.AnimationSpeed)
	fmt.Fprintf(&buf, "  default_capacity=%d\n", o.DefaultCapacity)
	fmt.Fprintf(&buf, "  disable_centering=%t\n", o.DisableCentering)
	fmt.Fprintf(&buf, "  level_spacing=%g\n", o.LevelSpacing)
	fmt.Fprintf(&buf, "  marker_offset=%g\n", o.MarkerOffset)
	fmt.Fprintf(&buf, "  max_capacity=%d\n", o.MaxCapacity)
	fmt.Fprintf(&buf, "  max_zoom=%g\n", o.MaxZoom)
	fmt.Fprintf(&buf, "  node_spacing=%g\n", o.NodeSpacing)
	fmt.Fprintf(&buf, "  random_seed=%d\n", o.RandomSeed)
	fmt.Fprintf(&buf, "  viewport_height=%g\n", o.ViewportHeight)
	fmt.Fprintf(&buf, "  viewport_width=%g\n", o.ViewportWidth)
	return buf.String()
}

// Parse parses the options from the specified string. Note that certain
// options cannot be parsed into populated fields. For example, the Clock,
// Logger, EventListener and Renderer are left untouched.
func (o *Options) Parse(s string) error {
	return parseOptions(s, func(section, key, value string) error {
		if section != "Options" {
			return errors.Errorf("structviz: unknown section: %s", section)
		}
		var err error
		switch key {
		case "animation_speed":
			o.AnimationSpeed, err = time.ParseDuration(value)
		case "default_capacity":
			o.DefaultCapacity, err = strconv.Atoi(value)
		case "disable_centering":
			o.DisableCentering, err = strconv.ParseBool(value)
		case "level_spacing":
			o.LevelSpacing, err = strconv.ParseFloat(value, 64)
		case "marker_offset":
			o.MarkerOffset, err = strconv.ParseFloat(value, 64)
		case "max_capacity":
			o.MaxCapacity, err = strconv.Atoi(value)
		case "max_zoom":
			o.MaxZoom, err = strconv.ParseFloat(value, 64)
		case "node_spacing":
			o.NodeSpacing, err = strconv.ParseFloat(value, 64)
		case "random_seed":
			o.RandomSeed, err = strconv.ParseUint(value, 10, 64)
		case "viewport_height":
			o.ViewportHeight, err = strconv.ParseFloat(value, 64)
		case "viewport_width":
			o.ViewportWidth, err = strconv.ParseFloat(value, 64)
		default:
			return errors.Errorf("structviz: unknown option: %s.%s", section, key)
		}
		if err != nil {
			return errors.Wrapf(err, "structviz: parsing %s", errors.Safe(key))
		}
		return nil
	})
}

// parseOptions scans an INI-style document and calls visit for every
// key=value pair. Blank lines and lines starting with ';' or '#' are skipped.
func parseOptions(s string, visit func(section, key, value string) error) error {
	var section string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == ';' || line[0] == '#' {
			continue
		}
		n := len(line)
		if line[0] == '[' && line[n-1] == ']' {
			section = line[1 : n-1]
			continue
		}
		pos := strings.Index(line, "=")
		if pos < 0 {
			const maxLen = 50
			if len(line) > maxLen {
				line = line[:maxLen-3] + "..."
			}
			return errors.Errorf("structviz: invalid key=value syntax: %q", line)
		}
		key := strings.TrimSpace(line[:pos])
		value := strings.TrimSpace(line[pos+1:])
		if err := visit(section, key, value); err != nil {
			return err
		}
	}
	return nil
}

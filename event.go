// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"time"

	"github.com/cockroachdb/redact"
)

// AnimationInfo contains the info for an animation begin or end event.
type AnimationInfo struct {
	Structure Kind
	// Op is the name of the operation, e.g. "insert-first".
	Op string
	// Changed is set on end events if the operation changed the model.
	Changed bool
	// Duration is the simulated animation time spent by the operation (the sum
	// of its waits). Only set on end events.
	Duration time.Duration
}

func (i AnimationInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i AnimationInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%s] %s", i.Structure, redact.SafeString(i.Op))
	if i.Duration > 0 || i.Changed {
		w.Printf(" changed=%t in %s", redact.Safe(i.Changed), redact.Safe(i.Duration))
	}
}

// Param is a named parameter of a message.
type Param struct {
	Name, Value string
}

// MessageInfo is a result report. Key is a dot-namespaced identifier (e.g.
// "list.getFirstError") that is resolved to display text by the caller.
type MessageInfo struct {
	Structure Kind
	Key       string
	Params    []Param
}

// Param returns the value of the named parameter, or "".
func (i MessageInfo) Param(name string) string {
	for _, p := range i.Params {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

func (i MessageInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i MessageInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%s] %s", i.Structure, redact.SafeString(i.Key))
	for _, p := range i.Params {
		w.Printf(" %s=%s", redact.SafeString(p.Name), p.Value)
	}
}

// OutputLineInfo is a raw output line. If Replace is set, the line replaces
// the previous output line instead of starting a new one; traversals use this
// to grow a single line one value at a time.
type OutputLineInfo struct {
	Structure Kind
	Text      string
	Replace   bool
}

func (i OutputLineInfo) String() string {
	return redact.StringWithoutMarkers(i)
}

// SafeFormat implements redact.SafeFormatter.
func (i OutputLineInfo) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("[%s] output", i.Structure)
	if i.Replace {
		w.SafeString(" (replace)")
	}
	w.Printf(": %s", i.Text)
}

// EventListener contains a set of functions that will be invoked when various
// significant structure events occur. Note that the functions should not run
// for an excessive amount of time as they are invoked synchronously by the
// structure and may block the running operation.
type EventListener struct {
	// AnimationBegin is invoked when an operation passes the animation guard.
	AnimationBegin func(AnimationInfo)

	// AnimationEnd is invoked when the animating flag is cleared.
	AnimationEnd func(AnimationInfo)

	// StatusText is invoked at phase boundaries with a free-text status
	// ("centering", "animating"); an empty string clears the status.
	StatusText func(string)

	// Message is invoked with keyed results, including inapplicable
	// operations.
	Message func(MessageInfo)

	// OutputLine is invoked with raw output lines (traversal output).
	OutputLine func(OutputLineInfo)
}

// EnsureDefaults ensures that background error events are logged to the
// specified logger if a handler for those events hasn't been otherwise
// specified. Ensure all handlers are non-nil so that we don't have to check
// for nil-ness before invoking.
func (l *EventListener) EnsureDefaults(logger Logger) {
	if l.AnimationBegin == nil {
		l.AnimationBegin = func(info AnimationInfo) {}
	}
	if l.AnimationEnd == nil {
		l.AnimationEnd = func(info AnimationInfo) {}
	}
	if l.StatusText == nil {
		l.StatusText = func(string) {}
	}
	if l.Message == nil {
		if logger != nil {
			l.Message = func(info MessageInfo) {
				logger.Infof("%s", info)
			}
		} else {
			l.Message = func(info MessageInfo) {}
		}
	}
	if l.OutputLine == nil {
		l.OutputLine = func(info OutputLineInfo) {}
	}
}

// MakeLoggingEventListener creates an EventListener that logs all events to
// the specified logger.
func MakeLoggingEventListener(logger Logger) EventListener {
	if logger == nil {
		logger = DefaultLogger
	}
	return EventListener{
		AnimationBegin: func(info AnimationInfo) {
			logger.Infof("%s: begin", info)
		},
		AnimationEnd: func(info AnimationInfo) {
			logger.Infof("%s: end", info)
		},
		StatusText: func(text string) {
			if text != "" {
				logger.Infof("status: %s", text)
			}
		},
		Message: func(info MessageInfo) {
			logger.Infof("%s", info)
		},
		OutputLine: func(info OutputLineInfo) {
			logger.Infof("%s", info)
		},
	}
}

// TeeEventListener wraps two EventListeners, forwarding all events to both.
func TeeEventListener(a, b EventListener) EventListener {
	a.EnsureDefaults(nil)
	b.EnsureDefaults(nil)
	return EventListener{
		AnimationBegin: func(info AnimationInfo) {
			a.AnimationBegin(info)
			b.AnimationBegin(info)
		},
		AnimationEnd: func(info AnimationInfo) {
			a.AnimationEnd(info)
			b.AnimationEnd(info)
		},
		StatusText: func(text string) {
			a.StatusText(text)
			b.StatusText(text)
		},
		Message: func(info MessageInfo) {
			a.Message(info)
			b.Message(info)
		},
		OutputLine: func(info OutputLineInfo) {
			a.OutputLine(info)
			b.OutputLine(info)
		},
	}
}

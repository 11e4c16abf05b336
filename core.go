// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package structviz

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/crlib/crtime"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/structviz/internal/graph"
	"github.com/cockroachdb/structviz/internal/invariants"
)

// Status texts reported at phase boundaries.
const (
	StatusCentering = "centering"
	StatusAnimating = "animating"
)

// variant is implemented by every structure on top of core.
type variant interface {
	// setup creates the sentinel nodes or slots in the empty model.
	setup(cfg Config)
	// clear resets the variant state (active node, cursors, tree table).
	clear()
	// randomConfig returns the configuration of a random instance.
	randomConfig(rng *rand.Rand) Config
	// populate fills an initialized structure without animation.
	populate(rng *rand.Rand)
	// redraw writes derived state (classes, markers, layout) into the model.
	redraw()
	// setOpacity applies the end value of an opacity transition to the
	// variant's own tables. It returns false if the model should be updated
	// instead.
	setOpacity(e graph.Element, to float64) bool
	// check verifies the structural invariants that hold at phase boundaries.
	check() error
}

type opacityChange struct {
	elem graph.Element
	to   float64
}

// core implements the lifecycle, the animation-phase protocol and the element
// helpers shared by all structures.
type core struct {
	kind    Kind
	opts    *Options
	variant variant
	model   graph.Model
	rng     *rand.Rand

	initialized bool
	// animating is the mutual-exclusion gate of operations. Calls that find it
	// set are dropped.
	animating atomic.Bool
	// pending holds the opacity transitions started since the last wait.
	pending []opacityChange

	op struct {
		name     string
		start    crtime.Mono
		animTime time.Duration
	}
	metrics metrics
}

func (c *core) initCore(kind Kind, opts *Options, v variant) {
	opts = opts.Clone()
	opts.EnsureDefaults()
	c.kind = kind
	c.opts = opts
	c.variant = v
	c.rng = rand.New(rand.NewPCG(opts.RandomSeed, uint64(kind)))
}

// Kind implements Structure.
func (c *core) Kind() Kind { return c.kind }

// Initialized implements Structure.
func (c *core) Initialized() bool { return c.initialized }

// Animating implements Structure.
func (c *core) Animating() bool { return c.animating.Load() }

// Snapshot implements Structure.
func (c *core) Snapshot() *Model { return c.model.Clone() }

// Metrics implements Structure.
func (c *core) Metrics() Metrics { return c.metrics.snapshot() }

// Options returns the options of the structure, with defaults applied.
func (c *core) Options() *Options { return c.opts }

// Init implements Structure.
func (c *core) Init(cfg Config) {
	if c.initialized {
		return
	}
	c.model.Reset()
	c.pending = c.pending[:0]
	c.variant.clear()
	c.variant.setup(cfg)
	c.initialized = true
	c.opts.Renderer.Attach(c.kind.String())
	c.refresh()
	c.center()
}

// Reset implements Structure.
func (c *core) Reset() {
	if c.animating.Load() {
		return
	}
	c.model.Reset()
	c.pending = c.pending[:0]
	c.variant.clear()
	if c.initialized {
		c.opts.Renderer.Detach()
	}
	c.initialized = false
}

// Random implements Structure.
func (c *core) Random() {
	if c.animating.Load() {
		return
	}
	c.Reset()
	c.Init(c.variant.randomConfig(c.rng))
	c.variant.populate(c.rng)
	c.refresh()
	c.center()
	c.checkInvariants()
}

// startOp is the guard every operation starts with. It returns false (and the
// operation must return immediately) if the structure is not initialized or
// another operation is animating. Otherwise it runs the opening phase.
func (c *core) startOp(op string) bool {
	if !c.initialized || !c.animating.CompareAndSwap(false, true) {
		c.metrics.rejected.Add(1)
		return false
	}
	c.op.name = op
	c.op.start = crtime.NowMono()
	c.op.animTime = 0
	c.beforeAnimationStarts()
	return true
}

func (c *core) beforeAnimationStarts() {
	c.opts.EventListener.AnimationBegin(AnimationInfo{Structure: c.kind, Op: c.op.name})
	c.status(StatusCentering)
	c.center()
	c.wait(1)
	c.status(StatusAnimating)
}

// afterAnimationEnds runs the closing phase and clears the animating flag.
func (c *core) afterAnimationEnds() {
	c.status(StatusCentering)
	c.center()
	c.wait(1)
	c.status("")
	c.metrics.completed.Add(1)
	c.finishOp(true)
}

// afterAnimationWithoutChange clears the animating flag without a closing
// phase. Used when an operation determined that nothing needs to change.
func (c *core) afterAnimationWithoutChange() {
	c.metrics.unchanged.Add(1)
	c.finishOp(false)
}

func (c *core) finishOp(changed bool) {
	if c.opts.OperationLatency != nil {
		c.opts.OperationLatency.Observe(c.op.start.Elapsed().Seconds())
	}
	c.checkInvariants()
	info := AnimationInfo{
		Structure: c.kind,
		Op:        c.op.name,
		Changed:   changed,
		Duration:  c.op.animTime,
	}
	c.animating.Store(false)
	c.opts.EventListener.AnimationEnd(info)
}

func (c *core) checkInvariants() {
	if !invariants.Enabled {
		return
	}
	// Large models are only checked on a sample of operations.
	if c.model.NumNodes() > 64 && !invariants.Sometimes(10) {
		return
	}
	if err := c.variant.check(); err != nil {
		panic(errors.WithAssertionFailure(errors.Wrapf(err, "%s after %s", c.kind, errors.Safe(c.op.name))))
	}
}

// fail reports an inapplicable operation and ends it without change.
func (c *core) fail(key, reason string) {
	c.report(key, Param{Name: ParamReason, Value: reason})
	c.afterAnimationWithoutChange()
}

// wait is the only suspension point of an operation. It sleeps for
// multiplier base delay units and then writes the end value of every opacity
// transition started since the previous wait back into the model.
func (c *core) wait(multiplier float64) {
	d := time.Duration(float64(c.opts.AnimationSpeed) * multiplier)
	c.opts.Clock.Sleep(d)
	c.metrics.waits.Add(1)
	c.metrics.animationTime.Add(int64(d))
	c.op.animTime += d
	for _, p := range c.pending {
		if c.variant.setOpacity(p.elem, p.to) {
			continue
		}
		if p.elem.IsEdge {
			if e := c.model.Edge(p.elem.Source, p.elem.Target); e != nil {
				e.Opacity = p.to
			}
		} else if n := c.model.Node(p.elem.Node); n != nil {
			n.Opacity = p.to
		}
	}
	if len(c.pending) > 0 {
		c.model.Touch()
	}
	c.pending = c.pending[:0]
}

// refresh lets the variant update derived state and resyncs the renderer.
func (c *core) refresh() {
	c.variant.redraw()
	c.opts.Renderer.Render(c.model.Nodes(), c.model.Edges())
}

// center zooms and pans the view to the bounding box of all nodes.
func (c *core) center() {
	if c.opts.DisableCentering || c.model.NumNodes() == 0 {
		return
	}
	elems := make([]graph.Element, 0, c.model.NumNodes())
	for _, n := range c.model.Nodes() {
		elems = append(elems, graph.NodeElement(n.ID))
	}
	box := c.opts.Renderer.BoundingBox(elems)
	zoom := c.opts.MaxZoom
	if box.W > 0 {
		zoom = min(zoom, c.opts.ViewportWidth/box.W)
	}
	if box.H > 0 {
		zoom = min(zoom, c.opts.ViewportHeight/box.H)
	}
	cx, cy := box.Center()
	c.opts.Renderer.SetViewport(zoom, c.opts.ViewportWidth/2-cx*zoom, c.opts.ViewportHeight/2-cy*zoom)
}

// fade starts an opacity transition. The model is updated by the next wait.
func (c *core) fade(e graph.Element, to float64) {
	var re graph.Element
	var ok bool
	if e.IsEdge {
		re, ok = c.opts.Renderer.EdgeElement(e.Source, e.Target)
	} else {
		re, ok = c.opts.Renderer.NodeElement(e.Node)
	}
	if ok {
		c.opts.Renderer.AnimateOpacity(re, to, c.opts.AnimationSpeed)
	}
	c.pending = append(c.pending, opacityChange{elem: e, to: to})
}

func (c *core) fadeInNode(id graph.ID)     { c.fade(graph.NodeElement(id), 1) }
func (c *core) fadeOutNode(id graph.ID)    { c.fade(graph.NodeElement(id), 0) }
func (c *core) fadeInEdge(s, t graph.ID)   { c.fade(graph.EdgeElement(s, t), 1) }
func (c *core) fadeOutEdge(s, t graph.ID)  { c.fade(graph.EdgeElement(s, t), 0) }
func (c *core) fadeOutEdgeOf(e graph.Edge) { c.fadeOutEdge(e.Source, e.Target) }

func (c *core) setPos(id graph.ID, x, y float64) {
	n := c.mustNode(id)
	n.X, n.Y = x, y
	c.model.Touch()
}

func (c *core) setValue(id graph.ID, v string) {
	c.mustNode(id).Value = v
	c.model.Touch()
}

// addAndFadeIn adds nodes and edges with zero opacity, renders them, fades
// them in and waits for the transition.
func (c *core) addAndFadeIn(nodes []graph.Node, edges []graph.Edge) {
	for _, n := range nodes {
		n.Opacity = 0
		c.model.AddNode(n)
	}
	for _, e := range edges {
		e.Opacity = 0
		c.model.AddEdge(e)
	}
	c.refresh()
	for _, n := range nodes {
		c.fadeInNode(n.ID)
	}
	for _, e := range edges {
		c.fadeInEdge(e.Source, e.Target)
	}
	c.wait(1)
}

// fadeOutAndRemove fades out the given nodes and edges in one batch, waits,
// and removes them.
func (c *core) fadeOutAndRemove(nodes []graph.ID, edges []graph.Edge) {
	for _, id := range nodes {
		c.fadeOutNode(id)
	}
	for _, e := range edges {
		c.fadeOutEdgeOf(e)
	}
	c.wait(1)
	for _, e := range edges {
		c.model.RemoveEdgeExact(e.Source, e.Target, e.Class)
	}
	for _, id := range nodes {
		c.model.RemoveNode(id)
	}
	c.refresh()
}

// mustNode returns a node that exists by construction.
func (c *core) mustNode(id graph.ID) *graph.Node {
	n := c.model.Node(id)
	if n == nil && invariants.Enabled {
		panic(errors.AssertionFailedf("%s: node %s not found", c.kind, id))
	}
	return n
}

// mustEdge returns an edge that exists by construction.
func (c *core) mustEdge(source, target graph.ID) *graph.Edge {
	e := c.model.Edge(source, target)
	if e == nil && invariants.Enabled {
		panic(errors.AssertionFailedf("%s: edge %s -> %s not found", c.kind, source, target))
	}
	return e
}

func (c *core) report(key string, params ...Param) {
	c.opts.EventListener.Message(MessageInfo{Structure: c.kind, Key: key, Params: params})
}

func (c *core) output(text string, replace bool) {
	c.opts.EventListener.OutputLine(OutputLineInfo{Structure: c.kind, Text: text, Replace: replace})
}

func (c *core) status(text string) {
	c.opts.EventListener.StatusText(text)
}

package flowerclock

import (
	"fmt"
	"time"
)

// Transition names. Entrance and update transitions use different names so a
// tick never cuts a still-running entrance short.
const (
	transitionPetalUpdate   = "petal-update"
	transitionPetalCreation = "petal-creation"
	transitionPinUpdate     = "pin-update"
	transitionPinCreation   = "pin-creation"
)

// Petal moduli: the pair member at index 1 turns once per 12 units, the
// other once per 60.
const (
	modulusMinutes = 60
	modulusHours   = 12
)

// Angle maps value on a dial of modulus units to degrees. The result is not
// wrapped into [0, 360).
func Angle(value, modulus float64) float64 {
	return 360 * value / modulus
}

// petalModulus returns the modulus used by the petal at pair index i.
func petalModulus(i int) float64 {
	if i == 1 {
		return modulusHours
	}
	return modulusMinutes
}

// FlowerClock renders the current time as petals and pins under a mount
// node of a Scene. Construct it with New and call Update once per second;
// the scene's Advance drives the animations in between.
type FlowerClock struct {
	opts    Options
	scene   *Scene
	sampler *Sampler
	delays  *DelayScheduler

	chart  *Node
	petals *Node
	pins   *Node

	sample TimeSample
	ticks  int
}

// New builds the chart under the first node matching opts.Selector and runs
// the first render. If nothing matches, the clock stays inert: Chart returns
// nil and Update does nothing.
func New(scene *Scene, sampler *Sampler, opts Options) *FlowerClock {
	if sampler == nil {
		sampler = NewSampler(nil)
	}
	c := &FlowerClock{
		opts:    opts,
		scene:   scene,
		sampler: sampler,
		delays:  NewDelaySchedulerFor(opts),
	}
	c.updateData()
	c.initChart()
	return c
}

// Options returns the configuration the clock was built with.
func (c *FlowerClock) Options() Options {
	return c.opts
}

// Chart returns the <svg> node, or nil when the selector matched nothing.
func (c *FlowerClock) Chart() *Node {
	return c.chart
}

// Petals returns the petal shapes in display order.
func (c *FlowerClock) Petals() []*Node {
	if c.petals == nil {
		return nil
	}
	return c.petals.SelectAll(".petal")
}

// Pins returns the pin groups in [hour, minute, second] order.
func (c *FlowerClock) Pins() []*Node {
	if c.pins == nil {
		return nil
	}
	return c.pins.SelectAll(".pin")
}

// Sample returns the time sample of the last render.
func (c *FlowerClock) Sample() TimeSample {
	return c.sample
}

// Delays returns the entrance delay scheduler.
func (c *FlowerClock) Delays() *DelayScheduler {
	return c.delays
}

// Update samples the clock and moves every shape to its new angle.
func (c *FlowerClock) Update() {
	if c.chart == nil {
		return
	}
	c.updateData()
	c.managePetals()
	c.managePins()
	c.ticks++
	c.scene.debugf("tick %d %02d:%02d:%02d | transitions: %d",
		c.ticks, c.sample.Hour, c.sample.Minute, c.sample.Second, len(c.scene.transitions))
}

func (c *FlowerClock) updateData() {
	c.sample = c.sampler.Sample()
}

// initChart replaces any previous chart under the mount node with a fresh
// <svg> holding the petal and pin groups.
func (c *FlowerClock) initChart() {
	o := c.opts
	container := c.scene.Select(o.Selector)
	if container == nil {
		c.scene.debugf("no node matches %q; nothing rendered", o.Selector)
		return
	}

	for _, old := range container.SelectAll("svg") {
		old.Dispose()
	}

	chart := NewSVG("flower-clock", o.ViewBoxSize())
	chart.Style = fmt.Sprintf("transition-duration: %dms;", o.Duration/time.Millisecond)
	container.AddChild(chart)
	c.chart = chart

	c.initPetals()
	c.initPins()

	// Entry rotation starts one frame after the shapes exist.
	c.scene.Defer(func() {
		if !chart.IsDisposed() {
			chart.AddClass("enter")
		}
	})
	c.scene.debugf("chart mounted on %q (viewBox %v)", o.Selector, o.ViewBoxSize())
}

func (c *FlowerClock) initPetals() {
	o := c.opts
	c.petals = NewGroup("petals").AddClass("petals")
	c.petals.SetPosition(o.Radius+o.Padding-o.PetalWidth/2, o.Radius+o.Padding)
	c.chart.AddChild(c.petals)
	c.managePetals()
}

func (c *FlowerClock) initPins() {
	o := c.opts
	c.pins = NewGroup("pins").AddClass("pins")
	c.pins.SetPosition(o.Radius+o.Padding, o.Radius+o.Padding)
	c.chart.AddChild(c.pins)
	c.managePins()
}

func (c *FlowerClock) managePetals() {
	o := c.opts
	easing := o.EasingFunc()

	join(c.petals, ".petal", c.sample.PetalData(),
		func(n *Node, d float64, i int) {
			c.scene.Transition(n, transitionPetalUpdate).
				Duration(o.ReducedDuration()).
				Ease(easing).
				Attr(AttrRotation, Angle(d, petalModulus(i)))
		},
		func(d float64, i int) *Node {
			petal := NewRect(fmt.Sprintf("petal-%d", i), o.PetalWidth, 0).AddClass("petal")
			petal.RX = o.PetalWidth / 2
			petal.RY = o.PetalWidth / 2
			petal.SetOrigin(o.PetalWidth/2, 0)
			petal.SetOffset(0, -o.PetalWidth/2)
			petal.SetRotation(Angle(d, petalModulus(i)))
			c.petals.AddChild(petal)

			c.scene.Transition(petal, transitionPetalCreation).
				Duration(o.Duration).
				Delay(c.delays.Next()).
				Ease(easing).
				Attr(AttrHeight, o.PetalLength(i))
			return petal
		},
	)
}

func (c *FlowerClock) managePins() {
	o := c.opts
	easing := o.EasingFunc()

	join(c.pins, ".pin", c.sample.PinData(),
		func(n *Node, d float64, _ int) {
			c.scene.Transition(n, transitionPinUpdate).
				Duration(o.ReducedDuration()).
				Ease(easing).
				Attr(AttrRotation, Angle(d, modulusMinutes))
		},
		func(d float64, i int) *Node {
			pin := NewGroup(fmt.Sprintf("pin-%d", i)).AddClass("pin")
			pin.SetRotation(Angle(d, modulusMinutes))
			c.pins.AddChild(pin)

			line := NewLine("pin-line", 0, 0, 0, 0).AddClass("pin-line")
			head := NewCircle("pin-head", 0, 0, o.PinHeadRadius).AddClass("pin-head")
			pin.AddChild(line)
			pin.AddChild(head)

			// Line and head of one pin enter together.
			delay := c.delays.Next()
			c.scene.Transition(line, transitionPinCreation).
				Duration(o.Duration).
				Delay(delay).
				Ease(easing).
				Attr(AttrY2, o.PinLength())
			c.scene.Transition(head, transitionPinCreation).
				Duration(o.Duration).
				Delay(delay).
				Ease(easing).
				Attr(AttrCY, o.PinLength())
			return pin
		},
	)
}

// Package flowerclock renders an analog "flower clock": the current time
// drawn as two petals and three pins that turn to their angles once per
// second.
//
// # Quick start
//
// Mount the clock on a node of a [Scene], wrap it in a [Driver] and hand
// the driver to a host:
//
//	scene := flowerclock.NewScene()
//	scene.Root().AddChild(flowerclock.NewGroup("page").AddClass("flower-clock"))
//	clock := flowerclock.New(scene, flowerclock.NewSampler(nil), flowerclock.DefaultOptions())
//	driver := flowerclock.NewDriver(scene, clock)
//	err := flowerclock.Run(driver, flowerclock.RunConfig{Width: 800, Height: 800})
//
// [Run] opens an ebiten window, [RunTerminal] draws with tcell, and
// [WriteSVG] and [Snapshot] produce static output.
//
// # Scene graph
//
// Every visual element is a [Node] standing for one SVG element (svg, g,
// rect, line, circle). Nodes carry classes and are found with simple
// selectors (".class", "#name", "tag"). A node's transform is
// translate(X, Y) rotate(Rotation, OriginX OriginY) translate(OffsetX,
// OffsetY), with rotations in degrees.
//
// # Transitions
//
// [Scene.Transition] animates node attributes with a delay, a duration and
// a gween easing. Transitions are named per node; a starting transition
// interrupts older ones with the same node and name.
//
// # Clock
//
// On the first render [FlowerClock] creates the petals ([minute, second],
// moduli 60 and 12) and pins ([hour, minute, second], modulus 60) at their
// angles and grows them in with staggered delays from a [DelayScheduler].
// Every later [FlowerClock.Update] only rotates the existing shapes.
package flowerclock

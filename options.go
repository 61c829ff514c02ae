package flowerclock

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// ErrInvalidOptions is wrapped by every Options.Validate failure.
var ErrInvalidOptions = errors.New("invalid options")

// Default viewport the default radius is derived from.
const (
	DefaultViewportWidth  = 1000
	DefaultViewportHeight = 1000
)

// Options configures a FlowerClock. The renderer copies it at construction
// and never changes it afterwards.
type Options struct {
	// Selector picks the mount node under the scene root.
	Selector string `yaml:"selector"`

	// Radius is the length of the longest shape; PinHeadRadius*2 is the
	// shortest.
	Radius        float64 `yaml:"radius"`
	PinHeadRadius float64 `yaml:"pin_head_radius"`
	Padding       float64 `yaml:"padding"`
	PetalWidth    float64 `yaml:"petal_width"`

	// Duration is the entrance animation length; updates run for a third of it.
	Duration time.Duration `yaml:"duration"`

	// EntranceDelay is the first entrance delay handed out.
	EntranceDelay time.Duration `yaml:"entrance_delay"`

	// Interval is the time between two clock updates.
	Interval time.Duration `yaml:"interval"`

	// Overshoot shapes the default back-out easing. Ignored when Easing is set.
	Overshoot float64 `yaml:"overshoot"`

	Easing ease.TweenFunc `yaml:"-"`
}

// DefaultOptions returns the stock configuration for the default viewport.
func DefaultOptions() Options {
	return Options{
		Selector:      ".flower-clock",
		Radius:        RadiusFor(DefaultViewportWidth, DefaultViewportHeight),
		PinHeadRadius: 3,
		Padding:       10,
		PetalWidth:    15,
		Duration:      1250 * time.Millisecond,
		EntranceDelay: 0,
		Interval:      time.Second,
		Overshoot:     DefaultOvershoot,
	}
}

// RadiusFor returns the radius that fits a width x height viewport.
func RadiusFor(width, height int) float64 {
	return float64(min(width, height)) * 0.4
}

// ReducedDuration is the length of the per-tick update transition.
func (o Options) ReducedDuration() time.Duration {
	return o.Duration / 3
}

// DelayIncrement is the step between two entrance delays.
func (o Options) DelayIncrement() time.Duration {
	return o.Duration * 6 / 10 / SampleLength
}

// EasingFunc returns Easing, or a back-out with Overshoot when unset.
func (o Options) EasingFunc() ease.TweenFunc {
	if o.Easing != nil {
		return o.Easing
	}
	return BackOut(o.Overshoot)
}

// ViewBoxSize is the side of the square SVG viewBox.
func (o Options) ViewBoxSize() float64 {
	return (o.Radius + o.Padding) * 2
}

// PetalLength returns the length of the petal at index i of the pair.
func (o Options) PetalLength(i int) float64 {
	return (o.Radius - o.PetalWidth) / float64(i+1)
}

// PinLength returns the length shared by every pin.
func (o Options) PinLength() float64 {
	return o.Radius - o.PinHeadRadius*2
}

// Validate reports the first nonsensical setting.
func (o Options) Validate() error {
	switch {
	case o.Selector == "":
		return fmt.Errorf("%w: empty selector", ErrInvalidOptions)
	case o.Radius <= 0:
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidOptions, o.Radius)
	case o.PinHeadRadius < 0:
		return fmt.Errorf("%w: pin head radius %v is negative", ErrInvalidOptions, o.PinHeadRadius)
	case o.PetalWidth <= 0 || o.PetalWidth >= o.Radius:
		return fmt.Errorf("%w: petal width %v must be in (0, radius)", ErrInvalidOptions, o.PetalWidth)
	case o.PinHeadRadius*2 >= o.Radius:
		return fmt.Errorf("%w: pin head radius %v leaves no room for the pin", ErrInvalidOptions, o.PinHeadRadius)
	case o.Padding < 0:
		return fmt.Errorf("%w: padding %v is negative", ErrInvalidOptions, o.Padding)
	case o.Duration < 0 || o.EntranceDelay < 0:
		return fmt.Errorf("%w: negative duration", ErrInvalidOptions)
	case o.Interval <= 0:
		return fmt.Errorf("%w: interval %v must be positive", ErrInvalidOptions, o.Interval)
	}
	return nil
}

// LoadOptions overlays the YAML file at path onto base. A missing file is
// not an error and returns base unchanged.
func LoadOptions(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseOptions(data, base)
}

// ParseOptions overlays YAML data onto base and validates the result.
// Keys absent from data keep their base values.
func ParseOptions(data []byte, base Options) (Options, error) {
	opts := base
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return base, fmt.Errorf("failed to parse options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return base, err
	}
	return opts, nil
}

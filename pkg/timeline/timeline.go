// Package timeline loads animation descriptors from YAML files, so
// motion design can live next to assets instead of in code.
//
// A timeline file names a set of descriptors:
//
//	requires: v0.2.0
//	animations:
//	  - name: fade-in
//	    duration: 300
//	    from: 0
//	    to: 255
//	    path: ease-out
//	  - name: pulse
//	    duration: 600
//	    path: cubic-bezier(0.4, 0, 0.2, 1)
//	    repeat: infinite
//	    playback:
//	      duration: 600
//
// Build turns an entry into an [anim.Animation] descriptor; the caller
// fills in Target and Exec and hands it to a registry.
package timeline

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/anim"
	"github.com/go-drift/motion/pkg/errors"
)

// File is a parsed timeline: a set of named animation descriptors.
type File struct {
	// Requires is the minimum engine version the timeline needs,
	// checked against [anim.Version]. Optional.
	Requires string `yaml:"requires,omitempty"`

	// Animations are the descriptors, in file order.
	Animations []Spec `yaml:"animations"`
}

// Spec is one named descriptor. Omitted fields keep the engine defaults
// from [anim.New].
type Spec struct {
	Name         string       `yaml:"name"`
	Duration     int32        `yaml:"duration,omitempty"`
	From         *int32       `yaml:"from,omitempty"`
	To           *int32       `yaml:"to,omitempty"`
	Path         string       `yaml:"path,omitempty"`
	Delay        int32        `yaml:"delay,omitempty"`
	Repeat       RepeatCount  `yaml:"repeat,omitempty"`
	RepeatDelay  int32        `yaml:"repeat_delay,omitempty"`
	Playback     PlaybackSpec `yaml:"playback,omitempty"`
	ApplyOnStart *bool        `yaml:"apply_on_start,omitempty"`
}

// PlaybackSpec configures the reverse leg.
type PlaybackSpec struct {
	Duration int32 `yaml:"duration,omitempty"`
	Delay    int32 `yaml:"delay,omitempty"`
}

// RepeatCount is a repeat count that also accepts the string "infinite".
type RepeatCount uint32

// UnmarshalYAML decodes an integer or the string "infinite".
func (rc *RepeatCount) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "infinite" {
		*rc = RepeatCount(anim.RepeatInfinite)
		return nil
	}
	n, err := strconv.ParseUint(node.Value, 10, 32)
	if err != nil {
		return &errors.ParseError{Field: "repeat", Got: node.Value}
	}
	*rc = RepeatCount(n)
	return nil
}

// Parse decodes and validates a timeline document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &errors.Error{Op: "timeline.Parse", Kind: errors.KindParsing, Err: err}
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses a timeline file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: "timeline.Load", Kind: errors.KindConfig, Err: err}
	}
	return Parse(data)
}

func (f *File) validate() error {
	if f.Requires != "" {
		req := f.Requires
		if !strings.HasPrefix(req, "v") {
			req = "v" + req
		}
		if !semver.IsValid(req) {
			return &errors.Error{
				Op:   "timeline.Parse",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("invalid requires version %q", f.Requires),
			}
		}
		if semver.Compare(anim.Version, req) < 0 {
			return &errors.Error{
				Op:   "timeline.Parse",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("timeline requires engine %s, running %s", req, anim.Version),
			}
		}
	}

	seen := make(map[string]bool, len(f.Animations))
	for i := range f.Animations {
		s := &f.Animations[i]
		if s.Name == "" {
			return &errors.Error{
				Op:   "timeline.Parse",
				Kind: errors.KindParsing,
				Err:  fmt.Errorf("animation %d has no name", i),
			}
		}
		if seen[s.Name] {
			return &errors.Error{
				Op:   "timeline.Parse",
				Kind: errors.KindParsing,
				Err:  fmt.Errorf("duplicate animation name %q", s.Name),
			}
		}
		seen[s.Name] = true
		if s.Duration < 0 {
			return &errors.Error{
				Op:   "timeline.Parse",
				Kind: errors.KindParsing,
				Err:  fmt.Errorf("animation %q has negative duration", s.Name),
			}
		}
		if s.Path != "" {
			if _, err := ParsePath(s.Path); err != nil {
				return err
			}
		}
	}
	return nil
}

// Lookup returns the named descriptor, or nil.
func (f *File) Lookup(name string) *Spec {
	for i := range f.Animations {
		if f.Animations[i].Name == name {
			return &f.Animations[i]
		}
	}
	return nil
}

// Build returns the named descriptor as an [anim.Animation] ready for
// the caller to attach Target and Exec.
func (f *File) Build(name string) (anim.Animation, error) {
	s := f.Lookup(name)
	if s == nil {
		return anim.Animation{}, &errors.Error{
			Op:   "timeline.Build",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unknown animation %q", name),
		}
	}
	return s.Build()
}

// Build converts the spec into an [anim.Animation] descriptor.
func (s *Spec) Build() (anim.Animation, error) {
	a := anim.New()
	if s.Duration > 0 {
		a.Duration = s.Duration
	}
	if s.From != nil {
		a.StartValue = *s.From
	}
	if s.To != nil {
		a.EndValue = *s.To
	}
	if s.Path != "" {
		p, err := ParsePath(s.Path)
		if err != nil {
			return anim.Animation{}, err
		}
		a.Path = p
	}
	a.Delay = s.Delay
	if s.Repeat != 0 {
		a.RepeatCount = uint32(s.Repeat)
	}
	a.RepeatDelay = s.RepeatDelay
	a.PlaybackDuration = s.Playback.Duration
	a.PlaybackDelay = s.Playback.Delay
	if s.ApplyOnStart != nil {
		a.ApplyOnStart = *s.ApplyOnStart
	}
	return a, nil
}

// ParsePath parses a path name as used in timeline files: one of
// "linear", "ease-in", "ease-out", "ease-in-out", "overshoot", "bounce",
// "step", or "cubic-bezier(x1, y1, x2, y2)" with CSS-style control
// points in [0, 1].
func ParsePath(s string) (anim.Path, error) {
	switch strings.TrimSpace(s) {
	case "linear":
		return anim.Linear(), nil
	case "ease-in":
		return anim.EaseIn(), nil
	case "ease-out":
		return anim.EaseOut(), nil
	case "ease-in-out":
		return anim.EaseInOut(), nil
	case "overshoot":
		return anim.Overshoot(), nil
	case "bounce":
		return anim.Bounce(), nil
	case "step":
		return anim.Step(), nil
	}

	if inner, ok := strings.CutPrefix(strings.TrimSpace(s), "cubic-bezier("); ok {
		if inner, ok = strings.CutSuffix(inner, ")"); ok {
			parts := strings.Split(inner, ",")
			if len(parts) == 4 {
				var pts [4]int32
				for i, p := range parts {
					v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
					if err != nil {
						return anim.Path{}, &errors.Error{
							Op:   "timeline.ParsePath",
							Kind: errors.KindParsing,
							Err:  &errors.ParseError{Field: "path", Got: s},
						}
					}
					// 1/1024 fixed-point units, truncated like the
					// built-in curve constants.
					pts[i] = int32(v * 1024)
				}
				return anim.CubicBezier(pts[0], pts[1], pts[2], pts[3]), nil
			}
		}
	}

	return anim.Path{}, &errors.Error{
		Op:   "timeline.ParsePath",
		Kind: errors.KindParsing,
		Err:  &errors.ParseError{Field: "path", Got: s},
	}
}

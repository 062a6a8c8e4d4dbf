package tour

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/revealtour/internal/errors"
)

// Format is a tour file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for file extensions other than .yaml,
// .yml and .toml.
var ErrUnsupportedFormat = errors.New("unsupported tour format")

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// fileTour mirrors the on-disk layout shared by both encodings.
//
//	name: intro
//	steps:
//	  - wait: 1s
//	  - play: {animator: arrow, duration: 1s, hold: 3s, detached: true}
//	  - parallel:
//	      - {animator: help, duration: 1s, hold: 7s}
//	  - effect: begin-hover-pulse
//	    controls: [back, help]
//	  - effect: focus-input
//	    input: tutorialInput
type fileTour struct {
	Name  string     `yaml:"name" toml:"name"`
	Steps []fileStep `yaml:"steps" toml:"steps"`
}

type fileStep struct {
	Play     *fileFade  `yaml:"play" toml:"play"`
	Parallel []fileFade `yaml:"parallel" toml:"parallel"`
	Wait     *string    `yaml:"wait" toml:"wait"`
	Effect   string     `yaml:"effect" toml:"effect"`
	Controls []string   `yaml:"controls" toml:"controls"`
	Input    string     `yaml:"input" toml:"input"`
}

type fileFade struct {
	Animator string `yaml:"animator" toml:"animator"`
	Duration string `yaml:"duration" toml:"duration"`
	Hold     string `yaml:"hold" toml:"hold"`
	Detached bool   `yaml:"detached" toml:"detached"`
}

// LoadFile reads and validates a tour file. Errors are wrapped in
// apperrors.TourError naming the path.
func LoadFile(path string) (*Tour, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, apperrors.TourError{Source: path, Cause: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.TourError{Source: path, Cause: err}
	}
	return Parse(bytes.NewReader(data), format, path)
}

// Parse decodes a tour from r. source names the input in errors.
func Parse(r io.Reader, format Format, source string) (*Tour, error) {
	var raw fileTour
	if err := decode(r, format, &raw); err != nil {
		return nil, apperrors.TourError{Source: source, Cause: err}
	}

	steps := make([]Step, 0, len(raw.Steps))
	for i, fs := range raw.Steps {
		s, err := fs.toStep()
		if err != nil {
			return nil, apperrors.TourError{Source: source, Cause: apperrors.ValidationError{
				Field:   fmt.Sprintf("steps[%d]", i),
				Message: err.Error(),
			}}
		}
		steps = append(steps, s)
	}

	name := raw.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}
	t, err := New(name, steps...)
	if err != nil {
		return nil, apperrors.TourError{Source: source, Cause: err}
	}
	return t, nil
}

func decode(r io.Reader, format Format, out *fileTour) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode yaml: %w", err)
		}
		return nil
	case FormatTOML:
		meta, err := toml.NewDecoder(r).Decode(out)
		if err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (fs fileStep) toStep() (Step, error) {
	set := 0
	if fs.Play != nil {
		set++
	}
	if fs.Parallel != nil {
		set++
	}
	if fs.Wait != nil {
		set++
	}
	if fs.Effect != "" {
		set++
	}
	if set != 1 {
		return Step{}, errors.New("exactly one of play, parallel, wait or effect must be set")
	}

	switch {
	case fs.Play != nil:
		f, err := fs.Play.toFade()
		if err != nil {
			return Step{}, err
		}
		if fs.Play.Detached {
			return PlayDetached(f.Animator, f.Duration, f.Hold), nil
		}
		return PlaySingle(f.Animator, f.Duration, f.Hold), nil
	case fs.Parallel != nil:
		fades := make([]Fade, len(fs.Parallel))
		for i, ff := range fs.Parallel {
			f, err := ff.toFade()
			if err != nil {
				return Step{}, fmt.Errorf("parallel[%d]: %w", i, err)
			}
			fades[i] = f
		}
		return PlayParallel(fades...), nil
	case fs.Wait != nil:
		d, err := parseDuration("wait", *fs.Wait)
		if err != nil {
			return Step{}, err
		}
		return Wait(d), nil
	default:
		kind, ok := ParseEffectKind(fs.Effect)
		if !ok {
			return Step{}, fmt.Errorf("unknown effect %q", fs.Effect)
		}
		controls := make([]ControlID, len(fs.Controls))
		for i, c := range fs.Controls {
			controls[i] = ControlID(c)
		}
		return effect(kind, controls, InputID(fs.Input)), nil
	}
}

func (ff fileFade) toFade() (Fade, error) {
	d, err := parseDuration("duration", ff.Duration)
	if err != nil {
		return Fade{}, err
	}
	h, err := parseDuration("hold", ff.Hold)
	if err != nil {
		return Fade{}, err
	}
	return Fade{Animator: AnimatorID(ff.Animator), Duration: d, Hold: h}, nil
}

// parseDuration accepts Go duration strings and bare numbers of seconds.
// An empty value means zero.
func parseDuration(field, v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return 0, fmt.Errorf("%s: invalid duration %q", field, v)
}

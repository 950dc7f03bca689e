// SPDX-License-Identifier: EPL-2.0

package soft

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ik5/foxaudio/native"
	"gopkg.in/yaml.v3"
)

// Manifest is the bank format of the software engine. Real banks are
// binary FMOD Studio builds; the software engine reads a YAML description
// of the same objects instead:
//
//	path: bank:/Master
//	parameters:
//	  - {name: TimeOfDay, min: 0, max: 24, default: 12}
//	buses:
//	  - path: bus:/SFX
//	vcas:
//	  - path: vca:/Effects
//	events:
//	  - path: event:/UI/Cancel
//	    length_ms: 400
//	    oneshot: true
//	    bus: bus:/SFX
//	  - path: event:/Ambience/Wind
//	    id: "{2a3e48e6-94fc-4363-9468-33d2dd4d7b00}"
//	    3d: true
//	    sustain: true
//	    parameters:
//	      - {name: Intensity, min: 0, max: 1, default: 0.5}
//
// Objects without an id get a stable one derived from their path, see
// PathID.
type Manifest struct {
	Path       string              `yaml:"path"`
	ID         string              `yaml:"id,omitempty"`
	Parameters []ParameterManifest `yaml:"parameters,omitempty"`
	Buses      []ObjectManifest    `yaml:"buses,omitempty"`
	VCAs       []ObjectManifest    `yaml:"vcas,omitempty"`
	Events     []EventManifest     `yaml:"events,omitempty"`
}

type ObjectManifest struct {
	Path string `yaml:"path"`
	ID   string `yaml:"id,omitempty"`
}

type ParameterManifest struct {
	Name    string  `yaml:"name"`
	Min     float32 `yaml:"min"`
	Max     float32 `yaml:"max"`
	Default float32 `yaml:"default"`
}

type EventManifest struct {
	Path       string              `yaml:"path"`
	ID         string              `yaml:"id,omitempty"`
	LengthMS   int                 `yaml:"length_ms,omitempty"`
	Oneshot    bool                `yaml:"oneshot,omitempty"`
	Is3D       bool                `yaml:"3d,omitempty"`
	Snapshot   bool                `yaml:"snapshot,omitempty"`
	Sustain    bool                `yaml:"sustain,omitempty"`
	Bus        string              `yaml:"bus,omitempty"`
	Parameters []ParameterManifest `yaml:"parameters,omitempty"`
}

var errManifest = errors.New("invalid bank manifest")

// PathID is the GUID given to manifest objects that do not declare one.
func PathID(path string) native.GUID {
	return native.GUIDFromUUID(uuid.NewSHA1(uuid.NameSpaceURL, []byte(path)))
}

// ParseManifest decodes and validates a bank manifest. Unknown keys are
// rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", errManifest, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Marshal encodes m as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

func (m *Manifest) validate() error {
	check := func(kind, prefix, path, id string) error {
		if !strings.HasPrefix(path, prefix) {
			return fmt.Errorf("%w: %s path %q", errManifest, kind, path)
		}
		if id != "" {
			if _, err := native.ParseGUID(id); err != nil {
				return fmt.Errorf("%w: %s %q id: %w", errManifest, kind, path, err)
			}
		}
		return nil
	}

	if err := check("bank", "bank:/", m.Path, m.ID); err != nil {
		return err
	}
	for _, b := range m.Buses {
		if err := check("bus", "bus:/", b.Path, b.ID); err != nil {
			return err
		}
	}
	for _, v := range m.VCAs {
		if err := check("vca", "vca:/", v.Path, v.ID); err != nil {
			return err
		}
	}
	for _, ev := range m.Events {
		if err := check("event", "event:/", ev.Path, ev.ID); err != nil {
			return err
		}
		if ev.LengthMS < 0 {
			return fmt.Errorf("%w: event %q length %d", errManifest, ev.Path, ev.LengthMS)
		}
		if ev.Bus != "" && !strings.HasPrefix(ev.Bus, "bus:/") {
			return fmt.Errorf("%w: event %q bus %q", errManifest, ev.Path, ev.Bus)
		}
		if err := validateParameters(ev.Parameters); err != nil {
			return fmt.Errorf("event %q: %w", ev.Path, err)
		}
	}

	return validateParameters(m.Parameters)
}

func validateParameters(params []ParameterManifest) error {
	for _, p := range params {
		if p.Name == "" {
			return fmt.Errorf("%w: unnamed parameter", errManifest)
		}
		if p.Max < p.Min || p.Default < p.Min || p.Default > p.Max {
			return fmt.Errorf("%w: parameter %q range [%v, %v] default %v", errManifest, p.Name, p.Min, p.Max, p.Default)
		}
	}

	return nil
}

func objectID(path, id string) native.GUID {
	if id == "" {
		return PathID(path)
	}

	g, _ := native.ParseGUID(id)
	return g
}

func (p ParameterManifest) description() native.ParameterDescription {
	return native.ParameterDescription{
		Name:    p.Name,
		Minimum: p.Min,
		Maximum: p.Max,
		Default: p.Default,
	}
}

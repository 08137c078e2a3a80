package regx

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named alignment recipe.
type Preset struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Pattern     string          `yaml:"pattern"`
	Engine      Engine          `yaml:"engine,omitempty"`
	TabWidth    int             `yaml:"tabWidth,omitempty"`
	Groups      []GroupSettings `yaml:"groups"`
}

// Compile compiles the preset's pattern and checks that there are
// settings for each capture group.
func (p *Preset) Compile(opts ...CompileOption) (Pattern, error) {
	pat, err := Compile(p.Pattern, p.Engine, opts...)
	if err != nil {
		return nil, fmt.Errorf("preset '%s': %w", p.Name, err)
	}
	if n := pat.NumSubexp(); len(p.Groups) < n {
		return nil, fmt.Errorf("preset '%s': %w", p.Name,
			&SettingsError{Groups: n, Settings: len(p.Groups)},
		)
	}
	return pat, nil
}

// Regularize aligns text with the preset's pattern, settings and tab width.
func (p *Preset) Regularize(text string) (string, error) {
	pat, err := p.Compile()
	if err != nil {
		return "", err
	}
	return New(p.TabWidth).Regularize(text, p.Groups, pat)
}

// Presets is an ordered set of presets with unique names.
type Presets struct {
	list []Preset
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

//go:embed presets.yaml
var builtinPresets []byte

// DefaultPresets returns the built-in presets.
func DefaultPresets() *Presets {
	ps, err := parsePresets(builtinPresets)
	if err != nil {
		panic(fmt.Errorf("built-in presets: %w", err))
	}
	return ps
}

func ReadPresets(r io.Reader) (*Presets, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parsePresets(data)
}

// LoadPresets reads the presets file. A missing file yields an empty set.
func LoadPresets(file string) (*Presets, error) {
	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return new(Presets), nil
	case err != nil:
		return nil, err
	}
	ps, err := parsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return ps, nil
}

func parsePresets(data []byte) (*Presets, error) {
	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, err
	}
	ps := new(Presets)
	for _, p := range pf.Presets {
		switch {
		case p.Name == "":
			return nil, errors.New("preset without name")
		case p.Pattern == "":
			return nil, fmt.Errorf("preset '%s' has no pattern", p.Name)
		}
		var err error
		if p.Engine, err = ParseEngine(string(p.Engine)); err != nil {
			return nil, fmt.Errorf("preset '%s': %w", p.Name, err)
		}
		ps.Put(p)
	}
	return ps, nil
}

// Put adds p or replaces the preset with the same name.
func (ps *Presets) Put(p Preset) {
	for i := range ps.list {
		if ps.list[i].Name == p.Name {
			ps.list[i] = p
			return
		}
	}
	ps.list = append(ps.list, p)
}

// Merge puts all presets of other into ps.
func (ps *Presets) Merge(other *Presets) {
	if other == nil {
		return
	}
	for _, p := range other.list {
		ps.Put(p)
	}
}

func (ps *Presets) Get(name string) (Preset, bool) {
	for _, p := range ps.list {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

func (ps *Presets) Len() int { return len(ps.list) }

func (ps *Presets) All() []Preset { return ps.list }

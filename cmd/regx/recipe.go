package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/fractalqb/regx"
)

// recipe collects the flags that select pattern, group settings and tab
// width. Explicit flags override the values of a preset.
type recipe struct {
	preset   string
	pattern  string
	engine   regx.Engine
	groups   []string
	tabWidth int
}

func (rc *recipe) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&rc.preset, "preset", "p", "",
		"Use a named preset, see 'regx presets'")
	fs.StringVarP(&rc.pattern, "pattern", "e", "",
		"Set the regular expression whose capture groups define the columns")
	fs.VarP(&rc.engine, "engine", "E",
		"Set the pattern engine: re2 or regexp2")
	fs.StringArrayVarP(&rc.groups, "group", "g", nil,
		"Set BEFORE:AFTER padding of the next capture group (repeatable)")
	fs.IntVarP(&rc.tabWidth, "tab-width", "t", 0,
		"Round column widths up to multiples of this width (default 4)")
}

type alignment struct {
	name     string
	regx     regx.Regularizer
	settings []regx.GroupSettings
	pattern  regx.Pattern
}

func (al *alignment) Regularize(text string) (string, error) {
	return al.regx.Regularize(text, al.settings, al.pattern)
}

func (al *alignment) Parse(text string) ([]regx.ParsedLine, error) {
	return al.regx.Parse(text, al.settings, al.pattern)
}

func (rc *recipe) resolve(presetsFile string, log *slog.Logger) (*alignment, error) {
	var p regx.Preset
	if rc.preset != "" {
		ps, err := loadPresets(presetsFile)
		if err != nil {
			return nil, err
		}
		var ok bool
		if p, ok = ps.Get(rc.preset); !ok {
			return nil, fmt.Errorf("unknown preset '%s'", rc.preset)
		}
		log.Debug("using preset", "name", p.Name, "pattern", p.Pattern)
	}
	if rc.pattern != "" {
		p.Pattern = rc.pattern
		p.Engine = rc.engine
		p.Groups = nil
	} else if rc.engine != "" {
		p.Engine = rc.engine
	}
	if p.Pattern == "" {
		return nil, errors.New("no pattern, use --pattern or --preset")
	}
	if len(rc.groups) > 0 {
		p.Groups = make([]regx.GroupSettings, len(rc.groups))
		for i, g := range rc.groups {
			var err error
			if p.Groups[i], err = regx.ParseGroupSettings(g); err != nil {
				return nil, err
			}
		}
	}
	if rc.tabWidth > 0 {
		p.TabWidth = rc.tabWidth
	}
	pat, err := regx.Compile(p.Pattern, p.Engine)
	if err != nil {
		return nil, err
	}
	if p.Groups == nil {
		// Without any group flags all groups are taken as captured
		p.Groups = make([]regx.GroupSettings, pat.NumSubexp())
	} else if n := pat.NumSubexp(); len(p.Groups) < n {
		return nil, &regx.SettingsError{Groups: n, Settings: len(p.Groups)}
	}
	al := &alignment{
		name:     p.Name,
		regx:     regx.New(p.TabWidth),
		settings: p.Groups,
		pattern:  pat,
	}
	log.Debug("alignment",
		"pattern", p.Pattern,
		"engine", p.Engine.String(),
		"groups", p.Groups,
		"tab-width", al.regx.TabWidth(),
	)
	return al, nil
}

func loadPresets(file string) (*regx.Presets, error) {
	ps := regx.DefaultPresets()
	if file == "" {
		return ps, nil
	}
	ups, err := regx.LoadPresets(file)
	if err != nil {
		return nil, err
	}
	ps.Merge(ups)
	return ps, nil
}

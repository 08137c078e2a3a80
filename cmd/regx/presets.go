package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fractalqb/regx"
)

func init() {
	presetsCmd.RunE = listPresets
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets [name...]",
	Short: "List presets or show the definition of presets",
}

// The listing is aligned by regx itself
var listAlignment = alignment{
	regx:     regx.New(2),
	pattern:  regx.MustCompile(`^([^\t]*)\t([^\t]*)\t([^\t]*)\t(.*)$`, regx.EngineRE2),
	settings: []regx.GroupSettings{regx.Pad(-1, 1), regx.Pad(-1, 1), regx.Pad(-1, 1), {}},
}

func listPresets(cmd *cobra.Command, names []string) error {
	ps, err := loadPresets(rootCmd.presetsFile)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(names) > 0 {
		return showPresets(w, ps, names)
	}
	return writePresetList(w, ps)
}

func writePresetList(w io.Writer, ps *regx.Presets) error {
	var sb strings.Builder
	sb.WriteString("NAME\tENGINE\tGROUPS\tDESCRIPTION")
	for _, p := range ps.All() {
		groups := make([]string, len(p.Groups))
		for i, g := range p.Groups {
			groups[i] = g.String()
		}
		fmt.Fprintf(&sb, "\n%s\t%s\t%s\t%s",
			p.Name,
			p.Engine,
			strings.Join(groups, " "),
			p.Description,
		)
	}
	out, err := listAlignment.Regularize(sb.String())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func showPresets(w io.Writer, ps *regx.Presets, names []string) error {
	show := make([]regx.Preset, len(names))
	for i, name := range names {
		p, ok := ps.Get(name)
		if !ok {
			return fmt.Errorf("unknown preset '%s'", name)
		}
		show[i] = p
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]regx.Preset{"presets": show}); err != nil {
		return err
	}
	return enc.Close()
}

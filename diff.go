package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/pstuifzand/tui-reconcile/internal/catalog"
	"github.com/pstuifzand/tui-reconcile/internal/listdiff"
	"github.com/pstuifzand/tui-reconcile/internal/model"
	"github.com/pstuifzand/tui-reconcile/internal/picker"
)

var (
	dumpTransition bool
	diffSelected   string
	diffNight      bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Show the list transition between two catalog files",
	Long: `Builds the theme list of both catalog files and prints the deletions,
insertions and updates that turn the first list into the second.

Examples:
  tuir diff before.yaml after.yaml
  tuir diff --selected emoticon:🐥 --dump before.json after.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeDiff(cmd.OutOrStdout(), args[0], args[1], diffOptions{
			Selected: diffSelected,
			Night:    diffNight,
			Strict:   strict,
			Dump:     dumpTransition,
		})
	},
}

func init() {
	diffCmd.Flags().BoolVar(&dumpTransition, "dump", false, "Dump the raw transition")
	diffCmd.Flags().StringVar(&diffSelected, "selected", "", "Theme id selected in both lists")
	diffCmd.Flags().BoolVar(&diffNight, "night", false, "Build both lists in night mode")
}

type diffOptions struct {
	Selected string
	Night    bool
	Strict   bool
	Dump     bool
}

// loadEntries reads a catalog file with every gift page loaded
func loadEntries(path string, opts diffOptions) ([]model.Entry, error) {
	c, err := catalog.NewStore(path).Load()
	if err != nil {
		return nil, err
	}
	peers := make(map[string]model.Peer, len(c.Peers))
	for _, p := range c.Peers {
		peers[p.ID] = p
	}
	return picker.BuildEntries(picker.Input{
		Snapshot: model.Snapshot{
			Themes: c.Themes,
			Gifts:  model.GiftThemesState{Themes: c.Gifts},
			Peers:  peers,
		},
		Selected:  opts.Selected,
		NightMode: opts.Night,
	}), nil
}

func writeDiff(w io.Writer, oldPath, newPath string, opts diffOptions) error {
	previous, err := loadEntries(oldPath, opts)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", oldPath, err)
	}
	next, err := loadEntries(newPath, opts)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", newPath, err)
	}

	t, err := listdiff.Compute[string](previous, next, listdiff.Options{Strict: opts.Strict})
	if err != nil {
		return err
	}

	if opts.Dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(w, t)
		return nil
	}

	fmt.Fprintf(w, "=== Theme list diff: %s → %s ===\n\n", oldPath, newPath)
	for _, line := range listdiff.BuildLines(previous, t, model.Entry.Label) {
		for i := 0; i < line.Indent; i++ {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintln(w, line.Content)
	}
	return nil
}

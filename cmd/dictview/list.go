package main

import (
	"fmt"
	"io"

	"dictview/internal/dictionary"
	"dictview/internal/models"
	"dictview/internal/store"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const noWords = "No words found"

func newListCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the dictionaries the viewer would show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locator := store.NewLocator(env.fs, env.config.Store, env.logger)
			return newDictionaryLister(cmd.OutOrStdout()).run(locator)
		},
	}
}

type dictionaryLister struct {
	out   io.Writer
	bold  *color.Color
	faint *color.Color
	red   *color.Color
}

func newDictionaryLister(out io.Writer) *dictionaryLister {
	return &dictionaryLister{
		out:   out,
		bold:  color.New(color.Bold),
		faint: color.New(color.Faint),
		red:   color.New(color.FgRed),
	}
}

// run prints one block per dictionary. Unreadable files get a red line and
// the listing carries on.
func (l *dictionaryLister) run(locator *store.Locator) error {
	dir, sources, err := locator.Open()
	if err != nil {
		return fmt.Errorf("open dictionary store %s: %w", dir, err)
	}

	l.faint.Fprintf(l.out, "%s\n", dir)

	selection := models.NewSelection()
	selection.SetSources(sources)
	for _, src := range selection.Sources() {
		d, err := dictionary.Load(locator.Fs, src.Path)
		if err != nil {
			l.red.Fprintf(l.out, "%s: %v\n", src.Name, err)
			continue
		}
		selection.Activate(src.Name, d)

		l.bold.Fprintf(l.out, "%s", selection.Title())
		fmt.Fprintf(l.out, " (%d entries)\n", len(d.Entries))
		if len(d.Entries) == 0 {
			fmt.Fprintf(l.out, "  %s\n", noWords)
			continue
		}
		first := d.Entries[0]
		fmt.Fprintf(l.out, "  %s — %s\n", first.Word, first.Description)
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/skinuse/internal/skin"
)

// ElementsOptions holds flags for the elements command.
type ElementsOptions struct {
	*RootOptions
	Category string
}

// ElementEntry is one pattern of the rule table.
type ElementEntry struct {
	Pattern      string `json:"pattern"`
	Category     string `json:"category"`
	Template     bool   `json:"template,omitempty"`
	StillFrameOf string `json:"still_frame_of,omitempty"`
}

// NewElementsCommand creates the elements command.
func NewElementsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ElementsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "elements",
		Short: "List the skin element rule table",
		Long: `List every element pattern of the rule table in lookup order, with its
category. Templated patterns contain the {n} frame placeholder.

Examples:
  skinuse elements
  skinuse elements --category still-frame
  skinuse elements --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runElements(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "only list rules of this category")

	return cmd
}

func runElements(opts *ElementsOptions, cmd *cobra.Command) error {
	entries := listElements(skin.Default(), opts.Category)

	out := opts.formatter(cmd)
	if out.JSON() {
		return out.Success(entries)
	}

	w := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(w, "%-40s %s\n", e.Pattern, e.Category)
	}
	fmt.Fprintf(w, "\n%d patterns\n", len(entries))
	return nil
}

func listElements(table *skin.Table, category string) []ElementEntry {
	entries := []ElementEntry{}
	for _, r := range table.Rules() {
		if category != "" && !strings.EqualFold(r.Category, category) {
			continue
		}
		for _, name := range r.Names {
			entries = append(entries, ElementEntry{
				Pattern:      name,
				Category:     r.Category,
				Template:     skin.IsTemplate(name),
				StillFrameOf: r.StillFrameOf,
			})
		}
	}
	return entries
}

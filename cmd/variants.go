package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mccabemgmt/site/pkg/site"
)

var variantsCmd = &cobra.Command{
	Use:     "variants",
	Aliases: []string{"ls"},
	Short:   "List site variants and their inboxes",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tDOMAIN\tARTISTS\tBOOKINGS")
		for _, v := range site.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Key, v.Domain, v.ArtistsEmail(), v.BookingsEmail())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}

package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildServer(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Bus.Close()

		routes := s.E.Routes()
		sort.Slice(routes, func(a, b int) bool {
			if routes[a].Path != routes[b].Path {
				return routes[a].Path < routes[b].Path
			}
			return routes[a].Method < routes[b].Method
		})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH")
		for _, r := range routes {
			fmt.Fprintf(w, "%s\t%s\n", r.Method, r.Path)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

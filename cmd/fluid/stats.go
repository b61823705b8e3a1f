package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) statsCmd() *cobra.Command {
	var dictPath string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print list sizes and the number of distinct fluids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.loadDictionary(cmd.Context(), dictPath)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.stdout, d.Stats())
			return err
		},
	}
	cmd.Flags().StringVar(&dictPath, "dict", "", "compiled dictionary to use instead of the embedded one")
	return cmd
}

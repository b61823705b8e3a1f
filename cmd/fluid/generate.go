package main

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fluid/pkg/fluid"
)

var errInvalidCount = errors.New("count must be at least 1")

func (c *cli) generateCmd() *cobra.Command {
	var (
		count    int
		withUUID bool
		debug    bool
		dictPath string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random fluids, one per line",
		Example: `  fluid generate -n 3
  fluid generate --uuid
  fluid generate --debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("%w: got %d", errInvalidCount, count)
			}
			d, err := c.loadDictionary(cmd.Context(), dictPath)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(c.stdout)
			for range count {
				f := fluid.New()
				line := f.Format(d)
				if withUUID {
					line = f.UUID().String() + " " + line
				}
				if debug {
					line += " " + f.GoString()
				}
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of fluids to print")
	cmd.Flags().BoolVar(&withUUID, "uuid", false, "prefix each fluid with its UUID form")
	cmd.Flags().BoolVar(&debug, "debug", false, "append the raw 128-bit value")
	cmd.Flags().StringVar(&dictPath, "dict", "", "compiled dictionary to use instead of the embedded one")
	return cmd
}

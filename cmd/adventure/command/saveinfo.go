package command

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/spf13/cobra"
)

func newSaveInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save-info <world.json> <save.json>",
		Short: "Restore a save file onto its world and describe the player",
		Long:  `Save-info loads a world, restores a save file onto it and prints where the player stands, what they carry and how they rank.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.loadWorld(args[0])
			if err != nil {
				return err
			}
			err = w.Load(args[1])
			if err != nil {
				return err
			}

			room, err := display.DescribeRoom(w)
			if err != nil {
				return err
			}
			inv, err := display.DescribeInventory(w.Player())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, display.DescribeRank(w.Player()))
			fmt.Fprint(out, room)
			fmt.Fprint(out, inv)
			if !strings.HasSuffix(inv, "\n") {
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

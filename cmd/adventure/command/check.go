package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <world.json>",
		Short: "Load a world and summarise its rooms",
		Long:  `Check loads a world definition, reporting load errors, and prints each room with its exits and obstacles.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.loadWorld(args[0])
			if err != nil {
				return err
			}
			writeSummary(cmd.OutOrStdout(), w)
			return nil
		},
	}
}

func writeSummary(out io.Writer, w *game.World) {
	fmt.Fprintf(out, "%s (version %s): %d rooms, start %s\n", w.Name(), w.Version(), len(w.Rooms()), w.StartRoom().Id())

	for _, room := range w.Rooms() {
		fmt.Fprintf(out, "\n[%s] %s\n", room.Id(), room.Name)

		var exits []string
		for i, e := range room.Exits() {
			d := game.Direction(i)
			switch e.Kind() {
			case game.ExitOpen:
				exits = append(exits, fmt.Sprintf("%s->%s", d.Key(), e.Target()))
			case game.ExitBlocked:
				exits = append(exits, fmt.Sprintf("%s-x%s", d.Key(), e.Target()))
			}
		}
		if len(exits) == 0 {
			exits = append(exits, "none")
		}
		fmt.Fprintf(out, "  exits: %s\n", strings.Join(exits, " "))

		for _, o := range room.Obstacles() {
			state := "inactive"
			if o.IsActive() {
				state = "active"
			}
			fmt.Fprintf(out, "  %s: %s (%s, %d points)\n", o.ObstacleKind(), o.ObstacleName(), state, o.Reward())
		}

		if items := room.Items(); len(items) > 0 {
			names := make([]string, 0, len(items))
			for _, i := range items {
				names = append(names, i.Name)
			}
			fmt.Fprintf(out, "  items: %s\n", strings.Join(names, ", "))
		}
	}
}

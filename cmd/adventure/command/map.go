package command

import (
	"fmt"
	"strings"

	"github.com/AlexanderGrooff/mermaid-ascii/cmd"
	"github.com/AlexanderGrooff/mermaid-ascii/pkg/diagram"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/spf13/cobra"
	"github.com/yashikota/mermaigo/pkg/mermaid"
)

func newMapCmd(opts *rootOptions) *cobra.Command {
	var ascii, svg bool

	mapCmd := &cobra.Command{
		Use:   "map <world.json>",
		Short: "Print the room graph as a Mermaid flowchart",
		Long: `Map prints every exit of a world as a Mermaid flowchart. Blocked exits are drawn dashed and labelled with the obstacle guarding them.
With --ascii the flowchart is drawn as a box diagram for the terminal. With --svg it is rendered as an SVG image.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			w, err := opts.loadWorld(args[0])
			if err != nil {
				return err
			}

			var out string
			switch {
			case ascii:
				out, err = renderASCII(w)
			case svg:
				out, err = renderSVG(w)
			default:
				out = mermaidFlowchart(w)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(c.OutOrStdout(), out)
			if !strings.HasSuffix(out, "\n") {
				fmt.Fprintln(c.OutOrStdout())
			}
			return nil
		},
	}

	mapCmd.Flags().BoolVar(&ascii, "ascii", false, "draw the map as an ASCII box diagram")
	mapCmd.Flags().BoolVar(&svg, "svg", false, "render the map as an SVG image")
	mapCmd.MarkFlagsMutuallyExclusive("ascii", "svg")

	return mapCmd
}

type mapEdge struct {
	from     *game.Room
	to       storage.Identifier
	dir      game.Direction
	blocked  bool
	obstacle string
}

// label is the edge text: the direction, plus the guarding obstacle for blocked exits.
func (e mapEdge) label(sep string) string {
	if !e.blocked || e.obstacle == "" {
		return e.dir.Key()
	}
	return e.dir.Key() + sep + e.obstacle
}

func mapEdges(w *game.World) []mapEdge {
	var edges []mapEdge
	for _, room := range w.Rooms() {
		for d, e := range room.Exits() {
			if e.Kind() == game.ExitWall {
				continue
			}

			edge := mapEdge{from: room, to: e.Target(), dir: game.Direction(d)}
			if e.Kind() == game.ExitBlocked {
				edge.blocked = true
				if o := room.ActiveObstacle(); o != nil {
					edge.obstacle = o.ObstacleName()
				}
			}
			edges = append(edges, edge)
		}
	}
	return edges
}

func nodeId(id storage.Identifier) string {
	return "r" + id.String()
}

func mermaidFlowchart(w *game.World) string {
	var sb strings.Builder
	sb.WriteString("flowchart TD\n")

	for _, room := range w.Rooms() {
		fmt.Fprintf(&sb, "    %s[\"%s\"]\n", nodeId(room.Id()), strings.ReplaceAll(room.Name, `"`, "'"))
	}

	for _, e := range mapEdges(w) {
		arrow := "-->"
		if e.blocked {
			arrow = "-.->"
		}
		fmt.Fprintf(&sb, "    %s %s|%s| %s\n", nodeId(e.from.Id()), arrow, e.label(": "), nodeId(e.to))
	}

	return sb.String()
}

func renderSVG(w *game.World) (string, error) {
	out, err := mermaid.Render(mermaidFlowchart(w), nil)
	if err != nil {
		return "", fmt.Errorf("rendering map: %w", err)
	}
	return out, nil
}

// asciiNames strips the characters the box renderer treats as syntax.
var asciiNames = strings.NewReplacer("|", "/", " & ", " and ", ":::", ":", "%%", "%", `\n`, " ")

func asciiNode(room *game.Room) string {
	return asciiNames.Replace(fmt.Sprintf("%s %s", room.Id(), strings.TrimSpace(room.Name)))
}

// asciiFlowchart is the subset of flowchart syntax the box renderer parses:
// plain node names and labelled solid arrows.
func asciiFlowchart(w *game.World) string {
	var sb strings.Builder
	sb.WriteString("flowchart TD\n")

	linked := map[storage.Identifier]bool{}
	edges := mapEdges(w)
	for _, e := range edges {
		linked[e.from.Id()] = true
		linked[e.to] = true
	}

	for _, room := range w.Rooms() {
		if !linked[room.Id()] {
			sb.WriteString(asciiNode(room) + "\n")
		}
	}

	for _, e := range edges {
		to := w.Room(e.to)
		if to == nil {
			continue
		}
		label := e.label(" blocked by ")
		if e.blocked && e.obstacle == "" {
			label += " blocked"
		}
		label = asciiNames.Replace(label)
		fmt.Fprintf(&sb, "%s -->|%s| %s\n", asciiNode(e.from), label, asciiNode(to))
	}

	return sb.String()
}

func renderASCII(w *game.World) (string, error) {
	cfg, err := diagram.NewConfig(true, "TD", "cli")
	if err != nil {
		return "", fmt.Errorf("configuring map renderer: %w", err)
	}

	out, err := cmd.RenderDiagram(asciiFlowchart(w), cfg)
	if err != nil {
		return "", fmt.Errorf("rendering map: %w", err)
	}
	return out, nil
}

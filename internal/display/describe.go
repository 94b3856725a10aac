package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/combat"
	"github.com/pixil98/go-adventure/internal/game"
)

var roomTemplate = mustParse("room", `Health: {{ .Health }} ({{ .Status }})
You are in the {{ .RoomName }}.
{{ .Body }}
{{- if .Items }}
Items you see here: {{ .Items | join ", " }}
{{- end }}
{{- if .Fixtures }}
You also notice: {{ .Fixtures | join ", " }}
{{- end }}
`)

var inventoryTemplate = mustParse("inventory", `{{- if not .Items -}}
You are not carrying anything.
{{- else -}}
You are carrying ({{ .Weight }}/{{ .Capacity }}):
{{- range .Items }}
  {{ .Name }}{{ if gt .MaxUses 1 }} ({{ .Uses }}/{{ .MaxUses }} uses){{ end }}
{{- end }}
{{- end }}
`)

type roomView struct {
	Health   int
	Status   game.HealthStatus
	RoomName string
	Body     string
	Items    []string
	Fixtures []string
}

type inventoryLine struct {
	Name    string
	Uses    int
	MaxUses int
}

type inventoryView struct {
	Weight   int
	Capacity int
	Items    []inventoryLine
}

// RoomBody returns what the player sees in their room: the effects of an
// active puzzle that affects its target, else the effects of an active
// monster, else the room's description.
func RoomBody(room *game.Room) string {
	if p := room.Puzzle(); p != nil && p.IsActive() && p.AffectsTarget {
		return p.Effects()
	}
	if m := room.Monster(); m != nil && m.IsActive() {
		return m.Effects()
	}
	return room.Description
}

// DescribeRoom renders the player's current surroundings.
func DescribeRoom(w *game.World) (string, error) {
	p := w.Player()
	room := p.CurrentRoom()

	view := roomView{
		Health:   p.Health(),
		Status:   p.HealthStatus(),
		RoomName: room.Name,
		Body:     RoomBody(room),
	}
	for _, i := range room.Items() {
		view.Items = append(view.Items, i.Name)
	}
	for _, f := range room.Fixtures() {
		view.Fixtures = append(view.Fixtures, f.Name)
	}

	out, err := execute(roomTemplate, view)
	if err != nil {
		return "", err
	}
	return Wrap(out), nil
}

// DescribeInventory renders what the player is carrying.
func DescribeInventory(p *game.Player) (string, error) {
	view := inventoryView{
		Weight:   p.InventoryWeight(),
		Capacity: p.Capacity(),
	}
	for _, i := range p.Inventory() {
		view.Items = append(view.Items, inventoryLine{Name: i.Name, Uses: i.UsesRemaining(), MaxUses: i.MaxUses})
	}
	return execute(inventoryTemplate, view)
}

// DescribeRank renders the player's score and rank.
func DescribeRank(p *game.Player) string {
	return fmt.Sprintf("%s, your score is %d. Rank: %s.", p.Name(), p.Score(), p.Rank())
}

// DescribeMoveError explains why the player could not move.
func DescribeMoveError(err error) string {
	var merr *game.MoveError
	if !errors.As(err, &merr) {
		return Capitalize(err.Error()) + "."
	}

	switch merr.Cause {
	case game.BlockWall:
		return fmt.Sprintf("You can't go %s from here.", merr.Direction)
	case game.BlockPuzzle, game.BlockMonster:
		if merr.Obstacle != nil && merr.Obstacle.Effects() != "" {
			return Wrap(merr.Obstacle.Effects())
		}
		return fmt.Sprintf("Something blocks the way %s.", merr.Direction)
	default:
		return fmt.Sprintf("The way %s is sealed.", merr.Direction)
	}
}

// DescribeAttack renders one exchange of blows with a monster.
func DescribeAttack(res game.AttackResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your blow %s the %s", combat.DamageVerb(res.Damage), strings.ToLower(res.Monster.Name))
	if res.Critical {
		b.WriteString(" with a critical blow")
	}
	b.WriteString("!")
	if res.Defeated {
		fmt.Fprintf(&b, " The %s is defeated. You gain %d points!", strings.ToLower(res.Monster.Name), res.Monster.Value)
	}
	return b.String()
}

package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParseDirection(t *testing.T) {
	tests := map[string]struct {
		input  string
		exp    Direction
		expErr string
	}{
		"full name":    {input: "north", exp: North},
		"letter":       {input: "w", exp: West},
		"upper case":   {input: "EAST", exp: East},
		"padded":       {input: " S ", exp: South},
		"unknown":      {input: "up", expErr: "invalid direction"},
		"empty string": {input: "", expErr: "invalid direction"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := ParseDirection(tt.input)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "direction", d, tt.exp)
		})
	}
}

func TestDirection_Opposite(t *testing.T) {
	tests := map[string]struct {
		dir Direction
		exp Direction
	}{
		"north": {dir: North, exp: South},
		"south": {dir: South, exp: North},
		"east":  {dir: East, exp: West},
		"west":  {dir: West, exp: East},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "opposite", tt.dir.Opposite(), tt.exp)
		})
	}
}

func TestDirection_Key(t *testing.T) {
	keys := ""
	for _, d := range Directions {
		keys += d.Key()
	}
	testutil.AssertEqual(t, "keys", keys, "NSEW")
	testutil.AssertEqual(t, "invalid valid", Direction(9).Valid(), false)
}

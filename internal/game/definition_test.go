package game

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestFlexValue_UnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		input   string
		expSet  bool
		expStr  string
		expInt  int
		expBool bool
		expErr  string
	}{
		"quoted number":   {input: `"12"`, expSet: true, expStr: "12", expInt: 12},
		"bare number":     {input: `-3`, expSet: true, expStr: "-3", expInt: -3},
		"float number":    {input: `2.0`, expSet: true, expStr: "2.0", expInt: 2},
		"float too large": {input: `1e30`, expSet: true, expStr: "1e30", expInt: 7},
		"float too small": {input: `"-1e30"`, expSet: true, expStr: "-1e30", expInt: 7},
		"infinite":        {input: `"Inf"`, expSet: true, expStr: "Inf", expInt: 7},
		"not a number":    {input: `"NaN"`, expSet: true, expStr: "NaN", expInt: 7},
		"quoted boolean":  {input: `"TRUE"`, expSet: true, expStr: "TRUE", expInt: 7, expBool: true},
		"bare boolean":    {input: `true`, expSet: true, expStr: "true", expInt: 7, expBool: true},
		"malformed":       {input: `"lots"`, expSet: true, expStr: "lots", expInt: 7},
		"null":            {input: `null`, expSet: false, expInt: 7},
		"object":          {input: `{"a": 1}`, expErr: "expected a scalar value"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var v FlexValue
			err := json.Unmarshal([]byte(tt.input), &v)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "set", v.IsSet(), tt.expSet)
			testutil.AssertEqual(t, "string", v.String(), tt.expStr)
			testutil.AssertEqual(t, "int", v.Int(7), tt.expInt)
			testutil.AssertEqual(t, "bool", v.Bool(), tt.expBool)
		})
	}
}

func TestFlexValue_MarshalJSON(t *testing.T) {
	doc := struct {
		Weight FlexValue `json:"weight,omitzero"`
		Value  FlexValue `json:"value"`
		Active FlexValue `json:"active"`
	}{
		Value:  FlexInt(4),
		Active: FlexBool(true),
	}

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "json", string(b), `{"value":"4","active":"true"}`)
}

func TestDefinition_Validate(t *testing.T) {
	tests := map[string]struct {
		rooms   []RoomDef
		expErrs []string
	}{
		"valid rooms": {
			rooms: []RoomDef{
				{RoomNumber: NewFlexValue("1"), North: FlexInt(2)},
				{RoomNumber: NewFlexValue("2"), South: FlexInt(-1)},
			},
		},
		"no rooms": {
			rooms:   nil,
			expErrs: []string{"world defines no rooms"},
		},
		"missing room number": {
			rooms:   []RoomDef{{RoomName: "Nowhere"}},
			expErrs: []string{"room 0: room_number is required"},
		},
		"duplicate room number": {
			rooms: []RoomDef{
				{RoomNumber: NewFlexValue("1")},
				{RoomNumber: NewFlexValue(" 1 ")},
			},
			expErrs: []string{`duplicate room_number "1"`},
		},
		"exit value out of range": {
			rooms: []RoomDef{
				{RoomNumber: NewFlexValue("1"), South: FlexInt(math.MinInt)},
			},
			expErrs: []string{`room "1": exit south value -9223372036854775808 is out of range`},
		},
		"exits to unknown rooms are not errors": {
			rooms: []RoomDef{
				{RoomNumber: NewFlexValue("1"), East: FlexInt(9), West: FlexInt(-8)},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			def := &Definition{Rooms: tt.rooms}
			err := def.Validate()

			if len(tt.expErrs) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			for _, e := range tt.expErrs {
				testutil.AssertErrorContains(t, err, e)
			}
		})
	}
}

func TestDefinition_ValidateNoRoomsSentinel(t *testing.T) {
	_, err := NewWorld(&Definition{Name: "Empty"})

	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	testutil.AssertErrorContains(t, err, ErrNoRooms.Error())
}

func TestRoomDef_Exit(t *testing.T) {
	rd := RoomDef{North: NewFlexValue("-4"), South: NewFlexValue("junk"), East: FlexInt(3)}

	testutil.AssertEqual(t, "north", rd.Exit(North), -4)
	testutil.AssertEqual(t, "south", rd.Exit(South), 0)
	testutil.AssertEqual(t, "east", rd.Exit(East), 3)
	testutil.AssertEqual(t, "west", rd.Exit(West), 0)
}

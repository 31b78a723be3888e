package grid

import "testing"

func TestCellStateString(t *testing.T) {
	tests := []struct {
		state    CellState
		expected string
	}{
		{Normal, "normal"},
		{Lock, "lock"},
		{Water, "water"},
		{Grass, "grass"},
		{Special, "special"},
		{CellState(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("CellState(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestParseCellState(t *testing.T) {
	for _, s := range AllStates() {
		got, err := ParseCellState(s.String())
		if err != nil {
			t.Fatalf("ParseCellState(%q) returned error: %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseCellState(%q) = %v, want %v", s.String(), got, s)
		}
	}

	if _, err := ParseCellState("lava"); err == nil {
		t.Error("ParseCellState(\"lava\") should fail")
	}
}

func TestStateRange(t *testing.T) {
	states := AllStates()
	if states[0] != FirstState || states[len(states)-1] != LastState {
		t.Errorf("AllStates() bounds = %v..%v, want %v..%v", states[0], states[len(states)-1], FirstState, LastState)
	}
	if int(LastState-FirstState)+1 != len(states) {
		t.Errorf("draw range covers %d states, want %d", int(LastState-FirstState)+1, len(states))
	}
	if CellState(-1).Valid() || CellState(5).Valid() {
		t.Error("out-of-range states reported valid")
	}
}

func TestAlignmentString(t *testing.T) {
	if Neutral.String() != "neutral" || IA.String() != "ia" || Player.String() != "player" {
		t.Error("unexpected alignment names")
	}
	var c Cell
	if c.Alignment != Neutral {
		t.Errorf("zero Cell alignment = %v, want neutral", c.Alignment)
	}
}

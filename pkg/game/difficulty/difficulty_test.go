package difficulty

import (
	"errors"
	"testing"
)

func TestTable(t *testing.T) {
	tests := []struct {
		level Level
		want  Config
	}{
		{Beginner, Config{Rows: 9, Cols: 9, Mines: 10}},
		{Intermediate, Config{Rows: 16, Cols: 16, Mines: 40}},
		{Expert, Config{Rows: 16, Cols: 30, Mines: 99}},
	}
	for _, tt := range tests {
		if got := tt.level.Config(); got != tt.want {
			t.Errorf("%s.Config() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestTable_ReturnsCopies(t *testing.T) {
	cfg := Beginner.Config()
	cfg.Mines = 80
	if got := Beginner.Config().Mines; got != 10 {
		t.Errorf("table mutated through copy: Mines = %d, want 10", got)
	}
}

func TestParse(t *testing.T) {
	for _, l := range All() {
		got, err := Parse(l.String())
		if err != nil || got != l {
			t.Errorf("Parse(%q) = %v, %v, want %v", l.String(), got, err, l)
		}
	}
	if got, err := Parse("  EXPERT "); err != nil || got != Expert {
		t.Errorf("Parse(EXPERT) = %v, %v", got, err)
	}
	if _, err := Parse("nightmare"); !errors.Is(err, ErrUnknown) {
		t.Errorf("Parse(nightmare) err = %v, want ErrUnknown", err)
	}
}

func TestInvalidLevelFallsBack(t *testing.T) {
	if got := Level(7).Config(); got != Default.Config() {
		t.Errorf("Level(7).Config() = %v, want default", got)
	}
	if Level(-1).IsValid() {
		t.Error("Level(-1).IsValid() = true")
	}
}

func TestSafeCells(t *testing.T) {
	if got := Beginner.Config().SafeCells(); got != 71 {
		t.Errorf("SafeCells = %d, want 71", got)
	}
}

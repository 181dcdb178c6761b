package state

import (
	"fmt"
	"testing"
)

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := NewGame()
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	if len(g.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(g.Messages))
	}
	if g.Messages[0] != "m3" || g.Messages[4] != "m7" {
		t.Errorf("Messages = %v, want m3..m7", g.Messages)
	}
	if g.Version != 8 {
		t.Errorf("Version = %d, want 8", g.Version)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		s        Status
		name     string
		terminal bool
	}{
		{Ready, "ready", false},
		{Playing, "playing", false},
		{Won, "won", true},
		{Lost, "lost", true},
	}
	for _, tt := range tests {
		if tt.s.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.s.String(), tt.name)
		}
		if tt.s.IsTerminal() != tt.terminal {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.name, tt.s.IsTerminal(), tt.terminal)
		}
	}
}

func TestClearMessages(t *testing.T) {
	g := NewGame()
	g.AddMessage("x")
	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("Messages = %v, want empty", g.Messages)
	}
}

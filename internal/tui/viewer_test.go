package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/TurbulentGoat/orbitals/internal/engine"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsComputing(t *testing.T) {
	m := NewModel(engine.New(), nil, engine.Request{N: 1, L: 0, M: 0, Quality: 1})
	if !m.computing {
		t.Error("model should start in computing state")
	}
	if m.Init() == nil {
		t.Error("Init returned no command")
	}
}

func TestStaleResultDiscarded(t *testing.T) {
	m := NewModel(engine.New(), nil, engine.Request{N: 1, L: 0, M: 0, Quality: 1})

	updated, _ := m.Update(computeDoneMsg{gen: m.gen - 1, res: nil, err: nil})
	m2 := updated.(Model)
	if !m2.computing {
		t.Error("stale result should not clear the computing flag")
	}
}

func TestCurrentResultAccepted(t *testing.T) {
	m := NewModel(engine.New(), nil, engine.Request{N: 1, L: 0, M: 0, Quality: 1})
	cmd := m.pending
	msg := cmd()
	done, ok := msg.(computeDoneMsg)
	if !ok {
		t.Fatalf("pending command produced %T", msg)
	}

	updated, _ := m.Update(done)
	m2 := updated.(Model)
	if m2.computing {
		t.Error("computing flag still set after matching result")
	}
	if m2.err != nil {
		t.Fatal(m2.err)
	}
	if m2.res == nil {
		t.Fatal("result not stored")
	}
	if len(m2.radial) == 0 {
		t.Error("radial panel data not populated")
	}
}

func TestAdjustKeepsQuantumNumbersValid(t *testing.T) {
	m := NewModel(engine.New(), nil, engine.Request{N: 3, L: 2, M: 2, Quality: 1})

	// Tab is already on n; dropping n must pull l and m down with it.
	updated, cmd := m.Update(key("j"))
	m2 := updated.(Model)
	if cmd == nil {
		t.Error("adjustment should trigger a recompute")
	}
	if m2.req.N != 2 || m2.req.L > 1 || m2.req.M > m2.req.L {
		t.Errorf("request after n-- = (%d,%d,%d)", m2.req.N, m2.req.L, m2.req.M)
	}
}

func TestTabCyclesFields(t *testing.T) {
	m := NewModel(engine.New(), nil, engine.Request{N: 2, L: 1, M: 0, Quality: 1})
	for i := 0; i < len(fields); i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
	}
	if m.selected != 0 {
		t.Errorf("selected = %d after full cycle, want 0", m.selected)
	}
}

func TestViewRendersWithoutResult(t *testing.T) {
	m := NewModel(engine.New(), nil, engine.Request{N: 1, L: 0, M: 0, Quality: 1})
	if m.View() == "" {
		t.Error("empty view")
	}
}

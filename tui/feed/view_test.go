package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/terminalwager/domain"
)

func TestView_RendersPredictionCard(t *testing.T) {
	m := newTestModel(newTestDeps())
	e := makeEntity("a", "crypto")
	e.PoolXC = domain.NewPool(75, 25, 100)
	m = loadFirstPage(m, e)

	out := ansi.Strip(m.View())
	for _, want := range []string{"TerminalWager", "@usera", "Will a happen?", "YES 50% 2.0x", "YES 75% 1.3x", "NO 25% 4.0x", "crypto"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestView_LoadingAndEmptyStates(t *testing.T) {
	m := newTestModel(newTestDeps())
	if !strings.Contains(m.View(), "Loading predictions") {
		t.Fatalf("expected loading state")
	}
	m = loadFirstPage(m)
	if !strings.Contains(m.View(), "No predictions") {
		t.Fatalf("expected empty state")
	}
}

func TestView_ExpiredBadge(t *testing.T) {
	m := newTestModel(newTestDeps())
	m = loadFirstPage(m, makeEntity("a", "tech"))
	m, _ = m.Update(ExpiredMsg{Entities: []domain.Entity{makeEntity("x", "tech"), makeEntity("y", "tech")}})

	if !strings.Contains(ansi.Strip(m.View()), "2 awaiting resolution") {
		t.Fatalf("expected expired badge")
	}
}

func TestRenderResolution(t *testing.T) {
	now := time.Now()
	yes := true
	e := makeEntity("a", "tech")

	e.Deadline = now.Add(-time.Minute)
	if got := renderResolution(e, now); got != "awaiting resolution" {
		t.Fatalf("expected awaiting resolution, got %q", got)
	}
	e.Resolution = domain.Resolution{State: domain.ResolutionResolved, Outcome: &yes}
	if got := renderResolution(e, now); got != "resolved YES" {
		t.Fatalf("expected resolved YES, got %q", got)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("a  b\n c", 20); got != "a b c" {
		t.Fatalf("expected collapsed whitespace, got %q", got)
	}
	got := truncateText(strings.Repeat("x", 30), 10)
	if ansi.StringWidth(got) != 10 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected 10-cell ellipsized text, got %q", got)
	}
}

func TestEnsureSelectedVisible(t *testing.T) {
	m := newTestModel(newTestDeps())
	m.height = reservedLines + 2*cardHeight
	for _, id := range []string{"a", "b", "c", "d"} {
		m.items = append(m.items, makeEntity(id, "tech"))
	}
	m.selected = 3
	m.ensureSelectedVisible()
	if m.startIndex != 2 {
		t.Fatalf("expected window to start at 2, got %d", m.startIndex)
	}
	m.selected = 0
	m.ensureSelectedVisible()
	if m.startIndex != 0 {
		t.Fatalf("expected window to scroll back, got %d", m.startIndex)
	}
}

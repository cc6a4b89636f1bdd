package tui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/mathviz/internal/gallery"
	"github.com/san-kum/mathviz/internal/visuals"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuNavigation(t *testing.T) {
	m := newModel(Options{})
	m.Update(key("down"))
	m.Update(key("down"))
	if m.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.cursor)
	}
	if !strings.Contains(m.View(), "Mandelbrot Set") {
		t.Error("menu should list titles")
	}

	for range 20 {
		m.Update(key("down"))
	}
	if m.cursor != len(visuals.Names())-1 {
		t.Errorf("cursor should stop at the last entry, got %d", m.cursor)
	}
}

func TestOpenAndTick(t *testing.T) {
	m := newModel(Options{FPS: 50})
	m.Update(tea.WindowSizeMsg{Width: 46, Height: 27})
	m.Update(key("down")) // wave
	m.Update(key("enter"))
	if m.state != stateView || m.pane.Name() != "wave" {
		t.Fatalf("expected the wave view, got state %d", m.state)
	}
	w, h := m.canvas.Size()
	if w != 80 || h != 80 {
		t.Errorf("expected an 80x80 dot canvas, got %dx%d", w, h)
	}

	wave := m.pane.Visual.(*visuals.Wave)
	before := wave.State.Time
	m.Update(tickMsg(time.Now()))
	if wave.State.Time <= before {
		t.Error("tick should advance the wave")
	}

	m.Update(key(" "))
	paused := wave.State.Time
	m.Update(tickMsg(time.Now()))
	if wave.State.Time != paused {
		t.Error("paused view should not advance")
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("expected paused status")
	}

	m.Update(key("q"))
	if m.state != stateMenu || m.gallery != nil {
		t.Error("q should return to the menu")
	}
}

func TestResizeRedraws(t *testing.T) {
	m := newModel(Options{Visual: "ulam"})
	m.Init()
	if m.state != stateView {
		t.Fatal("expected Visual to open directly")
	}
	m.Update(tea.WindowSizeMsg{Width: 106, Height: 47})
	w, h := m.canvas.Size()
	if w != 200 || h != 160 {
		t.Errorf("expected 200x160, got %dx%d", w, h)
	}
	if !strings.ContainsFunc(m.canvas.Plain(), func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("ulam should be redrawn after resize")
	}
}

func TestSieveFinishes(t *testing.T) {
	m := newModel(Options{Visual: "sieve", StepDelay: time.Millisecond, FPS: 100})
	m.Init()
	for range 40 {
		m.Update(tickMsg(time.Now()))
	}
	if m.pane.Active() {
		t.Error("sieve should be done")
	}
	if !strings.Contains(m.View(), "done") {
		t.Error("expected done status")
	}
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	m := newModel(Options{Visual: "lissajous", OutputDir: dir})
	m.Init()
	m.Update(key("s"))
	if !strings.HasPrefix(m.status, "saved") {
		t.Fatalf("unexpected status %q", m.status)
	}
	data, err := os.ReadFile(filepath.Join(dir, "lissajous-terminal.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<circle")) {
		t.Error("snapshot should contain dots")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nonexistent").Name != "dark" {
		t.Error("expected fallback to dark")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}

func TestPlayerStopsAfterFrames(t *testing.T) {
	var out bytes.Buffer
	p := &Player{Out: &out, Cols: 20, Rows: 8, FPS: 200, Frames: 3,
		Opts: []gallery.Option{gallery.WithStepDelay(time.Millisecond)}}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.Play(ctx, "lissajous"); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), clearScreen); n != 3 {
		t.Errorf("expected 3 frames, got %d", n)
	}
	if !strings.HasSuffix(out.String(), showCursor) {
		t.Error("cursor should be restored")
	}
}

func TestPlayerErrors(t *testing.T) {
	var out bytes.Buffer
	if err := (&Player{Out: &out, Cols: 0, Rows: 4}).Play(context.Background(), "wave"); err == nil {
		t.Error("expected error for empty terminal")
	}
	if err := (&Player{Out: &out, Cols: 4, Rows: 4}).Play(context.Background(), "julia"); err == nil {
		t.Error("expected error for unknown visual")
	}
}

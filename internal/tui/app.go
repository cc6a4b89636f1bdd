package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/mathviz/internal/export"
	"github.com/san-kum/mathviz/internal/gallery"
	"github.com/san-kum/mathviz/internal/schedule"
	"github.com/san-kum/mathviz/internal/surface"
	"github.com/san-kum/mathviz/internal/visuals"
)

const (
	minCols = 20
	minRows = 8
)

type Options struct {
	FPS       int
	StepDelay time.Duration
	Theme     string
	OutputDir string
	Visual    string
	AltScreen bool
}

type state int

const (
	stateMenu state = iota
	stateView
)

type model struct {
	state  state
	cursor int
	infos  []visuals.Info
	opts   Options
	style  styles

	clock    *schedule.Manual
	resizer  *schedule.Resizer
	gallery  *gallery.Gallery
	pane     *gallery.Pane
	canvas   *surface.Braille
	interval time.Duration
	paused   bool
	frames   int
	status   string

	width  int
	height int
}

func newModel(opts Options) *model {
	if opts.FPS <= 0 {
		opts.FPS = schedule.DefaultFPS
	}
	infos := make([]visuals.Info, 0, len(visuals.Names()))
	for _, name := range visuals.Names() {
		info, _ := visuals.Lookup(name)
		infos = append(infos, info)
	}
	m := &model{
		state:    stateMenu,
		infos:    infos,
		opts:     opts,
		style:    GetTheme(opts.Theme).styles(),
		interval: time.Second / time.Duration(opts.FPS),
		width:    80,
		height:   24,
	}
	for i, info := range infos {
		if info.Name == opts.Visual {
			m.cursor = i
		}
	}
	return m
}

func (m *model) Init() tea.Cmd {
	if m.opts.Visual == "" {
		return nil
	}
	if err := m.open(m.infos[m.cursor].Name); err != nil {
		m.status = err.Error()
		return nil
	}
	return m.tick()
}

type tickMsg time.Time

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) canvasSize() (int, int) {
	cols := max(m.width-6, minCols)
	rows := max(m.height-7, minRows)
	return cols * 2, rows * 4
}

func (m *model) open(name string) error {
	w, h := m.canvasSize()
	reg := surface.NewRegistry(w, h, func(w, h int) surface.Surface { return surface.NewBraille(w, h) })
	m.clock = schedule.NewManual()
	g, err := gallery.New(reg, m.clock, gallery.WithVisuals(name), gallery.WithStepDelay(m.opts.StepDelay))
	if err != nil {
		return err
	}
	pane, err := g.Pane(name)
	if err != nil {
		return err
	}
	m.resizer = schedule.NewResizer(w, h)
	g.Attach(m.resizer)
	if err := g.Start(); err != nil {
		return err
	}
	m.gallery, m.pane = g, pane
	m.canvas = pane.Surface.(*surface.Braille)
	m.state = stateView
	m.paused = false
	m.frames = 0
	m.status = ""
	return nil
}

func (m *model) close() {
	if m.gallery != nil {
		m.gallery.Stop()
	}
	m.gallery, m.pane, m.canvas, m.resizer = nil, nil, nil, nil
	m.state = stateMenu
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.resizer != nil {
			m.resizer.Notify(m.canvasSize())
		}
		return m, nil
	case tickMsg:
		if m.state != stateView {
			return m, nil
		}
		if !m.paused {
			m.clock.Tick(m.interval)
			m.frames++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateView {
		return m.viewKey(msg)
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.infos)-1 {
			m.cursor++
		}
	case "enter", " ":
		if err := m.open(m.infos[m.cursor].Name); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, tea.Batch(tea.ClearScreen, m.tick())
	}
	return m, nil
}

func (m *model) viewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.close()
		return m, tea.Quit
	case "q", "esc":
		m.close()
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		if err := m.gallery.Restart(); err != nil {
			m.status = err.Error()
		}
		m.frames = 0
	case "s":
		m.status = m.snapshot()
	}
	return m, nil
}

func (m *model) snapshot() string {
	path, err := export.WriteFile(m.opts.OutputDir, m.pane.Name()+"-terminal.svg", func(w io.Writer) error {
		return export.BrailleSVG(w, m.canvas, 4)
	})
	if err != nil {
		return err.Error()
	}
	return "saved " + path
}

func (m *model) View() string {
	if m.state == stateView {
		return m.viewCanvas()
	}
	return m.viewMenu()
}

func (m *model) viewMenu() string {
	s := m.style
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.faint.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + s.primary.Render("m a t h v i z") + "\n")
	b.WriteString(s.faint.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, info := range m.infos {
		if i == m.cursor {
			b.WriteString("      " + s.primary.Render("▸ ") + s.text.Render(fmt.Sprintf("%-24s", info.Title)) + s.muted.Render(info.Description) + "\n")
		} else {
			b.WriteString("        " + s.muted.Render(fmt.Sprintf("%-24s", info.Title)) + s.faint.Render(info.Description) + "\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("      " + s.paused.Render(m.status) + "\n")
	}
	b.WriteString(s.muted.Render("      ↑↓ select   enter open   q quit") + "\n")
	return b.String()
}

func (m *model) viewCanvas() string {
	s := m.style
	var b strings.Builder

	icon, text := s.running.Render("●"), s.running.Render(m.pane.Kind.String())
	if m.paused {
		icon, text = s.paused.Render("○"), s.paused.Render("paused")
	}
	if m.pane.Kind == visuals.Stepped && !m.pane.Active() {
		icon, text = s.accent.Render("◆"), s.accent.Render("done")
	}
	info, _ := visuals.Lookup(m.pane.Name())
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n\n", icon, s.primary.Render(info.Title), text, s.faint.Render(fmt.Sprintf("frame %d", m.frames))))

	for _, line := range strings.Split(strings.TrimSuffix(m.canvas.String(), "\n"), "\n") {
		b.WriteString("   " + line + "\n")
	}

	if sieve, ok := m.pane.Visual.(*visuals.Sieve); ok {
		b.WriteString(fmt.Sprintf("\n   %s %s  %s %s\n",
			s.muted.Render("base"), s.text.Render(fmt.Sprint(sieve.Current)),
			s.muted.Render("primes"), s.text.Render(fmt.Sprint(len(sieve.Primes())))))
	}
	if m.status != "" {
		b.WriteString("   " + s.muted.Render(m.status) + "\n")
	}
	b.WriteString("\n" + s.muted.Render("   space pause  r restart  s snapshot  q back") + "\n")
	return b.String()
}

// Run opens the terminal gallery and blocks until the user quits.
func Run(opts Options) error {
	var popts []tea.ProgramOption
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	p := tea.NewProgram(newModel(opts), popts...)
	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/tourguide/internal/adapters/layout"
	"github.com/felixgeelhaar/tourguide/internal/app"
	"github.com/felixgeelhaar/tourguide/internal/domain/config"
	"github.com/felixgeelhaar/tourguide/internal/ports"
	"github.com/felixgeelhaar/tourguide/internal/tui/ui"
)

// changedMsg is sent when the watched definition file changed.
type changedMsg struct{}

// tourModel draws the host screen regions with the tour on top and maps
// keys and clicks onto the tour handle.
type tourModel struct {
	opts    TourOptions
	session *app.Session
	screen  *layout.Screen
	styles  ui.Styles
	keys    ui.KeyMap
	help    help.Model
	md      *markdown
	width   int
	height  int
	status  string
	failed  bool
	quit    bool
}

func newTourModel(opts TourOptions) tourModel {
	h := help.New()
	h.Styles.ShortKey = ui.DefaultStyles().HelpKey
	h.Styles.FullKey = ui.DefaultStyles().HelpKey

	m := tourModel{
		opts:    opts,
		session: opts.Session,
		screen:  opts.Screen,
		styles:  ui.DefaultStyles(),
		keys:    ui.DefaultKeyMap(),
		help:    h,
		md:      &markdown{},
	}
	m.resize(ui.DefaultWidth, ui.DefaultHeight)
	return m
}

func (m tourModel) Init() tea.Cmd {
	return m.waitForChange()
}

func (m tourModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case changedMsg:
		return m, m.reload()

	case ui.ReloadMsg:
		m.screen.Set(app.Regions(msg.Definition))
		m.session.Reload(msg.Definition)
		m.status, m.failed = "Reloaded "+msg.Definition.String(), false
		return m, tea.Batch(m.waitForChange(), clearStatus())

	case ui.ErrorMsg:
		m.status, m.failed = msg.Error(), true
		return m, m.waitForChange()

	case ui.StatusMsg:
		m.status, m.failed = msg.Message, false
		return m, clearStatus()

	case ui.ClearStatusMsg:
		if !m.failed {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m tourModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	h := m.session.Handle()
	snap := m.session.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Start):
		h.Start()
		return m.afterTransition()
	}

	if !snap.IsActive {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		h.NextStep()
	case key.Matches(msg, m.keys.Prev):
		h.PrevStep()
	case key.Matches(msg, m.keys.First):
		h.GoToStep(0)
	case key.Matches(msg, m.keys.Last):
		h.GoToStep(snap.TotalSteps - 1)
	case key.Matches(msg, m.keys.Jump):
		idx, _ := m.keys.JumpIndex(msg)
		h.GoToStep(idx)
	case key.Matches(msg, m.keys.Skip), key.Matches(msg, m.keys.Close):
		h.Dismiss()
	case key.Matches(msg, m.keys.Complete):
		h.Complete()
	default:
		return m, nil
	}
	return m.afterTransition()
}

func (m tourModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	snap := m.session.Snapshot()
	sp, ok := m.spotlight()
	if !ok || !snap.IsActive {
		return m, nil
	}
	if frame, ok := m.dialogFrame(); ok && frame.box.contains(msg.X, msg.Y) {
		return m, nil
	}
	hole, hasHole := spotlightHole(sp, snap, m.session.Document())
	if clickDismisses(sp, hole, hasHole, msg.X, msg.Y) {
		m.session.Handle().Dismiss()
		return m.afterTransition()
	}
	return m, nil
}

// afterTransition resyncs mounted steps and ends the program once the tour
// is over, when asked to.
func (m tourModel) afterTransition() (tea.Model, tea.Cmd) {
	m.session.Sync()
	if m.opts.ExitOnFinish && !m.session.Snapshot().IsActive {
		return m, tea.Quit
	}
	return m, nil
}

func (m *tourModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.screen.Resize(width, max(height-1, 0))
	m.session.Sync()
}

func (m tourModel) waitForChange() tea.Cmd {
	if m.opts.Changes == nil {
		return nil
	}
	changes := m.opts.Changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m tourModel) reload() tea.Cmd {
	if m.opts.Reload == nil {
		return m.waitForChange()
	}
	load := m.opts.Reload
	return func() tea.Msg {
		return ui.NewReloadMsg(load())
	}
}

func clearStatus() tea.Cmd {
	return tea.Tick(ui.StatusTTL, func(_ time.Time) tea.Msg {
		return ui.ClearStatusMsg{}
	})
}

// spotlight returns the mounted spotlight child, if the definition has one.
func (m tourModel) spotlight() (config.Spotlight, bool) {
	for _, a := range m.session.Annotated() {
		if sp, ok := a.Child.(config.Spotlight); ok {
			return sp, true
		}
	}
	return config.Spotlight{}, false
}

// frame is a laid-out dialog.
type frame struct {
	lines []string
	box   cellRect
	pos   Position
}

func (m tourModel) dialogFrame() (frame, bool) {
	snap := m.session.Snapshot()
	if !snap.IsActive {
		return frame{}, false
	}
	d, ok := m.session.Current()
	if !ok {
		return frame{}, false
	}

	sw, sh := m.width, max(m.height-1, 0)
	width := min(ui.DialogWidth, sw)
	if width < ui.DialogMinWidth {
		width = min(ui.DialogMinWidth, max(sw, 1))
	}
	lines := renderDialog(m.styles, m.md, d, snap, width)
	w, h := maxWidth(lines), len(lines)

	var pos Position
	if box, ok := m.targetBox(); ok {
		pos = Place(box, w, h, d.Placement, d.Offset, sw, sh)
	} else {
		pos = Center(w, h, sw, sh)
	}
	return frame{
		lines: lines,
		box:   cellRect{left: pos.X, top: pos.Y, width: w, height: h},
		pos:   pos,
	}, true
}

func (m tourModel) targetBox() (ports.Rect, bool) {
	snap := m.session.Snapshot()
	doc := m.session.Document()
	if snap.Target == nil || doc == nil {
		return ports.Rect{}, false
	}
	return doc.BoundingBox(snap.Target)
}

func (m tourModel) View() string {
	if m.quit {
		return ""
	}

	c := newCanvas(m.width, max(m.height-1, 0))
	for _, r := range m.screen.Regions() {
		c.region(cells(r.Box), r.Label)
	}

	snap := m.session.Snapshot()
	if sp, ok := m.spotlight(); ok && snap.IsActive {
		hole, hasHole := spotlightHole(sp, snap, m.session.Document())
		applySpotlight(c, sp, hole, hasHole)
	}

	var body string
	if f, ok := m.dialogFrame(); ok {
		body = c.render(m.styles, f.lines, f.pos.X, f.pos.Y)
	} else {
		body = c.render(m.styles, nil, 0, 0)
	}
	return body + "\n" + m.footer()
}

func (m tourModel) footer() string {
	if m.status != "" {
		style := m.styles.Status
		if m.failed {
			style = m.styles.Error
		}
		return style.Render(m.status)
	}

	snap := m.session.Snapshot()
	if !snap.IsActive {
		state := "Tour closed"
		if snap.IsCompleted {
			state = "Tour completed"
		}
		return m.styles.Help.Render(fmt.Sprintf("%s • %s restart • %s quit",
			state, m.keys.Start.Help().Key, m.keys.Quit.Help().Key))
	}
	return m.help.View(m.keys)
}

// Result returns how the program left the tour.
func (m tourModel) Result() TourResult {
	snap := m.session.Snapshot()
	return TourResult{
		Completed: snap.IsCompleted,
		Active:    snap.IsActive,
		Step:      snap.CurrentStep,
		Quit:      m.quit,
	}
}

func maxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

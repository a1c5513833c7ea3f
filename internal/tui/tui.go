// Package tui provides a Bubble Tea terminal user interface for audiorganizer.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/handiism/audiorganizer/internal/audio"
	"github.com/handiism/audiorganizer/internal/config"
	"github.com/handiism/audiorganizer/internal/organize"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxLogs is the number of log lines kept on screen.
const maxLogs = 10

// errCancelled is shown when the user aborts a run.
var errCancelled = errors.New("cancelled by user")

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateOrganizing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   organize.ProgressLevel
}

// logBuffer collects progress events from the organizer goroutine until
// the next tick drains them into the model.
type logBuffer struct {
	mu     sync.Mutex
	events []organize.ProgressEvent
}

func (b *logBuffer) push(event organize.ProgressEvent) {
	b.mu.Lock()
	b.events = append(b.events, event)
	b.mu.Unlock()
}

func (b *logBuffer) drain() []organize.ProgressEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// focusArea is the part of the input screen receiving key presses.
type focusArea int

const (
	focusSource focusArea = iota
	focusDest
	focusOptions
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state       State
	sourceInput textinput.Model
	destInput   textinput.Model
	spinner     spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	pending   *logBuffer
	summary   *organize.Summary
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	manager *organize.Manager

	processedFiles int32
	totalFiles     int32

	// focus cycles with tab: source path, destination path, toggles.
	focus focusArea

	// Options
	copyMode bool
	dryRun   bool
	playlist bool
	coverArt bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model. sourceDir pre-fills the source input.
func NewModel(sourceDir string) Model {
	source := newPathInput("/path/to/music")
	source.SetValue(sourceDir)
	source.Focus()

	// An empty destination organizes in place.
	dest := newPathInput("same as source")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:       StateInput,
		sourceInput: source,
		destInput:   dest,
		spinner:     sp,
		progress:    prog,
		settings:    config.DefaultSettings(),
		logs:        make([]LogEntry, 0),
		pending:     &logBuffer{},
		ctx:         ctx,
		cancel:      cancel,
	}
}

func newPathInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 1024
	ti.Width = 60
	return ti
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// RunDoneMsg is sent when the organizer returns.
	RunDoneMsg struct {
		Summary *organize.Summary
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateOrganizing {
				// The organizer stops after the current file.
				m.cancel()
			}
			return m, nil

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.sourceInput.Value()) != "" {
				return m.startRun()
			}
			return m, nil

		case "tab":
			if m.state == StateInput {
				cmd := m.setFocus((m.focus + 1) % (focusOptions + 1))
				return m, cmd
			}
			return m, nil
		}

		if m.state == StateInput && m.focus == focusOptions {
			m.toggleOption(msg.String())
			return m, nil
		}

		if m.state == StateComplete || m.state == StateError {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "r":
				return m.reset()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case RunDoneMsg:
		m.appendLogs(m.pending.drain())
		m.summary = msg.Summary
		if m.manager != nil {
			m.processedFiles, m.totalFiles = m.manager.Progress()
		}
		switch {
		case errors.Is(msg.Err, context.Canceled):
			m.state = StateError
			m.err = errCancelled
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateOrganizing {
			m.appendLogs(m.pending.drain())
			m.processedFiles, m.totalFiles = m.manager.Progress()

			var percent float64
			if m.totalFiles > 0 {
				percent = float64(m.processedFiles) / float64(m.totalFiles)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		switch m.focus {
		case focusSource:
			m.sourceInput, cmd = m.sourceInput.Update(msg)
		case focusDest:
			m.destInput, cmd = m.destInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// setFocus moves the cursor to area and returns the blink command of the
// focused input, if any.
func (m *Model) setFocus(area focusArea) tea.Cmd {
	m.focus = area
	m.sourceInput.Blur()
	m.destInput.Blur()
	switch area {
	case focusSource:
		return m.sourceInput.Focus()
	case focusDest:
		return m.destInput.Focus()
	}
	return nil
}

func (m *Model) toggleOption(key string) {
	switch key {
	case "c":
		m.copyMode = !m.copyMode
	case "n":
		m.dryRun = !m.dryRun
	case "p":
		m.playlist = !m.playlist
	case "a":
		m.coverArt = !m.coverArt
	case "v":
		m.verbose = !m.verbose
	}
}

// runSettings applies the toggles to a fresh copy of the defaults.
func (m Model) runSettings() *config.Settings {
	settings := *m.settings
	settings.SourceDir = strings.TrimSpace(m.sourceInput.Value())
	settings.DestDir = strings.TrimSpace(m.destInput.Value())
	settings.Mode = config.ModeMove
	if m.copyMode {
		settings.Mode = config.ModeCopy
	}
	settings.DryRun = m.dryRun
	settings.CreatePlaylist = m.playlist
	settings.SaveCoverArt = m.coverArt
	return &settings
}

func (m Model) startRun() (tea.Model, tea.Cmd) {
	settings := m.runSettings()
	if err := settings.Validate(); err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}

	pending := m.pending
	verbose := m.verbose
	m.manager = organize.NewManager(settings, audio.NewReader(), func(event organize.ProgressEvent) {
		if event.Level == organize.LevelVerbose && !verbose {
			return
		}
		pending.push(event)
	})
	m.state = StateOrganizing

	return m, tea.Batch(m.runOrganizer(), m.tickProgress(), m.spinner.Tick)
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.state = StateInput
	m.logs = nil
	m.pending.drain()
	m.summary = nil
	m.err = nil
	m.processedFiles = 0
	m.totalFiles = 0
	m.manager = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	cmd := m.setFocus(focusSource)
	return m, cmd
}

func (m *Model) appendLogs(events []organize.ProgressEvent) {
	for _, event := range events {
		m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	}
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// runOrganizer runs the manager in the background.
func (m Model) runOrganizer() tea.Cmd {
	manager := m.manager
	ctx := m.ctx
	return func() tea.Msg {
		summary, err := manager.Run(ctx)
		return RunDoneMsg{Summary: summary, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♫ Audio Organizer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Sort MP3 files into artist/album folders"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateOrganizing:
		b.WriteString(m.viewOrganizing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(m.sectionLabel("Source directory:", focusSource))
	b.WriteString("\n")
	b.WriteString(m.sourceInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.sectionLabel("Destination directory:", focusDest))
	b.WriteString("\n")
	b.WriteString(m.destInput.View())
	b.WriteString("\n\n")

	label := m.sectionLabel("Options:", focusOptions)
	mode := "move"
	if m.copyMode {
		mode = "copy"
	}

	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Copy instead of move (c)  [%s]\n", checkbox(m.copyMode), mode))
	b.WriteString(fmt.Sprintf("  %s Dry run (n)\n", checkbox(m.dryRun)))
	b.WriteString(fmt.Sprintf("  %s Create playlist (p)\n", checkbox(m.playlist)))
	b.WriteString(fmt.Sprintf("  %s Save cover art (a)\n", checkbox(m.coverArt)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Files are organized into " + m.layoutHint()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) sectionLabel(text string, area focusArea) string {
	if m.focus == area {
		return focusStyle.Render(text)
	}
	return subtitleStyle.Render(text)
}

// layoutHint shows the tree a run with the current inputs would produce.
func (m Model) layoutHint() string {
	root := strings.TrimSpace(m.destInput.Value())
	if root == "" {
		root = strings.TrimSpace(m.sourceInput.Value())
	}
	if root == "" {
		root = "<source>"
	}
	return root + "/<artist>/<album>"
}

func (m Model) viewOrganizing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Organizing " + m.sourceInput.Value()))
	b.WriteString("\n\n")

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.processedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.processedFiles, m.totalFiles)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(summaryText(m.summary)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

// summaryText renders the counters of a finished run.
func summaryText(s *organize.Summary) string {
	if s == nil {
		return "Nothing to report"
	}

	title := "✨ Organizing Complete!"
	done := fmt.Sprintf("%s: %s", s.Mode.Verb(), humanize.Comma(int64(s.Organized)))
	if s.DryRun {
		title = "✨ Dry Run Complete!"
		done = fmt.Sprintf("Planned: %s", humanize.Comma(int64(s.Planned)))
	}

	return fmt.Sprintf(
		"%s\n\n"+
			"Files: %s\n"+
			"%s\n"+
			"Failed: %s\n"+
			"Size: %s\n"+
			"Took: %s",
		title,
		humanize.Comma(int64(s.Total())),
		done,
		humanize.Comma(int64(s.Failed)),
		humanize.Bytes(uint64(s.Bytes)),
		s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond),
	)
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n")
	}
	if m.summary != nil {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(summaryText(m.summary)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case organize.LevelError:
			style = errorStyle
			prefix = "✗"
		case organize.LevelWarning:
			style = warningStyle
			prefix = "!"
		case organize.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case organize.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateInput:
		switch m.focus {
		case focusSource:
			return "enter: start • tab: destination • esc: quit"
		case focusDest:
			return "enter: start • tab: options • esc: quit"
		}
		return "enter: start • c/n/p/a/v: toggle • tab: source • esc: quit"
	case StateOrganizing:
		return "esc: stop after current file"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(sourceDir string) error {
	p := tea.NewProgram(NewModel(sourceDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/tatianab/tradewinds/internal/engine"
	"github.com/tatianab/tradewinds/internal/models"
	"go.uber.org/zap"
)

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// lineStyles maps narrative tags to terminal colours.
var lineStyles = map[models.Style]lipgloss.Style{
	models.StyleNormal:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
	models.StyleTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true),
	models.StyleLocation:    lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")).Bold(true),
	models.StyleDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("#DADADA")),
	models.StyleAtmosphere:  lipgloss.NewStyle().Foreground(lipgloss.Color("#AF87FF")).Italic(true),
	models.StylePrompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("#87D7D7")),
	models.StyleInput:       userStyle,
	models.StyleSuccess:     lipgloss.NewStyle().Foreground(lipgloss.Color("#87D787")),
	models.StyleWarning:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F")),
	models.StyleError:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true),
}

// EngineFactory starts a fresh, initialized session. /restart calls it again.
type EngineFactory func() *engine.Engine

type model struct {
	newEngine     EngineFactory
	engine        *engine.Engine
	transcript    *models.Transcript
	transcriptDir string
	logger        *zap.Logger

	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
}

func NewModel(newEngine EngineFactory, transcriptDir string, logger *zap.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "What are your orders, captain?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 60

	if logger == nil {
		logger = zap.NewNop()
	}
	m := model{
		newEngine:     newEngine,
		transcriptDir: transcriptDir,
		logger:        logger,
		textInput:     ti,
		viewport:      viewport.New(80, 20),
	}
	m.startSession()
	return m
}

func (m *model) startSession() {
	m.engine = m.newEngine()
	m.transcript = &models.Transcript{
		SessionID: uuid.NewString(),
		Captain:   m.engine.PlayerName(),
		Ship:      m.engine.ShipName(),
		StartedAt: time.Now(),
	}
	m.gameLog = ""
	m.record("", m.engine.Welcome())
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			action := strings.TrimSpace(m.textInput.Value())
			if action == "" {
				return m, nil
			}
			m.textInput.Reset()

			switch strings.ToLower(action) {
			case "/quit", "quit", "exit":
				return m, tea.Quit
			case "/restart":
				m.startSession()
				m.refresh()
				return m, nil
			}

			m.gameLog += userStyle.Width(m.logWidth()).Render(m.engine.PlayerName()+"> "+action) + "\n"
			m.record(action, m.engine.SubmitCommand(action))
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.refresh()
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// record renders lines into the log and appends them to the transcript. A
// transcript that cannot be written is logged, never fatal.
func (m *model) record(command string, lines []models.Line) {
	m.gameLog += renderLines(lines, m.logWidth()) + "\n"

	m.transcript.Append(command, lines)
	if m.transcriptDir == "" {
		return
	}
	if err := m.transcript.Save(m.transcriptDir); err != nil {
		m.logger.Warn("failed to save transcript", zap.String("session", m.transcript.SessionID), zap.Error(err))
	}
}

func (m *model) refresh() {
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	if m.width == 0 {
		return 80
	}
	return int(float64(m.width) * 0.75)
}

func renderLines(lines []models.Line, width int) string {
	var b strings.Builder
	for _, l := range lines {
		style, ok := lineStyles[l.Style]
		if !ok {
			style = lineStyles[models.StyleNormal]
		}
		b.WriteString(style.Width(width).Render(l.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) View() string {
	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)

	help := helpStyle.Render("Commands: help, /restart, /quit, or just type what you want to do.")

	s := lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	)
	return "\n" + s + "\n"
}

func (m model) renderState() string {
	e := m.engine

	captain := titleStyle.Render("CAPTAIN") + "\n" + e.PlayerName() + "\n" + e.ShipName() + "\n\n"
	location := titleStyle.Render("LOCATION") + "\n" + e.LocationName() + "\n\n"
	stats := titleStyle.Render("LEDGER") + "\n" +
		fmt.Sprintf("Credits: %s\nDays: %d\nCargo: %d/%d\n\n",
			humanize.Comma(int64(e.Credits())), e.DaysElapsed(), e.CargoCount(), e.MaxCargo())

	snap := e.Snapshot()
	inventory := titleStyle.Render("CARGO") + "\n"
	if len(snap.Inventory) == 0 {
		inventory += "(empty)"
	} else {
		for _, c := range e.Universe().Commodities {
			if qty := snap.Inventory[c.ID]; qty > 0 {
				inventory += fmt.Sprintf("- %s x%d\n", c.Name, qty)
			}
		}
	}

	content := captain + location + stats + inventory

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// Run starts the interactive program.
func Run(newEngine EngineFactory, transcriptDir string, logger *zap.Logger) error {
	p := tea.NewProgram(NewModel(newEngine, transcriptDir, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

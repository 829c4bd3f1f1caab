package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/holdclock/internal/countdown"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// cardChrome is the horizontal space taken by Base margin, border and padding.
const cardChrome = 8

// MainModel is the root bubbletea model. It owns the reservation and tears
// it down before the program quits.
type MainModel struct {
	reservation ReservationModel
	keys        keyMap
	help        help.Model
	quitting    bool
	expired     bool
}

func NewMainModel(cd *countdown.Countdown, banner string, logger *zap.Logger) MainModel {
	return MainModel{
		reservation: NewReservationModel(cd, banner, logger),
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.reservation.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.reservation = m.reservation.Stop()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		// The reservation is drawn inside the base margin and the card border.
		msg.Width -= cardChrome
		m.reservation, cmd = m.reservation.Update(msg)
		return m, cmd
	case ExpiredMsg:
		if msg.ID == m.reservation.ID() {
			m.expired = true
			m.keys.Quit.SetHelp("q", "expired, press q to close")
		}
		return m, nil
	}

	m.reservation, cmd = m.reservation.Update(msg)
	return m, cmd
}

// Expired reports whether the reservation has run out.
func (m MainModel) Expired() bool {
	return m.expired
}

// Reservation exposes the countdown for callers that embed the model.
func (m MainModel) Reservation() ReservationModel {
	return m.reservation
}

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}
	theme := CurrentTheme
	var b strings.Builder
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	b.WriteString(card.Render(m.reservation.View()))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render(fmt.Sprintf("holdclock v%s", versionLabel())))
	return theme.Base.Render(b.String())
}

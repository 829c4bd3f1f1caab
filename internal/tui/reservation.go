package tui

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/akyairhashvil/holdclock/internal/config"
	"github.com/akyairhashvil/holdclock/internal/countdown"
	"github.com/akyairhashvil/holdclock/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is one firing of the reservation schedule. Ticks carry the id of
// the model that scheduled them and a tag so that a model only ever acts on
// the single tick it is waiting for.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// ExpiredMsg is sent once when a reservation reaches 00:00.
type ExpiredMsg struct {
	ID int
}

// ReservationModel renders a cart reservation countdown.
type ReservationModel struct {
	id       int
	tag      int
	cd       countdown.Countdown
	stopped  bool
	banner   string
	width    int
	interval time.Duration
	progress progress.Model
	logger   *zap.Logger
}

// NewReservationModel mounts a countdown. The schedule starts with Init.
func NewReservationModel(cd *countdown.Countdown, banner string, logger *zap.Logger) ReservationModel {
	if cd == nil {
		cd = countdown.Default()
	}
	if banner == "" {
		banner = config.DefaultBanner
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	p.Width = config.TargetProgressWidth
	return ReservationModel{
		id:       nextID(),
		cd:       *cd,
		banner:   banner,
		width:    config.DefaultWidth,
		interval: config.TickInterval,
		progress: p,
		logger:   logger,
	}
}

func (m ReservationModel) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}

func (m ReservationModel) Init() tea.Cmd {
	if m.stopped || m.cd.Done() {
		return nil
	}
	return m.tick()
}

func (m ReservationModel) Update(msg tea.Msg) (ReservationModel, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.handleTick(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	}
	return m, nil
}

func (m ReservationModel) handleTick(msg TickMsg) (ReservationModel, tea.Cmd) {
	if msg.ID != m.id || msg.tag != m.tag || m.stopped || m.cd.Done() {
		return m, nil
	}
	m.cd.Tick()
	m.tag++
	if m.cd.Done() {
		m.logger.Info("reservation expired", zap.Int("id", m.id))
		id := m.id
		return m, func() tea.Msg { return ExpiredMsg{ID: id} }
	}
	m.logger.Debug("reservation tick", zap.Int("id", m.id), zap.String("remaining", m.cd.Remaining().String()))
	return m, m.tick()
}

func (m ReservationModel) handleWindowSize(msg tea.WindowSizeMsg) ReservationModel {
	if msg.Width <= 0 {
		return m
	}
	m.width = msg.Width
	m.progress.Width = util.Clamp(msg.Width-4, config.MinProgressWidth, config.TargetProgressWidth)
	return m
}

// Stop tears the schedule down. Ticks already queued are ignored once they
// arrive. Stopping twice is a no-op.
func (m ReservationModel) Stop() ReservationModel {
	if m.stopped {
		return m
	}
	m.stopped = true
	m.tag++
	m.logger.Debug("reservation stopped", zap.Int("id", m.id), zap.String("remaining", m.cd.Remaining().String()))
	return m
}

func (m ReservationModel) ID() int { return m.id }

func (m ReservationModel) Remaining() countdown.RemainingTime { return m.cd.Remaining() }

func (m ReservationModel) Done() bool { return m.cd.Done() }

func (m ReservationModel) Stopped() bool { return m.stopped }

func (m ReservationModel) View() string {
	theme := CurrentTheme
	var b strings.Builder

	banner := m.banner
	if m.width > 0 && ansi.StringWidth(banner) > m.width {
		banner = ansi.Truncate(banner, m.width, config.TruncationSuffix)
	}
	b.WriteString(theme.Banner.Render(banner))
	b.WriteString("\n\n")

	rt := m.cd.Remaining()
	line := strings.Replace(ReservedLine(rt), rt.String(), theme.Timer.Render(rt.String()), 1)
	b.WriteString(theme.Message.Render(line))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.cd.Fraction()))

	if m.cd.Done() {
		b.WriteString("\n\n")
		b.WriteString(theme.Expired.Render(config.ExpiredMessage))
	}
	return b.String()
}

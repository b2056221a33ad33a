package browse

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bnema/pharmacy-intel-cli/internal/application"
	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DefaultDebounce = 250 * time.Millisecond

// The browse view drives one QueryController from bubbletea's event loop.
// Fetches run as commands on background goroutines; their results come
// back through Update as resultMsg values carrying the request ticket, so
// the controller's sequence guard decides which response wins. Free-text
// keystrokes are debounced before they become criteria changes rather
// than fetching on every keystroke.

type Options struct {
	Debounce time.Duration
	// ExportPath receives the CSV download triggered from the view.
	ExportPath string
}

type resultMsg struct {
	ticket application.RequestTicket
	page   domain.ResultPage
	err    error
}

type debounceMsg struct {
	seq int
}

type exportDoneMsg struct {
	path    string
	written int64
	err     error
}

const (
	fieldSearch = iota
	fieldState
	fieldCity
	fieldZip
	fieldCount
)

type Model struct {
	ctx      context.Context
	ctrl     *application.QueryController
	export   application.ExportAction
	sessions *application.SessionStore
	opts     Options
	styles   styles

	inputs  []textinput.Model
	focused int
	spinner spinner.Model

	debounceSeq int
	authExpired bool
	exportNote  string
	quitting    bool
}

func New(ctx context.Context, ctrl *application.QueryController, export application.ExportAction, sessions *application.SessionStore, opts Options) Model {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.ExportPath == "" {
		opts.ExportPath = "pharmacies_export.csv"
	}

	criteria := ctrl.Criteria()

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = ""
		inputs[i].CharLimit = 64
	}
	inputs[fieldSearch].Placeholder = "name, NPI, city..."
	inputs[fieldSearch].SetValue(criteria.Search)
	inputs[fieldState].Placeholder = "state"
	inputs[fieldState].CharLimit = 2
	inputs[fieldState].SetValue(criteria.State)
	inputs[fieldCity].Placeholder = "city"
	inputs[fieldCity].SetValue(criteria.City)
	inputs[fieldZip].Placeholder = "zip"
	inputs[fieldZip].CharLimit = 10
	inputs[fieldZip].SetValue(criteria.ZipPrefix)
	inputs[fieldSearch].Focus()

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		export:   export,
		sessions: sessions,
		opts:     opts,
		styles:   newStyles(),
		inputs:   inputs,
		spinner:  s,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd(m.ctrl.Start()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case debounceMsg:
		if msg.seq != m.debounceSeq {
			return m, nil
		}
		return m, m.applyInputs()

	case resultMsg:
		if !m.ctrl.Resolve(msg.ticket, msg.page, msg.err) {
			return m, nil
		}
		var authErr *domain.AuthError
		if errors.As(msg.err, &authErr) {
			// The session died under us; clear it and fall back to login.
			m.sessions.Logout(m.ctx)
			m.authExpired = true
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.exportNote = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.exportNote = fmt.Sprintf("exported %d bytes to %s", msg.written, msg.path)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.inputs[m.focused].Blur()
		m.focused = (m.focused + 1) % fieldCount
		return m, m.inputs[m.focused].Focus()

	case "shift+tab":
		m.inputs[m.focused].Blur()
		m.focused = (m.focused + fieldCount - 1) % fieldCount
		return m, m.inputs[m.focused].Focus()

	case "left":
		if ticket, ok := m.ctrl.PrevPage(); ok {
			return m, m.fetchCmd(ticket)
		}
		return m, nil

	case "right":
		if ticket, ok := m.ctrl.NextPage(); ok {
			return m, m.fetchCmd(ticket)
		}
		return m, nil

	case "ctrl+t":
		if ticket, ok := m.ctrl.SetIndependentOnly(!m.ctrl.Criteria().IndependentOnly); ok {
			return m, m.fetchCmd(ticket)
		}
		return m, nil

	case "ctrl+r":
		if m.ctrl.Err() != nil {
			return m, m.fetchCmd(m.ctrl.Retry())
		}
		return m, nil

	case "ctrl+e":
		return m, m.exportCmd()
	}

	before := m.inputs[m.focused].Value()
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

	if m.inputs[m.focused].Value() != before {
		m.debounceSeq++
		seq := m.debounceSeq
		debounce := tea.Tick(m.opts.Debounce, func(time.Time) tea.Msg {
			return debounceMsg{seq: seq}
		})
		return m, tea.Batch(cmd, debounce)
	}

	return m, cmd
}

// applyInputs commits the debounced field values to the controller. Each
// changed field produces its own ticket; the last issued one supersedes
// the rest through the sequence guard.
func (m Model) applyInputs() tea.Cmd {
	var cmds []tea.Cmd

	if ticket, ok := m.ctrl.SetSearch(m.inputs[fieldSearch].Value()); ok {
		cmds = append(cmds, m.fetchCmd(ticket))
	}
	if ticket, ok := m.ctrl.SetState(m.inputs[fieldState].Value()); ok {
		cmds = append(cmds, m.fetchCmd(ticket))
	}
	if ticket, ok := m.ctrl.SetCity(m.inputs[fieldCity].Value()); ok {
		cmds = append(cmds, m.fetchCmd(ticket))
	}
	if ticket, ok := m.ctrl.SetZipPrefix(m.inputs[fieldZip].Value()); ok {
		cmds = append(cmds, m.fetchCmd(ticket))
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) fetchCmd(ticket application.RequestTicket) tea.Cmd {
	return func() tea.Msg {
		page, err := m.ctrl.Fetch(m.ctx, ticket)
		return resultMsg{ticket: ticket, page: page, err: err}
	}
}

func (m Model) exportCmd() tea.Cmd {
	criteria := m.ctrl.Criteria()
	path := m.opts.ExportPath
	export := m.export
	ctx := m.ctx

	return func() tea.Msg {
		out, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		defer out.Close()

		written, err := export.Run(ctx, criteria, out)
		return exportDoneMsg{path: path, written: written, err: err}
	}
}

// Run drives the view to completion. It reports domain.ErrLoginRequired
// when the session expired mid-browse so the caller can prompt for login.
func Run(ctx context.Context, ctrl *application.QueryController, export application.ExportAction, sessions *application.SessionStore, opts Options) error {
	p := tea.NewProgram(
		New(ctx, ctrl, export, sessions, opts),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	final, ok := finalModel.(Model)
	if !ok {
		return fmt.Errorf("unexpected final browse model type %T", finalModel)
	}
	if final.authExpired {
		return domain.ErrLoginRequired
	}

	return nil
}

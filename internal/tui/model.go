// Package tui animates a backtracking solve in the terminal. The solver
// runs on a worker goroutine and blocks on each step until this layer
// has read it; the frame delay lives here, never in the algorithm.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/usecase"
)

// KeyMap defines the animation key bindings.
type KeyMap struct {
	Quit  key.Binding
	Pause key.Binding
}

var keys = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "cancel"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pause"),
	),
}

type stepMsg ports.Step

type resultMsg usecase.SolveResult

// Model is the bubbletea model for one animated solve.
type Model struct {
	given   *domain.Board
	current domain.Board
	last    *ports.Step
	delay   time.Duration
	keys    KeyMap

	steps  <-chan ports.Step
	result <-chan usecase.SolveResult
	cancel context.CancelFunc

	paused bool
	done   bool
	final  *usecase.SolveResult
}

// New builds a model over an already-started solve stream.
func New(b *domain.Board, steps <-chan ports.Step, result <-chan usecase.SolveResult, cancel context.CancelFunc, delay time.Duration) Model {
	return Model{
		given:   b,
		current: *b,
		delay:   delay,
		keys:    keys,
		steps:   steps,
		result:  result,
		cancel:  cancel,
	}
}

func (m Model) Init() tea.Cmd { return m.nextStep() }

// nextStep sleeps the frame delay, then pulls one step. The sleep is the
// presentation layer throttling itself; the search runs at full speed
// between reads.
func (m Model) nextStep() tea.Cmd {
	delay := m.delay
	stepsCh, resultCh := m.steps, m.result
	return func() tea.Msg {
		time.Sleep(delay)
		s, ok := <-stepsCh
		if !ok {
			return resultMsg(<-resultCh)
		}
		return stepMsg(s)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		s := ports.Step(msg)
		m.current = s.Board
		m.last = &s
		if m.paused {
			return m, nil
		}
		return m, m.nextStep()

	case resultMsg:
		res := usecase.SolveResult(msg)
		m.done = true
		m.final = &res
		if res.Board != nil {
			m.current = *res.Board
			m.last = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			if m.done {
				return m, nil
			}
			m.paused = !m.paused
			if !m.paused {
				return m, m.nextStep()
			}
			return m, nil
		}
	}
	return m, nil
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

func (m Model) View() string {
	body := RenderBoard(&m.current, m.last)
	status := ""
	switch {
	case m.done && m.final.Err != nil:
		switch {
		case errors.Is(m.final.Err, solver.ErrUnsolvable):
			status = "no solution exists"
		case errors.Is(m.final.Err, solver.ErrCancelled):
			status = "cancelled"
		default:
			status = m.final.Err.Error()
		}
	case m.done:
		status = fmt.Sprintf("solved: %d steps, %d nodes, %v",
			m.final.Stats.Steps, m.final.Stats.Nodes, m.final.Stats.Duration.Round(time.Millisecond))
	case m.paused:
		status = "paused (space to resume, q to cancel)"
	case m.last != nil:
		status = fmt.Sprintf("step %d: %s %d at r%d c%d",
			m.last.Index, m.last.Kind, m.last.Digit, m.last.Cell.Row, m.last.Cell.Col)
	default:
		status = "searching..."
	}
	help := "q quit"
	if !m.done {
		help = "space pause, q cancel"
	}
	return body + "\n" + statusStyle.Render(status) + "\n" + statusStyle.Render(help) + "\n"
}

// Run streams a solve of b through a fresh bubbletea program and blocks
// until it finishes or the user cancels.
func Run(ctx context.Context, svc *usecase.Service, b *domain.Board, delay time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	steps, result := svc.StreamSolve(ctx, b)
	_, err := tea.NewProgram(New(b, steps, result, cancel, delay)).Run()
	return err
}

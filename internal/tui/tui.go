// Package tui prompts a player for betting decisions in the terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/poker"
)

// ErrQuit is returned when the player quits at a prompt.
var ErrQuit = errors.New("player quit")

// TurnInfo is what a player sees when it is their turn.
type TurnInfo struct {
	Player   string
	Street   game.Street
	Pot      int
	Stack    int
	Hole     poker.HoleCards
	Board    []poker.Card
	Strength float64 // Estimated equity against the players still in
	Samples  int     // Zero when no estimate was made
}

type stage int

const (
	stageAction stage = iota
	stageAmount
	stageContinue
)

// PromptModel is the Bubble Tea model for one decision: an action, then an
// amount for bets and raises.
type PromptModel struct {
	info   TurnInfo
	legal  game.Legal
	logger *log.Logger

	input textinput.Model
	stage stage
	kind  game.ActionKind

	action   game.Action
	message  string
	done     bool
	quitting bool
}

// NewPromptModel creates a model asking for a decision within legal.
func NewPromptModel(info TurnInfo, legal game.Legal, logger *log.Logger) *PromptModel {
	m := &PromptModel{
		info:   info,
		legal:  legal,
		logger: logger.WithPrefix("tui"),
		input:  newInput(),
		stage:  stageAction,
	}
	m.input.Placeholder = "Choose action: " + kindList(legal.Kinds)
	return m
}

// NewContinueModel creates a model that waits for Enter between hands.
func NewContinueModel(logger *log.Logger) *PromptModel {
	m := &PromptModel{
		logger: logger.WithPrefix("tui"),
		input:  newInput(),
		stage:  stageContinue,
	}
	m.input.Placeholder = "Enter to continue, 'quit' to exit"
	return m
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 60
	ti.PromptStyle = inputPromptStyle
	ti.TextStyle = inputTextStyle
	ti.Prompt = "> "
	return ti
}

// Init initializes the prompt
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the prompt
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if m.submit(text) {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles one line of input and reports whether the prompt is finished.
func (m *PromptModel) submit(text string) bool {
	m.message = ""
	if strings.EqualFold(text, "quit") || strings.EqualFold(text, "q") {
		m.quitting = true
		return true
	}

	switch m.stage {
	case stageContinue:
		m.done = true
		return true

	case stageAmount:
		amount, err := strconv.Atoi(text)
		if err != nil || amount <= 0 {
			m.message = fmt.Sprintf("Enter a whole number between %d and %d", m.legal.MinAmount, m.legal.MaxAmount)
			return false
		}
		return m.choose(game.Action{Kind: m.kind, Amount: amount})
	}

	// "raise 1200" gives the amount inline
	fields := strings.Fields(text)
	if len(fields) == 0 {
		m.message = "Please input a valid action"
		return false
	}
	kind, err := game.ParseActionKind(fields[0])
	if err != nil {
		m.message = "Please input a valid action"
		return false
	}
	if !m.legal.Allows(kind) {
		m.message = fmt.Sprintf("You cannot %s now", kind)
		return false
	}
	if !kind.HasAmount() {
		return m.choose(game.Action{Kind: kind})
	}
	m.kind = kind
	m.stage = stageAmount
	m.input.Placeholder = fmt.Sprintf("Enter %s amount (%d-%d)", kind, m.legal.MinAmount, m.legal.MaxAmount)
	if len(fields) > 1 {
		return m.submit(fields[1])
	}
	return false
}

func (m *PromptModel) choose(a game.Action) bool {
	if err := m.legal.Validate(a); err != nil {
		m.logger.Debug("Rejected action", "action", a, "error", err)
		m.message = strings.TrimPrefix(err.Error(), game.ErrIllegalAction.Error()+": ")
		return false
	}
	m.action = a
	m.done = true
	return true
}

// View renders the prompt
func (m *PromptModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var content strings.Builder
	if m.stage != stageContinue {
		content.WriteString(m.renderTurnInfo())
		content.WriteString("\n")
		content.WriteString(m.renderAvailableActions())
		content.WriteString("\n")
	}
	if m.message != "" {
		content.WriteString(foldStyle.Render(m.message))
		content.WriteString("\n")
	}
	content.WriteString(m.input.View())
	content.WriteString("\n")
	content.WriteString(hintStyle.Render("Enter to submit • Ctrl+C to quit"))
	content.WriteString("\n")
	return content.String()
}

func (m *PromptModel) renderTurnInfo() string {
	var b strings.Builder
	b.WriteString(statusStyle.Render(fmt.Sprintf("Pot: %d | %s's Stack: %d", m.info.Pot, m.info.Player, m.info.Stack)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s's turn with %s", m.info.Player, FormatCards(m.info.Hole.Cards())))
	if m.info.Street == game.Preflop {
		b.WriteString(hintStyle.Render(fmt.Sprintf(" %s (%s)", m.info.Hole.Class(), m.info.Hole.Categorize())))
	}
	b.WriteString("\n")
	b.WriteString("Board Cards: " + FormatCards(m.info.Board))
	if m.info.Samples > 0 {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(fmt.Sprintf("Hand strength: %.1f%%", m.info.Strength*100)))
		b.WriteString(hintStyle.Render(fmt.Sprintf(" (%d samples)", m.info.Samples)))
	}
	return b.String()
}

// renderAvailableActions renders the legal actions with their amounts
func (m *PromptModel) renderAvailableActions() string {
	var actions []string
	for _, kind := range m.legal.Kinds {
		switch kind {
		case game.Fold:
			actions = append(actions, foldStyle.Render("[fold]"))
		case game.Check:
			actions = append(actions, passiveStyle.Render("[check]"))
		case game.Call:
			actions = append(actions, passiveStyle.Render(fmt.Sprintf("[call %d]", m.legal.ToCall)))
		case game.Bet, game.Raise:
			actions = append(actions, aggressiveStyle.Render(fmt.Sprintf("[%s %d-%d]", kind, m.legal.MinAmount, m.legal.MaxAmount)))
		}
	}
	if len(actions) == 0 {
		actions = append(actions, hintStyle.Render("[no actions available]"))
	}
	return actionsStyle.Render("Actions: ") + strings.Join(actions, " ")
}

// Action returns the chosen action once the prompt is finished.
func (m *PromptModel) Action() (game.Action, bool) {
	return m.action, m.done && m.stage != stageContinue
}

// Quitting reports whether the player asked to quit.
func (m *PromptModel) Quitting() bool {
	return m.quitting
}

// Prompt runs a prompt until the player picks a legal action. Extra program
// options set the input and output.
func Prompt(ctx context.Context, info TurnInfo, legal game.Legal, logger *log.Logger, opts ...tea.ProgramOption) (game.Action, error) {
	final, err := run(ctx, NewPromptModel(info, legal, logger), opts)
	if err != nil {
		return game.Action{}, err
	}
	action, _ := final.Action()
	return action, nil
}

// Continue waits for the player to start the next hand. It returns false
// when they quit.
func Continue(ctx context.Context, logger *log.Logger, opts ...tea.ProgramOption) (bool, error) {
	_, err := run(ctx, NewContinueModel(logger), opts)
	if errors.Is(err, ErrQuit) {
		return false, nil
	}
	return err == nil, err
}

func run(ctx context.Context, m *PromptModel, opts []tea.ProgramOption) (*PromptModel, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	pm, ok := final.(*PromptModel)
	if !ok || pm.Quitting() {
		return nil, ErrQuit
	}
	return pm, nil
}

// FormatCards formats cards with colors
func FormatCards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "[]"
	}
	formatted := make([]string, len(cards))
	for i, card := range cards {
		if card.Suit.IsRed() {
			formatted[i] = redSuitStyle.Render(card.String())
		} else {
			formatted[i] = blackSuitStyle.Render(card.String())
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

func kindList(kinds []game.ActionKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

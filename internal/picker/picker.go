package picker

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/bzfm/internal/search"
	"github.com/nikbrunner/bzfm/internal/selector"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	markStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// chromeLines is the number of rows used by prompt, counter and footer.
const chromeLines = 4

// rowPrefixWidth is the cursor plus mark column in front of every row.
const rowPrefixWidth = 3

// Picker is a small fzf-like TUI for choosing among decorated lines.
type Picker struct {
	lines     []string
	multi     bool
	keys      KeyMap
	input     textinput.Model
	results   []search.Result
	cursor    int
	offset    int
	marked    []int // indexes into lines, in mark order
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a Picker over lines, pre-filtered by opts.Query.
func New(lines []string, opts selector.Options) Picker {
	input := textinput.New()
	input.Prompt = "> "
	input.SetValue(opts.Query)
	input.Focus()

	return Picker{
		lines:   lines,
		multi:   opts.Multi,
		keys:    DefaultKeyMap(),
		input:   input,
		results: search.Rank(lines, opts.Query),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.scroll()
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Cancel):
			p.cancelled = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Confirm):
			p.selected = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Up):
			p.move(-1)
			return p, nil

		case key.Matches(msg, p.keys.Down):
			p.move(1)
			return p, nil

		case key.Matches(msg, p.keys.Toggle):
			if p.multi && len(p.results) > 0 {
				p.toggle(p.results[p.cursor].Index)
				p.move(1)
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	before := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.results = search.Rank(p.lines, p.input.Value())
		p.cursor = 0
		p.offset = 0
	}
	return p, cmd
}

// move shifts the cursor by delta, wrapping around like fzf --cycle.
func (p *Picker) move(delta int) {
	n := len(p.results)
	if n == 0 {
		return
	}
	p.cursor = ((p.cursor+delta)%n + n) % n
	p.scroll()
}

// scroll keeps the cursor inside the visible window.
func (p *Picker) scroll() {
	visible := p.visibleRows()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+visible {
		p.offset = p.cursor - visible + 1
	}
}

func (p Picker) visibleRows() int {
	return max(p.height-chromeLines, 1)
}

func (p *Picker) toggle(index int) {
	for i, m := range p.marked {
		if m == index {
			p.marked = append(p.marked[:i], p.marked[i+1:]...)
			return
		}
	}
	p.marked = append(p.marked, index)
}

func (p Picker) isMarked(index int) bool {
	for _, m := range p.marked {
		if m == index {
			return true
		}
	}
	return false
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Prompt on top, as with fzf --reverse
	b.WriteString(p.input.View())
	b.WriteString("\n")
	b.WriteString(countStyle.Render(fmt.Sprintf("  %d/%d", len(p.results), len(p.lines))))
	if p.multi {
		b.WriteString(countStyle.Render(fmt.Sprintf(" (%d)", len(p.marked))))
	}
	b.WriteString("\n")

	end := min(p.offset+p.visibleRows(), len(p.results))
	for i := p.offset; i < end; i++ {
		result := p.results[i]

		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}
		mark := " "
		if p.isMarked(result.Index) {
			mark = markStyle.Render("*")
		}

		row := truncateANSI(highlight(result.Line, result.MatchedIndexes), p.width-rowPrefixWidth)
		b.WriteString(fmt.Sprintf("%s%s%s\n", cursor, mark, style.Render(row)))
	}

	// Footer
	b.WriteString("\n")
	hints := "↑/↓: move  enter: select  esc: cancel"
	if p.multi {
		hints = "↑/↓: move  tab: mark  enter: select  esc: cancel"
	}
	b.WriteString(hintStyle.Render(hints))

	return b.String()
}

// Selected returns the chosen lines: the marked ones in mark order, or the
// line under the cursor. Nil when cancelled or nothing matched.
func (p Picker) Selected() []string {
	if p.cancelled || !p.selected {
		return nil
	}
	if len(p.marked) > 0 {
		result := make([]string, len(p.marked))
		for i, idx := range p.marked {
			result[i] = p.lines[idx]
		}
		return result
	}
	if p.cursor < len(p.results) {
		return []string{p.results[p.cursor].Line}
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}

// Selector runs the Picker in-process. It satisfies selector.Selector.
type Selector struct {
	Input  io.Reader // defaults to the controlling terminal
	Output io.Writer // defaults to os.Stderr so stdout stays clean for shells
}

// Select runs the picker until the user confirms or cancels.
// Cancelling yields an empty selection.
func (s Selector) Select(lines []string, opts selector.Options) ([]string, error) {
	var output io.Writer = os.Stderr
	if s.Output != nil {
		output = s.Output
	}

	program := tea.NewProgram(New(lines, opts), s.programOptions(output)...)
	finalModel, err := program.Run()
	if err != nil {
		return nil, &selector.Error{Code: -1, Err: err}
	}

	finalPicker := finalModel.(Picker)
	if finalPicker.Cancelled() {
		return []string{}, nil
	}
	selected := finalPicker.Selected()
	if selected == nil {
		selected = []string{}
	}
	return selected, nil
}

// programOptions reads keys from the terminal itself unless Input is set:
// stdin may be a pipe inside $(...) or a shell widget.
func (s Selector) programOptions(output io.Writer) []tea.ProgramOption {
	input := tea.WithInputTTY()
	if s.Input != nil {
		input = tea.WithInput(s.Input)
	}
	return []tea.ProgramOption{input, tea.WithOutput(output)}
}

package tui

import (
	"fmt"
	"strings"

	"bithacks/internal/eval"
	"bithacks/pkg/bitint"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Width(22)
)

// Key bindings for the inspector.
var (
	keyQuit      = key.NewBinding(key.WithKeys("q", "ctrl+c"))
	keyIncrement = key.NewBinding(key.WithKeys("up", "k"))
	keyDecrement = key.NewBinding(key.WithKeys("down", "j"))
	keyShiftL    = key.NewBinding(key.WithKeys("left", "h"))
	keyShiftR    = key.NewBinding(key.WithKeys("right", "l"))
	keyNextPerm  = key.NewBinding(key.WithKeys("n"))
	keyFormat    = key.NewBinding(key.WithKeys("f"))
)

var formats = []eval.Format{eval.Hex, eval.Bin, eval.Dec}

// InspectorModel is the Bubble Tea model showing one 32-bit word and every
// bit trick applied to it.
type InspectorModel struct {
	word     uint32
	format   int // index into formats
	status   string
	viewport viewport.Model
	ready    bool
}

// NewInspectorModel creates an inspector starting at word.
func NewInspectorModel(word uint32, format eval.Format) InspectorModel {
	m := InspectorModel{word: word}
	for i, f := range formats {
		if f == format {
			m.format = i
		}
	}
	return m
}

// Word returns the word currently shown.
func (m InspectorModel) Word() uint32 {
	return m.word
}

// Init initializes the Bubble Tea model
func (m InspectorModel) Init() tea.Cmd {
	return nil
}

// Update handles input and updates the model
func (m InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.viewport.Style = lipgloss.NewStyle()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		m.viewport.SetContent(m.renderWord())

	case tea.KeyMsg:
		if key.Matches(msg, keyQuit) {
			return m, tea.Quit
		}

		m.status = ""
		switch {
		case key.Matches(msg, keyIncrement):
			m.word++
		case key.Matches(msg, keyDecrement):
			m.word--
		case key.Matches(msg, keyShiftL):
			m.word <<= 1
		case key.Matches(msg, keyShiftR):
			m.word >>= 1
		case key.Matches(msg, keyNextPerm):
			if next, ok := bitint.NextPermutationOK(m.word); ok {
				m.word = next
			} else {
				m.status = "no larger word with the same number of set bits"
			}
		case key.Matches(msg, keyFormat):
			m.format = (m.format + 1) % len(formats)
		}
		if m.ready {
			m.viewport.SetContent(m.renderWord())
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the UI
func (m InspectorModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := titleStyle.Render("Bit Inspector")
	help := infoStyle.Render("↑/↓: ±1 • ←/→: Shift • n: Next permutation • f: Format • q: Quit")
	if m.status != "" {
		help = highlightStyle.Render(m.status) + "\n" + help
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s", title, m.viewport.View(), help)
}

// renderWord formats the bit pattern and the result table.
func (m InspectorModel) renderWord() string {
	var sb strings.Builder
	f := formats[m.format]
	w := m.word

	sb.WriteString(highlightStyle.Render(eval.GroupBits(w, 32)))
	sb.WriteString("\n")
	sb.WriteString("lane 3   lane 2   lane 1   lane 0\n\n")

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	row("word", eval.FormatWord(uint64(w), f, 32))
	row("as int32", fmt.Sprintf("%d", int32(w)))
	row("pop_count", fmt.Sprintf("%d", bitint.PopCount(int32(w))))
	row("trailing zeros", fmt.Sprintf("%d", bitint.CountTrailingZeroBits(w)))
	row("is_power_of_2", fmt.Sprintf("%t", bitint.IsPowerOf2(int32(w))))
	row("has_zero_byte", fmt.Sprintf("%t", bitint.HasZeroByte(w)))

	x, y := bitint.DeinterleaveBits(w)
	row("morton x, y", fmt.Sprintf("%d, %d", x, y))

	if next, ok := bitint.NextPermutationOK(w); ok {
		row("next_permutation", eval.FormatWord(uint64(next), f, 32))
	} else {
		row("next_permutation", "none")
	}

	return sb.String()
}

// StartInspectorUI launches the Bubble Tea inspector.
func StartInspectorUI(word uint32, format eval.Format) error {
	p := tea.NewProgram(
		NewInspectorModel(word, format),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// Package ui provides the interactive search-as-you-type terminal UI.
//
// The UI is thin glue around the pipeline: every keystroke pushes the current
// input value into the query channel, and a background command waits on the
// pipeline's output subscription, feeding each published result back into the
// bubbletea update loop.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/guicastle/typeahead/internal/pipeline"
)

// resultMsg carries a freshly published pipeline result into the update loop.
type resultMsg pipeline.Result

// resultsClosedMsg signals that the pipeline output has closed.
type resultsClosedMsg struct{}

// Model is the bubbletea model for the search view.
type Model struct {
	input      textinput.Model
	channel    *pipeline.Channel
	results    <-chan pipeline.Result
	cancel     func()
	current    pipeline.Result
	maxResults int
	width      int
	height     int
	styles     Styles
	quitting   bool
}

// NewModel creates the search model over an already-wired channel and
// pipeline. maxResults caps the rendered list; 0 means no cap.
func NewModel(ch *pipeline.Channel, p *pipeline.Pipeline, maxResults int) Model {
	ti := textinput.New()
	ti.Placeholder = "type to search"
	ti.Prompt = "> "
	ti.Focus()

	results, cancel := p.Subscribe()

	return Model{
		input:      ti,
		channel:    ch,
		results:    results,
		cancel:     cancel,
		current:    p.Current(),
		maxResults: maxResults,
		styles:     DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForResult(m.results))
}

// waitForResult blocks on the output subscription and converts the next
// published value into a message.
func waitForResult(results <-chan pipeline.Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-results
		if !ok {
			return resultsClosedMsg{}
		}
		return resultMsg(r)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}

	case resultMsg:
		m.current = pipeline.Result(msg)
		return m, waitForResult(m.results)

	case resultsClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.channel.Push(after)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("typeahead"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.current.Failed() {
		b.WriteString(m.styles.Error.Render("lookup failed: " + m.current.Err.Error()))
		b.WriteString("\n")
	} else {
		items := m.current.Items
		shown := len(items)
		if m.maxResults > 0 && shown > m.maxResults {
			shown = m.maxResults
		}
		if rows := m.listHeight(); shown > rows {
			shown = rows
		}
		for _, item := range items[:shown] {
			b.WriteString(m.styles.Item.Render(item))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Count.Render(fmt.Sprintf("%d match(es)", len(items))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("esc/ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

// listHeight returns how many result rows fit in the current terminal.
func (m Model) listHeight() int {
	// Header, input, count line, help line and surrounding blanks take 8 rows.
	const chrome = 8
	if m.height <= chrome {
		return 10
	}
	return m.height - chrome
}

// Run wires the model into a bubbletea program and blocks until the user
// quits or the pipeline output closes.
func Run(ch *pipeline.Channel, p *pipeline.Pipeline, maxResults int) error {
	program := tea.NewProgram(NewModel(ch, p, maxResults), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

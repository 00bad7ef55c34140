// Package tui renders the landing screen in a terminal with Bubble Tea.
// It mirrors the web page: the model owns the theme flag, the text input
// owns the search text, and searches go to the same Searcher collaborator.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gosearch/models"
)

const (
	searchTimeout = 5 * time.Second

	logoText   = "G o o g l e"
	heading    = "Bienvenido a Google"
	subheading = "Busca en la web o explora tus sitios favoritos"
)

// searchDoneMsg reports the result of one search command
type searchDoneMsg struct {
	outcome models.SearchOutcome
	err     error
}

// Model is the Bubble Tea model of the landing screen
type Model struct {
	theme    models.Theme
	input    textinput.Model
	links    []models.SocialLink
	searcher models.Searcher

	status string
	width  int
	height int
}

// New creates the screen in light mode with a focused, empty input
func New(searcher models.Searcher) Model {
	if searcher == nil {
		searcher = models.LogSearcher{}
	}

	ti := textinput.New()
	ti.Prompt = "🔍 "
	ti.Placeholder = "Buscar en Google o escribir una URL"
	ti.Width = 40
	ti.Focus()

	return Model{
		input:    ti,
		links:    models.DefaultSocialLinks(),
		searcher: searcher,
	}
}

// Theme is the current theme flag
func (m Model) Theme() models.Theme { return m.theme }

// Query is the current text of the search input
func (m Model) Query() string { return m.input.Value() }

// Status is the last search result line
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case searchDoneMsg:
		if msg.err != nil {
			m.status = "error: " + msg.err.Error()
		} else {
			m.status = msg.outcome.Message
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Toggle):
			m.theme = m.theme.Toggle()
			return m, nil
		case key.Matches(msg, keys.Submit):
			// Text stays in the input after submission
			return m, m.search(m.input.Value(), models.SourceForm)
		case key.Matches(msg, keys.Secondary):
			// Like the web action row, this ignores the typed text
			return m, m.search("", models.SourceSecondary)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// search builds a command that runs exactly one query
func (m Model) search(text string, source models.SearchSource) tea.Cmd {
	q := models.NewSearchQuery(text, source, m.theme)
	searcher := m.searcher

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		outcome, err := searcher.Search(ctx, q)
		return searchDoneMsg{outcome: outcome, err: err}
	}
}

func (m Model) View() string {
	p := paletteFor(m.theme)

	chips := make([]string, 0, len(m.links))
	for _, link := range m.links {
		chips = append(chips, p.chip.Render(link.Name+" "+link.URL))
	}

	toggle := "☾ Dark Mode"
	if m.theme.IsDark() {
		toggle = "☀ Light Mode"
	}

	help := make([]string, 0, len(keys.bindings()))
	for _, b := range keys.bindings() {
		help = append(help, b.Help().Key+" "+b.Help().Desc)
	}

	sections := []string{
		p.logo.Render(logoText),
		"",
		p.heading.Render(heading),
		p.text.Render(subheading),
		"",
		p.input.Render(m.input.View()),
		"",
		lipgloss.JoinVertical(lipgloss.Center, chips...),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			p.button.Render("[ Me siento con suerte ]"),
			p.button.Render("[ Buscar con Google ]"),
		),
		"",
		p.chip.Render(toggle),
	}
	if m.status != "" {
		sections = append(sections, "", p.status.Render(m.status))
	}
	sections = append(sections, "", p.help.Render(strings.Join(help, " • ")))

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return body
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(backgroundFor(m.theme)))
}

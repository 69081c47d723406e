// Package demo is the interactive showcase TUI: a product catalog rendered
// through the carousel widget, with a status bar, contextual help, and a
// jump-to-item prompt exercising the imperative control surface.
package demo

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/slidekit/slidekit/internal/carousel"
	"github.com/slidekit/slidekit/internal/catalog"
	"github.com/slidekit/slidekit/internal/config"
)

// chromeHeight is the number of rows reserved above and below the carousel
// for the title, status bar, and help line.
const chromeHeight = 4

// keyMap holds the demo-level bindings; carousel navigation keys live on the
// widget itself.
type keyMap struct {
	Jump key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Jump: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "jump to item"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Jump, k.Help, k.Quit}}
}

// Model is the demo application model.
type Model struct {
	products []catalog.Product
	slider   *carousel.Model
	handle   *carousel.Handle

	help      help.Model
	input     textinput.Model
	keys      keyMap
	prompting bool
	status    string

	width  int
	height int

	logger zerolog.Logger
}

// New builds the demo over the given catalog and config.
func New(cfg *config.Config, products []catalog.Product, logger zerolog.Logger) *Model {
	slider := carousel.New(
		catalog.Items(products),
		cardRenderer(cfg.Catalog.Currency),
		cfg.Slider.ToOptions(),
	)
	slider.SetLogger(logger.With().Str("component", "carousel").Logger())

	input := textinput.New()
	input.Placeholder = "item id or index"
	input.CharLimit = 64
	input.Width = 32

	m := &Model{
		products: products,
		slider:   slider,
		handle:   carousel.NewHandle(slider),
		help:     help.New(),
		input:    input,
		keys:     defaultKeyMap(),
		logger:   logger.With().Str("component", "demo").Logger(),
	}
	m.slider.SetOnChange(m.slideChanged)
	m.slideChanged(0)
	return m
}

// slideChanged is the carousel change callback; it refreshes the status bar.
func (m *Model) slideChanged(index int) {
	if len(m.products) == 0 {
		m.status = "catalog is empty"
		return
	}
	name := ""
	if index >= 0 && index < len(m.products) {
		name = m.products[index].Name
	}
	m.status = fmt.Sprintf("%d/%d  %s", index+1, len(m.products), name)
	m.logger.Debug().Int("index", index).Msg("slide changed")
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.slider.Init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, cmd := m.slider.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: msg.Height - chromeHeight,
		})
		return m, cmd

	case tea.KeyMsg:
		if m.prompting {
			return m, m.handlePromptKey(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Jump):
			m.prompting = true
			m.input.Reset()
			return m, m.input.Focus()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	_, cmd := m.slider.Update(msg)
	return m, cmd
}

// handlePromptKey runs the jump-to-item prompt. Enter accepts an item
// identifier or a numeric index; escape cancels.
func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEscape:
		m.prompting = false
		m.input.Blur()
		return nil

	case tea.KeyEnter:
		m.prompting = false
		m.input.Blur()
		return m.jumpTo(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// jumpTo drives the imperative facade: numeric input scrolls to an index,
// anything else is treated as an item identifier.
func (m *Model) jumpTo(value string) tea.Cmd {
	if value == "" {
		return nil
	}

	if index, err := strconv.Atoi(value); err == nil {
		if index < 0 || index >= len(m.products) {
			m.status = fmt.Sprintf("index %d out of range", index)
			return nil
		}
		return m.handle.ScrollToIndex(index)
	}

	cmd := m.handle.ScrollToItem(value)
	if cmd == nil && m.itemIndex(value) == -1 {
		m.status = fmt.Sprintf("no item %q", value)
	}
	return cmd
}

func (m *Model) itemIndex(id string) int {
	for i, p := range m.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	title := titleStyle.Render("slidekit catalog")

	var footer string
	if m.prompting {
		footer = promptStyle.Render("jump: " + m.input.View())
	} else {
		footer = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.slider.View(),
		statusStyle.Render(m.status),
		footer,
	)
}

// StaticView renders one non-interactive frame at the given width, used when
// stdout is not a terminal.
func (m *Model) StaticView(width int) string {
	m.width = width
	m.slider.SetSize(width, 0)
	return m.View()
}

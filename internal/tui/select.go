// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkorhonen/alexandria/internal/library"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in the picker.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionConfirmed indicates the user confirmed the marked records.
	ActionConfirmed
	// ActionCancelled indicates the user backed out without confirming.
	ActionCancelled
)

// SelectionResult holds the result of picking books in the TUI.
type SelectionResult struct {
	Action SelectionAction
	Keys   map[string]bool
}

type bookItem struct {
	library.Book
}

func (i bookItem) FilterValue() string {
	return i.Title
}

type itemStyles struct {
	normal     lipgloss.Style
	selected   lipgloss.Style
	titleStyle lipgloss.Style
	metaStyle  lipgloss.Style
	markStyle  lipgloss.Style
	tagStyle   lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		metaStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
		markStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		tagStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")),
	}
}

type bookDelegate struct {
	styles *itemStyles
	marked map[string]bool
}

func newDelegate(marked map[string]bool) bookDelegate {
	styles := newItemStyles()
	return bookDelegate{styles: &styles, marked: marked}
}

func (d bookDelegate) Height() int                         { return 4 }
func (d bookDelegate) Spacing() int                        { return 1 }
func (d bookDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d bookDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	book, ok := item.(bookItem)
	if !ok {
		return
	}

	mark := "[ ]"
	if d.marked[book.Key] {
		mark = "[x]"
	}

	titleLine := lipgloss.JoinHorizontal(
		lipgloss.Left,
		d.styles.markStyle.Render(mark+" "),
		d.styles.titleStyle.Render(book.Title),
	)
	metaLine := d.styles.metaStyle.Render(formatMeta(book.Book, m.Width()-4))
	tagLine := d.styles.tagStyle.Render(strings.Join(book.Tags, ", "))

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, metaLine, tagLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

type model struct {
	list   list.Model
	prompt string
	marked map[string]bool
	result SelectionResult
}

func newModel(prompt string, books []library.Book) *model {
	listItems := make([]list.Item, len(books))
	for i, b := range books {
		listItems[i] = bookItem{Book: b}
	}

	marked := make(map[string]bool)

	delegate := newDelegate(marked)
	l := list.New(listItems, delegate, defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		list:   l,
		prompt: prompt,
		marked: marked,
		result: SelectionResult{
			Action: ActionNone,
		},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			if item, ok := m.list.SelectedItem().(bookItem); ok {
				if m.marked[item.Key] {
					delete(m.marked, item.Key)
				} else {
					m.marked[item.Key] = true
				}
			}
			return m, nil
		case "enter":
			keys := make(map[string]bool, len(m.marked))
			for k := range m.marked {
				keys[k] = true
			}
			m.result = SelectionResult{
				Action: ActionConfirmed,
				Keys:   keys,
			}
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.result = SelectionResult{Action: ActionCancelled}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := headerStyle.Render(m.prompt)
	listView := m.list.View()
	help := helpStyle.Render("Up/Down navigate | Space mark | Enter confirm | q cancel")
	return lipgloss.JoinVertical(lipgloss.Left, header, listView, help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// PickBooks presents an interactive multi-select over the given books and
// returns the keys the user marked. An empty input yields a cancelled
// result without showing the UI.
func PickBooks(prompt string, books []library.Book) (SelectionResult, error) {
	if len(books) == 0 {
		return SelectionResult{Action: ActionCancelled}, nil
	}

	m := newModel(prompt, books)
	finalModel, err := runProgram(m)
	if err != nil {
		return SelectionResult{}, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.result, nil
	}

	return SelectionResult{}, fmt.Errorf("unexpected program result")
}

// formatMeta creates the metadata line with author, year, and genre
func formatMeta(book library.Book, availableWidth int) string {
	var parts []string

	if book.Author != "" {
		parts = append(parts, book.Author)
	}
	if book.Year != "" {
		parts = append(parts, book.Year)
	}
	if book.Genre != "" {
		parts = append(parts, book.Genre)
	}

	if len(parts) == 0 {
		return "No details available"
	}

	meta := strings.Join(parts, " | ")
	if availableWidth > 0 && len(meta) > availableWidth {
		meta = truncate(meta, availableWidth)
	}

	return meta
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	if width <= 0 || len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}

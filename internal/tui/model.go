// Package tui implements the interactive menu for managing a library.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/bookshelf"
)

const appTitle = "Library Management System"

type screen int

const (
	screenMenu screen = iota
	screenPrompt
)

type menuItem struct {
	title  string
	desc   string
	action action
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	lib   bookshelf.Library

	scr  screen
	menu list.Model

	// prompt state
	active  menuItem
	prompts []prompt
	answers []string
	input   textinput.Model

	result  string
	failed  bool
	running bool
}

func newModel(lib bookshelf.Library, theme Theme) model {
	items := []list.Item{
		menuItem{"Add Book", "Add a book or replace an existing one", actionAdd},
		menuItem{"Search Book", "Show the location and quantity of a title", actionSearch},
		menuItem{"Display Books (Sorted)", "List every book sorted by title", actionList},
		menuItem{"Save Library State", "Write the catalog to a file", actionSave},
		menuItem{"Load Library State", "Replace the catalog from a file", actionLoad},
		menuItem{"Borrow Book", "Take one copy of a title", actionBorrow},
		menuItem{"Return Book", "Give back one copy of a title", actionReturn},
		menuItem{"Exit", "Leave the menu", actionExit},
	}

	l := list.New(items, list.NewDefaultDelegate(), 60, 20)
	l.Title = appTitle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.CharLimit = 256

	return model{
		theme: theme,
		lib:   lib,
		scr:   screenMenu,
		menu:  l,
		input: ti,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-12)
		m.input.Width = msg.Width - 8
		return m, nil

	case resultMsg:
		m.running = false
		if msg.err != nil {
			m.result = describe(m.active.action, msg.err)
			m.failed = true
		} else {
			m.result = msg.text
			m.failed = false
		}
		m.reset()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.scr == screenPrompt {
				m.reset()
				return m, nil
			}

		case "q":
			if m.scr == screenMenu && m.menu.FilterState() == list.Unfiltered {
				return m, tea.Quit
			}

		case "enter":
			switch m.scr {
			case screenMenu:
				if m.menu.FilterState() == list.Filtering {
					break
				}
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				return m.choose(it)
			case screenPrompt:
				return m.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenMenu:
		m.menu, cmd = m.menu.Update(msg)
	case screenPrompt:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// choose starts the selected action, asking its questions first when it has any.
func (m model) choose(it menuItem) (tea.Model, tea.Cmd) {
	if it.action == actionExit {
		return m, tea.Quit
	}

	m.active = it
	m.prompts = it.action.prompts(m.lib.Path())
	m.answers = m.answers[:0]
	if len(m.prompts) == 0 {
		m.running = true
		return m, cmdRun(m.lib, it.action, nil)
	}

	m.scr = screenPrompt
	m.setPrompt(m.prompts[0])
	return m, m.input.Focus()
}

// submit records the current answer and moves to the next question or runs the action.
func (m model) submit() (tea.Model, tea.Cmd) {
	m.answers = append(m.answers, m.input.Value())
	if len(m.answers) < len(m.prompts) {
		m.setPrompt(m.prompts[len(m.answers)])
		return m, nil
	}

	m.input.Blur()
	m.running = true
	answers := append([]string(nil), m.answers...)
	return m, cmdRun(m.lib, m.active.action, answers)
}

func (m *model) setPrompt(p prompt) {
	m.input.Reset()
	m.input.Prompt = p.label + ": "
	m.input.Placeholder = p.placeholder
}

func (m *model) reset() {
	m.scr = screenMenu
	m.prompts = nil
	m.answers = nil
	m.input.Reset()
	m.input.Blur()
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render(appTitle) + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%d titles • %s", len(m.lib.List()), m.workingFile())) + "\n"

	var body, help string
	switch m.scr {
	case screenMenu:
		body = m.theme.Card.Render(m.menu.View())
		help = m.theme.Help.Render("↑/↓ navigate • enter select • / search • q quit")

	case screenPrompt:
		var sb strings.Builder
		sb.WriteString(m.theme.Title.Render(m.active.title))
		sb.WriteString("\n\n")
		for i, answer := range m.answers {
			sb.WriteString(m.theme.Help.Render(m.prompts[i].label + ": " + answer))
			sb.WriteString("\n")
		}
		sb.WriteString(m.theme.Prompt.Render(m.input.View()))
		body = m.theme.Card.Render(sb.String())
		help = m.theme.Help.Render("enter confirm • esc cancel")
	}

	out := header + "\n" + body + "\n" + help
	if m.result != "" {
		style := m.theme.Result
		if m.failed {
			style = m.theme.Error
		}
		out += "\n\n" + style.Render(m.result)
	}
	return wrap.Render(out)
}

func (m model) workingFile() string {
	if path := m.lib.Path(); path != "" {
		return path
	}
	return "no working file"
}

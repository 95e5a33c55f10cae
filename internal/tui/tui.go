// Package tui provides the interactive terminal client. It renders the
// todostore state as a list; every change to the store (including the
// optimistic toggle flip) is pushed into the program as a message, so the
// screen updates before the server round trip completes.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mesh-intelligence/todolist/pkg/todostore"
)

// storeChangedMsg signals that the todostore state changed.
type storeChangedMsg struct{}

// opDoneMsg signals that a store operation's round trip finished.
type opDoneMsg struct{}

// listItem adapts a todostore.Todo to bubbles/list.Item.
type listItem struct {
	todo todostore.Todo
}

func (i listItem) Title() string {
	box := boxUnchecked
	if i.todo.Completed {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.todo.Text)
}
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Text }

// itemDelegate renders each todo on a single line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Text
	if it.todo.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type model struct {
	ctx   context.Context
	store *todostore.Store

	list   list.Model
	adding bool
	input  textinput.Model
}

// Run starts the interactive list over the given store and blocks until
// the user quits.
func Run(ctx context.Context, store *todostore.Store) error {
	m := newModel(ctx, store)
	p := tea.NewProgram(m, tea.WithAltScreen())

	unsubscribe := store.Subscribe(func() {
		p.Send(storeChangedMsg{})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}

func newModel(ctx context.Context, store *todostore.Store) model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Todos"
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("todo", "todos")

	ti := textinput.New()
	ti.Prompt = "new todo: "
	ti.CharLimit = 200

	return model{ctx: ctx, store: store, list: l, input: ti}
}

func (m model) Init() tea.Cmd {
	return m.op(func() error { return m.store.Refresh(m.ctx) })
}

// op runs a blocking store call off the UI goroutine.
func (m model) op(call func() error) tea.Cmd {
	return func() tea.Msg {
		_ = call()
		return opDoneMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case storeChangedMsg, opDoneMsg:
		m.syncItems()
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		// Let the list handle keys while filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.adding = true
			m.input.SetValue("")
			return m, m.input.Focus()
		case "r":
			return m, m.op(func() error { return m.store.Refresh(m.ctx) })
		case "enter":
			if it, ok := m.list.SelectedItem().(listItem); ok {
				id := it.todo.ID
				return m, m.op(func() error { return m.store.Toggle(m.ctx, id) })
			}
		case "d":
			if it, ok := m.list.SelectedItem().(listItem); ok {
				id := it.todo.ID
				return m, m.op(func() error { return m.store.Remove(m.ctx, id) })
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateAdding handles keys while the inline add input is open.
func (m model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.adding = false
		if text == "" {
			return m, nil
		}
		return m, m.op(func() error { return m.store.Add(m.ctx, text) })
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// syncItems rebuilds the list from the store snapshot.
func (m *model) syncItems() {
	todos := m.store.Todos()
	items := make([]list.Item, len(todos))
	for i, t := range todos {
		items[i] = listItem{todo: t}
	}
	m.list.SetItems(items)

	done := 0
	for _, t := range todos {
		if t.Completed {
			done++
		}
	}
	m.list.Title = fmt.Sprintf("Todos  %s %d/%d", successStyle.Render("✔"), done, len(todos))
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	if m.adding {
		b.WriteString("\n" + m.input.View())
	}
	if err := m.store.MutationErr(); err != nil {
		b.WriteString("\n" + errorStyle.Render("action failed: "+err.Error()))
	} else if err := m.store.FetchErr(); err != nil {
		b.WriteString("\n" + errorStyle.Render("refresh failed: "+err.Error()))
	}
	return b.String()
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"video-share-api/internal/treeview"
)

// mode is the input state of the viewer
type mode int

const (
	modeBrowse mode = iota
	modeCompose
	modeReply
	modeEdit
)

const requestTimeout = 10 * time.Second

var (
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	authorStyle = lipgloss.NewStyle().
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// loadedMsg signals the thread finished (re)loading
type loadedMsg struct{ err error }

// actionDoneMsg signals a mutation finished; the tree already holds the result
type actionDoneMsg struct {
	status string
	err    error
}

// Model is the bubbletea model for the comment thread viewer
type Model struct {
	tree    *treeview.Tree
	author  string
	videoID string

	rows   []treeview.Node
	cursor int

	mode  mode
	input string

	status   string
	loading  bool
	quitting bool
}

// NewModel creates a thread viewer over a loaded-or-empty tree
func NewModel(tree *treeview.Tree, videoID, author string) Model {
	return Model{
		tree:    tree,
		author:  author,
		videoID: videoID,
		loading: true,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	tree := m.tree
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return loadedMsg{err: tree.Load(ctx)}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = errorStyle.Render("load failed: " + msg.err.Error())
		} else {
			m.status = ""
		}
		m.refreshRows()
		return m, nil

	case actionDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.status = errorStyle.Render(msg.err.Error())
		} else {
			m.status = statusStyle.Render(msg.status)
			m.mode = modeBrowse
			m.input = ""
		}
		m.refreshRows()
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "g", "home":
		m.cursor = 0

	case "G", "end":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}

	case "R":
		m.loading = true
		return m, m.load()

	case "c":
		m.tree.CloseReplyBox()
		m.tree.CancelEdit()
		m.mode = modeCompose
		m.input = ""
		m.status = ""

	case "r":
		if row := m.currentRow(); row != nil {
			m.tree.CancelEdit()
			m.tree.ToggleReplyBox(row.Comment.CommentID)
			if m.tree.ActiveReplyID() != nil {
				m.mode = modeReply
				m.input = ""
			}
			m.status = ""
		}

	case "e":
		if row := m.currentRow(); row != nil {
			m.tree.CloseReplyBox()
			if m.tree.BeginEdit(row.Comment.CommentID) {
				m.mode = modeEdit
				m.input = row.Comment.Text
			}
			m.status = ""
		}

	case "d":
		if row := m.currentRow(); row != nil {
			id := row.Comment.CommentID
			tree := m.tree
			m.loading = true
			return m, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
				defer cancel()
				deleted, err := tree.Delete(ctx, id)
				if err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{status: fmt.Sprintf("deleted %d comment(s)", deleted)}
			}
		}
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.tree.CloseReplyBox()
		m.tree.CancelEdit()
		m.mode = modeBrowse
		m.input = ""
		return m, nil

	case "enter":
		return m.submitInput()

	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil

	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.input += " "
		}
		return m, nil
	}
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	text := m.input
	if strings.TrimSpace(text) == "" {
		m.status = errorStyle.Render("text must not be blank")
		return m, nil
	}

	tree := m.tree
	author := m.author
	m.loading = true

	switch m.mode {
	case modeCompose:
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			if _, err := tree.PostComment(ctx, author, text, ""); err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: "comment posted"}
		}

	case modeReply:
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			if _, err := tree.PostReply(ctx, author, text, ""); err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: "reply posted"}
		}

	case modeEdit:
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			if err := tree.SaveEdit(ctx, text); err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: "comment updated"}
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(authorStyle.Render("comments for "+m.videoID) + "\n\n")

	if m.loading {
		b.WriteString("loading...\n")
	}

	if len(m.rows) == 0 && !m.loading {
		b.WriteString(helpStyle.Render("no comments yet") + "\n")
	}

	for i, row := range m.rows {
		b.WriteString(m.renderRow(i, row))
	}

	if m.mode == modeCompose {
		b.WriteString("\n" + inputStyle.Render("new comment: "+m.input+"_") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("j/k move  c comment  r reply  e edit  d delete  R reload  q quit") + "\n")
	return b.String()
}

func (m Model) renderRow(i int, row treeview.Node) string {
	indent := strings.Repeat("  ", row.Depth)

	marker := "  "
	if i == m.cursor {
		marker = cursorStyle.Render("> ")
	}

	author := authorStyle.Render(row.Comment.Author)
	if row.Comment.AvatarColor != "" {
		author = authorStyle.Foreground(lipgloss.Color(row.Comment.AvatarColor)).Render(row.Comment.Author)
	}

	line := fmt.Sprintf("%s%s%s  %s %s\n",
		indent, marker, author,
		row.Comment.Text,
		timeStyle.Render(row.Comment.CreatedAt.Format("2006-01-02 15:04")),
	)

	var extra string
	if active := m.tree.ActiveReplyID(); m.mode == modeReply && active != nil && *active == row.Comment.CommentID {
		extra = indent + "  " + inputStyle.Render("reply: "+m.input+"_") + "\n"
	}
	if editing := m.tree.EditingID(); m.mode == modeEdit && editing != nil && *editing == row.Comment.CommentID {
		extra = indent + "  " + inputStyle.Render("edit: "+m.input+"_") + "\n"
	}

	return line + extra
}

func (m Model) currentRow() *treeview.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

func (m *Model) refreshRows() {
	m.rows = m.tree.Flatten()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

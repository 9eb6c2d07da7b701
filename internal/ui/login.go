package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/partmart/partmart/internal/shell"
)

// loginModel holds the sign-in form. Credential verification belongs to the
// account service; the form hands the resulting identity to the coordinator
// through CompleteLogin, which also reconciles the guest cart.
type loginModel struct {
	inputs   [2]textinput.Model // email, password
	focusIdx int
	errText  string
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{inputs: [2]textinput.Model{email, password}}
}

func (l *loginModel) reset() {
	l.inputs[0].SetValue("")
	l.inputs[1].SetValue("")
	l.errText = ""
	l.focusIdx = 0
	l.inputs[0].Focus()
	l.inputs[1].Blur()
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		cmd := m.shell.GoBack()
		m.login.reset()
		m.afterShell()
		return m, toCmd(cmd)

	case "tab", "shift+tab", "up", "down":
		m.login.focusIdx = (m.login.focusIdx + 1) % len(m.login.inputs)
		for i := range m.login.inputs {
			if i == m.login.focusIdx {
				m.login.inputs[i].Focus()
			} else {
				m.login.inputs[i].Blur()
			}
		}
		m.refreshBody()
		return m, textinput.Blink

	case "enter":
		email := strings.TrimSpace(m.login.inputs[0].Value())
		password := m.login.inputs[1].Value()
		if email == "" || password == "" {
			m.login.errText = "email and password are required"
			m.refreshBody()
			return m, nil
		}
		u := shell.User{
			ID:    email,
			Name:  displayNameFromEmail(email),
			Email: email,
			Role:  shell.RoleCustomer,
		}
		cmds := m.shell.CompleteLogin(u, "")
		m.login.reset()
		m.afterShell()
		return m, toCmds(cmds)
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focusIdx], cmd = m.login.inputs[m.login.focusIdx].Update(msg)
	m.refreshBody()
	return m, cmd
}

// displayNameFromEmail derives a readable name from the local part.
func displayNameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return email
	}
	return strings.Join(words, " ")
}

func (m Model) renderLogin() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(m.tr("Sign in")))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(m.tr("Email")))
	b.WriteString("\n")
	b.WriteString(m.login.inputs[0].View())
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(m.tr("Password")))
	b.WriteString("\n")
	b.WriteString(m.login.inputs[1].View())
	b.WriteString("\n\n")
	if m.login.errText != "" {
		b.WriteString(styles.DangerText.Render(m.login.errText))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.FaintText.Render(m.tr("enter to sign in, esc to go back")))
	return b.String()
}

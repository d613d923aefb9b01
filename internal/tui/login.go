package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type loginState struct {
	email    string
	password string
	focus    int // 0 email, 1 password
	busy     bool
}

func (a *App) handleLoginKey(msg tea.KeyMsg) tea.Cmd {
	if a.login.busy {
		return nil
	}

	switch msg.String() {
	case "tab", "down", "shift+tab", "up":
		// two fields, so forward and backward are the same toggle
		a.login.focus = (a.login.focus + 1) % 2
		return nil
	case "enter":
		if a.login.focus == 0 {
			a.login.focus = 1
			return nil
		}
		email := strings.TrimSpace(a.login.email)
		if email == "" || a.login.password == "" {
			a.toasts.Info("Enter your email and password")
			return nil
		}
		a.login.busy = true
		return a.loginCmd(email, a.login.password)
	case "ctrl+d":
		a.login.busy = true
		return a.demoLoginCmd()
	case "backspace":
		field := a.loginField()
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
		return nil
	}

	if msg.Type == tea.KeyRunes {
		*a.loginField() += string(msg.Runes)
	}
	return nil
}

func (a *App) loginField() *string {
	if a.login.focus == 0 {
		return &a.login.email
	}
	return &a.login.password
}

func (a *App) renderLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Stride") + "  " + mutedStyle.Render("sign in") + "\n\n")

	b.WriteString(a.renderLoginField("Email", a.login.email, a.login.focus == 0, false))
	b.WriteString(a.renderLoginField("Password", a.login.password, a.login.focus == 1, true))

	b.WriteString("\n")
	if a.login.busy {
		b.WriteString(mutedStyle.Render("Signing in...") + "\n")
	} else {
		b.WriteString(keyStyle.Render("[enter]") + " sign in  " +
			keyStyle.Render("[tab]") + " next field  " +
			keyStyle.Render("[ctrl+d]") + " try the demo\n")
	}
	return b.String()
}

func (a *App) renderLoginField(label, value string, focused, mask bool) string {
	shown := value
	if mask {
		shown = strings.Repeat("*", len(value))
	}
	cursor := " "
	if focused {
		cursor = keyStyle.Render("_")
	}
	lbl := mutedStyle.Render(label + ":")
	if focused {
		lbl = keyStyle.Render(label + ":")
	}
	return lbl + " " + shown + cursor + "\n"
}

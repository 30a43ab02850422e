package views

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// OpenAddCategoryMsg asks the app to show the add-category form.
type OpenAddCategoryMsg struct{}

// OpenProfileMsg asks the app to open an employee profile.
type OpenProfileMsg struct {
	ID string
}

// WriteClipboard copies text to the system clipboard. Tests replace it.
var WriteClipboard = clipboard.WriteAll

func openAddCategory() tea.Msg {
	return OpenAddCategoryMsg{}
}

func openProfile(id string) tea.Cmd {
	return func() tea.Msg {
		return OpenProfileMsg{ID: id}
	}
}

// copyStatus copies text and returns the status line to show.
func copyStatus(text, what string) string {
	if err := WriteClipboard(text); err != nil {
		return "Clipboard unavailable: " + err.Error()
	}
	return "Copied " + what + " to clipboard"
}

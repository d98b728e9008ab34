package tui

import (
	"time"

	"github.com/Veraticus/icd-suggest/internal/matcher"
	tea "github.com/charmbracelet/bubbletea"
)

// predict runs the suggester after the simulated latency.
func predict(s matcher.Suggester, diagnosis string, id int, latency time.Duration) tea.Cmd {
	run := func() tea.Msg {
		return predictionMsg{
			diagnosis: diagnosis,
			result:    s.Match(diagnosis),
			id:        id,
		}
	}

	if latency <= 0 {
		return run
	}

	return tea.Tick(latency, func(time.Time) tea.Msg {
		return run()
	})
}

// expireToast removes the notification with the given id after d.
func expireToast(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

package tui

import "github.com/Veraticus/icd-suggest/internal/model"

// predictionMsg carries a finished prediction. Stale requests are identified by id.
type predictionMsg struct {
	diagnosis string
	result    model.MatchResult
	id        int
}

type toastExpiredMsg struct {
	id int
}

// toastLevel selects how a notification is styled.
type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastWarning
)

type toast struct {
	text  string
	level toastLevel
	id    int
}

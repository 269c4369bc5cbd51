package application

import "time"

type SelectionMode string

const (
	SelectCurrentUser SelectionMode = "current_user"
	SelectUsers       SelectionMode = "users"
	SelectAll         SelectionMode = "all"
)

// ReportQuery picks the users to report. All wins over Usernames; with
// neither, the invoking user is reported.
type ReportQuery struct {
	Usernames []string
	All       bool
	Sum       bool
}

func (q ReportQuery) Mode() SelectionMode {
	switch {
	case q.All:
		return SelectAll
	case len(q.Usernames) > 0:
		return SelectUsers
	default:
		return SelectCurrentUser
	}
}

type ReportRow struct {
	Username string `json:"username"`
	Seconds  int64  `json:"seconds"`
	Known    bool   `json:"known"`
}

type Report struct {
	Mode  SelectionMode `json:"mode"`
	AsOf  time.Time     `json:"as_of"`
	Rows  []ReportRow   `json:"rows"`
	Total *int64        `json:"total,omitempty"`
}

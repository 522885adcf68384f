package hanoidto

const (
	TypeStart   = "start"
	TypeMove    = "move"
	TypeSummary = "summary"
)

type Start struct {
	Type      string     `json:"type"`
	SessionID string     `json:"session_id"`
	Disks     int        `json:"disks"`
	Pegs      []PegState `json:"pegs"`
}

type Summary struct {
	Type       string     `json:"type"`
	SessionID  string     `json:"session_id"`
	Disks      int        `json:"disks"`
	TotalMoves int64      `json:"total_moves"`
	Final      []PegState `json:"final"`
	DurationMS int64      `json:"duration_ms"`
}

package hanoidto

// PegState is the bottom-to-top disk sizes of one peg.
type PegState struct {
	Name  string `json:"name"`
	Disks []int  `json:"disks"`
}

// Move is one line of JSON output: a single applied move and the pegs after it.
type Move struct {
	Type string     `json:"type"`
	Step int64      `json:"step"`
	Disk int        `json:"disk"`
	From string     `json:"from"`
	To   string     `json:"to"`
	Pegs []PegState `json:"pegs"`
}

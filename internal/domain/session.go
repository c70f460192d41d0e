package domain

type Mode string

const (
	ModeStandard   Mode = "standard"
	ModeAggressive Mode = "aggressive"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeStandard, ModeAggressive:
		return true
	default:
		return false
	}
}

func (m Mode) Aggressive() bool {
	return m == ModeAggressive
}

// CountdownSeconds is the fixed period between automatic enforcement runs.
const CountdownSeconds = 60

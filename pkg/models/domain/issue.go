package domain

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

type IssueType string

const (
	IssueRedundantRollup IssueType = "redundant_rollup"
	IssueInvalidParent   IssueType = "invalid_parent"
	IssueWrongParent     IssueType = "wrong_parent"
)

// Issue is a structural finding against the entity hierarchy.
type Issue struct {
	ID          string
	Type        IssueType
	Severity    Severity
	Entity      string // implicated entity id
	Title       string
	Description string
	Fix         string
}

package shared

// Choice is one code/label pair of a closed set of values.
type Choice struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func HasChoice(choices []Choice, code string) bool {
	for _, c := range choices {
		if c.Code == code {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusToDo       Status = "TO_DO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusInReview   Status = "IN_REVIEW"
	StatusCompleted  Status = "COMPLETED"
	StatusBlocked    Status = "BLOCKED"
)

var StatusChoices = []Choice{
	{string(StatusToDo), "To Do"},
	{string(StatusInProgress), "In Progress"},
	{string(StatusInReview), "In Review"},
	{string(StatusCompleted), "Completed"},
	{string(StatusBlocked), "Blocked"},
}

func (s Status) Valid() bool { return HasChoice(StatusChoices, string(s)) }

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var PriorityChoices = []Choice{
	{string(PriorityLow), "Low"},
	{string(PriorityMedium), "Medium"},
	{string(PriorityHigh), "High"},
	{string(PriorityCritical), "Critical"},
}

func (p Priority) Valid() bool { return HasChoice(PriorityChoices, string(p)) }

package model

// DateLayout is the calendar-day format tasks are keyed by.
const DateLayout = "2006-01-02"

// DifficultyEasy is the only difficulty with a reduced reward; any other
// value falls into the higher tier.
const DifficultyEasy = "easy"

type Task struct {
	ID         int    `json:"id"`
	Name       string `json:"task_name"`
	Date       string `json:"task_date"`
	Difficulty string `json:"task_difficulty"`
	Completed  bool   `json:"task_completed"`
}

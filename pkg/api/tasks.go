package api

// Task is a recurring task with its schedule evaluated for today.
type Task struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Detail        string `json:"detail,omitempty"`
	Notes         string `json:"notes,omitempty"`
	LastCompleted string `json:"lastCompleted"`
	FrequencyDays int    `json:"frequencyDays"`
	Assignee      string `json:"assignee,omitempty"`

	NextDue      string `json:"nextDue"`
	DaysUntilDue int    `json:"daysUntilDue"`
	// Status is one of overdue, due_today, upcoming, not_yet_due.
	Status string `json:"status"`
	// Label is a short human form such as "2d overdue" or "in 3d".
	Label string `json:"label"`
}

type ListTasksRequest struct {
	// Kind filters by cleaning or plants; empty lists both.
	Kind string `json:"kind,omitempty"`
}

type ListTasksResponse struct {
	Tasks []Task `json:"tasks"`
}

type CreateTaskRequest struct {
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Detail        string `json:"detail,omitempty"`
	Notes         string `json:"notes,omitempty"`
	LastCompleted string `json:"lastCompleted,omitempty"` // defaults to today
	FrequencyDays int    `json:"frequencyDays"`
	Assignee      string `json:"assignee,omitempty"`
}

type CreateTaskResponse struct {
	Task Task `json:"task"`
}

// UpdateTaskRequest is a partial update: nil fields are left unchanged.
type UpdateTaskRequest struct {
	ID            string  `json:"id"`
	Name          *string `json:"name,omitempty"`
	Detail        *string `json:"detail,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	LastCompleted *string `json:"lastCompleted,omitempty"`
	FrequencyDays *int    `json:"frequencyDays,omitempty"`
	Assignee      *string `json:"assignee,omitempty"`
}

type UpdateTaskResponse struct {
	Task Task `json:"task"`
}

type DeleteTaskRequest struct {
	ID string `json:"id"`
}

type DeleteTaskResponse struct{}

type CompleteTaskRequest struct {
	ID string `json:"id"`
	// Date defaults to today.
	Date string `json:"date,omitempty"`
}

type CompleteTaskResponse struct {
	Task Task `json:"task"`
}

type QuickAddTaskRequest struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type QuickAddTaskResponse struct {
	Task Task `json:"task"`
	// Parsed is false when the text was not understood and a placeholder was created.
	Parsed bool `json:"parsed"`
}

type GetScheduleRequest struct {
	Kind string `json:"kind,omitempty"`
	// WindowDays overrides the configured upcoming window.
	WindowDays *int `json:"windowDays,omitempty"`
}

type GetScheduleResponse struct {
	Today      string `json:"today"`
	WindowDays int    `json:"windowDays"`
	Due        []Task `json:"due"`
	Upcoming   []Task `json:"upcoming"`
	Later      []Task `json:"later"`
}

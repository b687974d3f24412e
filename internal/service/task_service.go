package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/quickadd"
	"github.com/SchwenderOne/roscher4gpt5/internal/recurrence"
	"github.com/SchwenderOne/roscher4gpt5/internal/storage"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
	"github.com/SchwenderOne/roscher4gpt5/pkg/api/apiconnect"
)

var _ apiconnect.TaskServiceHandler = (*TaskService)(nil)

// TaskService implements the Connect TaskService for cleaning rooms and plants.
type TaskService struct {
	store storage.TaskStore
	env   Env
}

// NewTaskService creates a new TaskService with the given storage backend.
func NewTaskService(store storage.TaskStore, env Env) *TaskService {
	return &TaskService{store: store, env: env.withDefaults()}
}

// parseOptionalKind accepts an empty kind as "all kinds".
func parseOptionalKind(s string) (models.TaskKind, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return models.ParseTaskKind(s)
}

func (s *TaskService) describe(task *models.RecurringTask) api.Task {
	return entryToAPI(recurrence.Describe(*task, s.env.today(), s.env.window()))
}

// ListTasks returns the tasks of one kind (or all) with today's schedule state.
func (s *TaskService) ListTasks(ctx context.Context, req *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error) {
	kind, err := parseOptionalKind(req.Msg.Kind)
	if err != nil {
		return nil, connectError(err)
	}

	tasks, err := s.store.ListTasks(ctx, kind)
	if err != nil {
		s.env.Logger.Error("ListTasks: failed to list tasks", "kind", kind, "error", err)
		return nil, connectError(err)
	}

	out := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, s.describe(t))
	}
	return connect.NewResponse(&api.ListTasksResponse{Tasks: out}), nil
}

// CreateTask adds a room or plant. The last completion defaults to today, and
// new cleaning tasks go to the first member unless an assignee is given.
func (s *TaskService) CreateTask(ctx context.Context, req *connect.Request[api.CreateTaskRequest]) (*connect.Response[api.CreateTaskResponse], error) {
	msg := req.Msg
	kind, err := models.ParseTaskKind(msg.Kind)
	if err != nil {
		return nil, connectError(err)
	}
	last, err := parseDateOr(msg.LastCompleted, s.env.today())
	if err != nil {
		return nil, connectError(err)
	}

	task := &models.RecurringTask{
		Kind:          kind,
		Name:          strings.TrimSpace(msg.Name),
		Detail:        strings.TrimSpace(msg.Detail),
		Notes:         msg.Notes,
		LastCompleted: last,
		FrequencyDays: msg.FrequencyDays,
	}
	if task.Rotates() {
		task.Assignee, err = s.assignee(ctx, msg.Assignee)
		if err != nil {
			return nil, connectError(err)
		}
	}

	if err := task.Validate(); err != nil {
		return nil, connectError(err)
	}
	if err := s.store.CreateTask(ctx, task); err != nil {
		s.env.Logger.Error("CreateTask: failed to create task", "name", task.Name, "error", err)
		return nil, connectError(err)
	}

	s.env.Logger.Info("Task created", "task_id", task.ID, "kind", task.Kind, "name", task.Name, "frequency_days", task.FrequencyDays)
	return connect.NewResponse(&api.CreateTaskResponse{Task: s.describe(task)}), nil
}

// assignee resolves a requested assignee against the household, defaulting
// to the first member.
func (s *TaskService) assignee(ctx context.Context, requested string) (string, error) {
	members, err := s.env.Directory.Names(ctx)
	if err != nil {
		return "", err
	}
	requested = strings.TrimSpace(requested)
	for _, m := range members {
		if requested != "" && models.SameMember(m, requested) {
			return m, nil
		}
	}
	if requested != "" {
		return "", invalidArg("assignee %q is not a household member", requested)
	}
	if len(members) == 0 {
		return "", nil
	}
	return members[0], nil
}

// UpdateTask applies a partial update. The kind of a task never changes.
func (s *TaskService) UpdateTask(ctx context.Context, req *connect.Request[api.UpdateTaskRequest]) (*connect.Response[api.UpdateTaskResponse], error) {
	msg := req.Msg
	task, err := s.store.GetTask(ctx, msg.ID)
	if err != nil {
		return nil, connectError(err)
	}

	if msg.Name != nil {
		task.Name = strings.TrimSpace(*msg.Name)
	}
	if msg.Detail != nil {
		task.Detail = strings.TrimSpace(*msg.Detail)
	}
	if msg.Notes != nil {
		task.Notes = *msg.Notes
	}
	if msg.LastCompleted != nil {
		d, err := models.ParseDate(strings.TrimSpace(*msg.LastCompleted))
		if err != nil {
			return nil, connectError(err)
		}
		task.LastCompleted = d
	}
	if msg.FrequencyDays != nil {
		task.FrequencyDays = *msg.FrequencyDays
	}
	if msg.Assignee != nil && task.Rotates() {
		task.Assignee, err = s.assignee(ctx, *msg.Assignee)
		if err != nil {
			return nil, connectError(err)
		}
	}

	if err := task.Validate(); err != nil {
		return nil, connectError(err)
	}
	if err := s.store.UpdateTask(ctx, task); err != nil {
		s.env.Logger.Error("UpdateTask: failed to update task", "task_id", task.ID, "error", err)
		return nil, connectError(err)
	}

	s.env.Logger.Info("Task updated", "task_id", task.ID)
	return connect.NewResponse(&api.UpdateTaskResponse{Task: s.describe(task)}), nil
}

// DeleteTask removes a task.
func (s *TaskService) DeleteTask(ctx context.Context, req *connect.Request[api.DeleteTaskRequest]) (*connect.Response[api.DeleteTaskResponse], error) {
	if err := s.store.DeleteTask(ctx, req.Msg.ID); err != nil {
		return nil, connectError(err)
	}
	s.env.Logger.Info("Task deleted", "task_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteTaskResponse{}), nil
}

// CompleteTask records that a task was done on the given date (today by
// default). Cleaning tasks rotate to the next member.
func (s *TaskService) CompleteTask(ctx context.Context, req *connect.Request[api.CompleteTaskRequest]) (*connect.Response[api.CompleteTaskResponse], error) {
	task, err := s.store.GetTask(ctx, req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}
	date, err := parseDateOr(req.Msg.Date, s.env.today())
	if err != nil {
		return nil, connectError(err)
	}

	members, err := s.env.Directory.Names(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	done := recurrence.MarkCompleted(*task, date, members)
	if err := s.store.UpdateTask(ctx, &done); err != nil {
		s.env.Logger.Error("CompleteTask: failed to save task", "task_id", task.ID, "error", err)
		return nil, connectError(err)
	}
	s.env.Metrics.TaskCompleted(string(done.Kind))

	s.env.Logger.Info("Task completed",
		"task_id", done.ID,
		"kind", done.Kind,
		"date", date.String(),
		"previous_assignee", task.Assignee,
		"next_assignee", done.Assignee,
	)
	return connect.NewResponse(&api.CompleteTaskResponse{Task: s.describe(&done)}), nil
}

// QuickAddTask creates a task from free text such as "clean Bathroom every 7 days".
func (s *TaskService) QuickAddTask(ctx context.Context, req *connect.Request[api.QuickAddTaskRequest]) (*connect.Response[api.QuickAddTaskResponse], error) {
	kind, err := models.ParseTaskKind(req.Msg.Kind)
	if err != nil {
		return nil, connectError(err)
	}
	members, err := s.env.Directory.Names(ctx)
	if err != nil {
		return nil, connectError(err)
	}

	task, parsed := quickadd.Task(kind, req.Msg.Text, s.env.today(), members)
	if err := s.store.CreateTask(ctx, &task); err != nil {
		return nil, connectError(err)
	}

	s.env.Logger.Info("Task quick-added", "task_id", task.ID, "kind", kind, "name", task.Name, "parsed", parsed)
	return connect.NewResponse(&api.QuickAddTaskResponse{Task: s.describe(&task), Parsed: parsed}), nil
}

// GetSchedule partitions tasks into due, upcoming and later buckets.
func (s *TaskService) GetSchedule(ctx context.Context, req *connect.Request[api.GetScheduleRequest]) (*connect.Response[api.GetScheduleResponse], error) {
	kind, err := parseOptionalKind(req.Msg.Kind)
	if err != nil {
		return nil, connectError(err)
	}
	window := s.env.window()
	if req.Msg.WindowDays != nil {
		if *req.Msg.WindowDays < 0 {
			return nil, invalidArg("window must not be negative, got %d", *req.Msg.WindowDays)
		}
		window = *req.Msg.WindowDays
	}

	tasks, err := s.store.ListTasks(ctx, kind)
	if err != nil {
		return nil, connectError(err)
	}

	today := s.env.today()
	buckets := recurrence.Schedule(derefTasks(tasks), today, window)
	s.env.Logger.Debug("Schedule computed", "kind", kind, "due", len(buckets.Due), "upcoming", len(buckets.Upcoming))

	return connect.NewResponse(&api.GetScheduleResponse{
		Today:      today.String(),
		WindowDays: window,
		Due:        entriesToAPI(buckets.Due),
		Upcoming:   entriesToAPI(buckets.Upcoming),
		Later:      entriesToAPI(buckets.Later),
	}), nil
}

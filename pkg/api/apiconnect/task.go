package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/SchwenderOne/roscher4gpt5/pkg/api"
)

// TaskServiceName is the fully-qualified name of the TaskService.
const TaskServiceName = "household.v1.TaskService"

const (
	TaskServiceListTasksProcedure    = "/household.v1.TaskService/ListTasks"
	TaskServiceCreateTaskProcedure   = "/household.v1.TaskService/CreateTask"
	TaskServiceUpdateTaskProcedure   = "/household.v1.TaskService/UpdateTask"
	TaskServiceDeleteTaskProcedure   = "/household.v1.TaskService/DeleteTask"
	TaskServiceCompleteTaskProcedure = "/household.v1.TaskService/CompleteTask"
	TaskServiceQuickAddTaskProcedure = "/household.v1.TaskService/QuickAddTask"
	TaskServiceGetScheduleProcedure  = "/household.v1.TaskService/GetSchedule"
)

// TaskServiceHandler is implemented by the server side of the TaskService.
type TaskServiceHandler interface {
	ListTasks(context.Context, *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error)
	CreateTask(context.Context, *connect.Request[api.CreateTaskRequest]) (*connect.Response[api.CreateTaskResponse], error)
	UpdateTask(context.Context, *connect.Request[api.UpdateTaskRequest]) (*connect.Response[api.UpdateTaskResponse], error)
	DeleteTask(context.Context, *connect.Request[api.DeleteTaskRequest]) (*connect.Response[api.DeleteTaskResponse], error)
	CompleteTask(context.Context, *connect.Request[api.CompleteTaskRequest]) (*connect.Response[api.CompleteTaskResponse], error)
	QuickAddTask(context.Context, *connect.Request[api.QuickAddTaskRequest]) (*connect.Response[api.QuickAddTaskResponse], error)
	GetSchedule(context.Context, *connect.Request[api.GetScheduleRequest]) (*connect.Response[api.GetScheduleResponse], error)
}

// NewTaskServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTaskServiceHandler(svc TaskServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + TaskServiceName + "/", route(map[string]*connect.Handler{
		TaskServiceListTasksProcedure:    connect.NewUnaryHandler(TaskServiceListTasksProcedure, svc.ListTasks, opts...),
		TaskServiceCreateTaskProcedure:   connect.NewUnaryHandler(TaskServiceCreateTaskProcedure, svc.CreateTask, opts...),
		TaskServiceUpdateTaskProcedure:   connect.NewUnaryHandler(TaskServiceUpdateTaskProcedure, svc.UpdateTask, opts...),
		TaskServiceDeleteTaskProcedure:   connect.NewUnaryHandler(TaskServiceDeleteTaskProcedure, svc.DeleteTask, opts...),
		TaskServiceCompleteTaskProcedure: connect.NewUnaryHandler(TaskServiceCompleteTaskProcedure, svc.CompleteTask, opts...),
		TaskServiceQuickAddTaskProcedure: connect.NewUnaryHandler(TaskServiceQuickAddTaskProcedure, svc.QuickAddTask, opts...),
		TaskServiceGetScheduleProcedure:  connect.NewUnaryHandler(TaskServiceGetScheduleProcedure, svc.GetSchedule, opts...),
	})
}

// TaskServiceClient is a client for the TaskService.
type TaskServiceClient interface {
	ListTasks(context.Context, *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error)
	CreateTask(context.Context, *connect.Request[api.CreateTaskRequest]) (*connect.Response[api.CreateTaskResponse], error)
	UpdateTask(context.Context, *connect.Request[api.UpdateTaskRequest]) (*connect.Response[api.UpdateTaskResponse], error)
	DeleteTask(context.Context, *connect.Request[api.DeleteTaskRequest]) (*connect.Response[api.DeleteTaskResponse], error)
	CompleteTask(context.Context, *connect.Request[api.CompleteTaskRequest]) (*connect.Response[api.CompleteTaskResponse], error)
	QuickAddTask(context.Context, *connect.Request[api.QuickAddTaskRequest]) (*connect.Response[api.QuickAddTaskResponse], error)
	GetSchedule(context.Context, *connect.Request[api.GetScheduleRequest]) (*connect.Response[api.GetScheduleResponse], error)
}

type taskServiceClient struct {
	listTasks    *connect.Client[api.ListTasksRequest, api.ListTasksResponse]
	createTask   *connect.Client[api.CreateTaskRequest, api.CreateTaskResponse]
	updateTask   *connect.Client[api.UpdateTaskRequest, api.UpdateTaskResponse]
	deleteTask   *connect.Client[api.DeleteTaskRequest, api.DeleteTaskResponse]
	completeTask *connect.Client[api.CompleteTaskRequest, api.CompleteTaskResponse]
	quickAddTask *connect.Client[api.QuickAddTaskRequest, api.QuickAddTaskResponse]
	getSchedule  *connect.Client[api.GetScheduleRequest, api.GetScheduleResponse]
}

// NewTaskServiceClient constructs a client for the TaskService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewTaskServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TaskServiceClient {
	opts = clientOptions(opts)
	return &taskServiceClient{
		listTasks:    connect.NewClient[api.ListTasksRequest, api.ListTasksResponse](httpClient, baseURL+TaskServiceListTasksProcedure, opts...),
		createTask:   connect.NewClient[api.CreateTaskRequest, api.CreateTaskResponse](httpClient, baseURL+TaskServiceCreateTaskProcedure, opts...),
		updateTask:   connect.NewClient[api.UpdateTaskRequest, api.UpdateTaskResponse](httpClient, baseURL+TaskServiceUpdateTaskProcedure, opts...),
		deleteTask:   connect.NewClient[api.DeleteTaskRequest, api.DeleteTaskResponse](httpClient, baseURL+TaskServiceDeleteTaskProcedure, opts...),
		completeTask: connect.NewClient[api.CompleteTaskRequest, api.CompleteTaskResponse](httpClient, baseURL+TaskServiceCompleteTaskProcedure, opts...),
		quickAddTask: connect.NewClient[api.QuickAddTaskRequest, api.QuickAddTaskResponse](httpClient, baseURL+TaskServiceQuickAddTaskProcedure, opts...),
		getSchedule:  connect.NewClient[api.GetScheduleRequest, api.GetScheduleResponse](httpClient, baseURL+TaskServiceGetScheduleProcedure, opts...),
	}
}

func (c *taskServiceClient) ListTasks(ctx context.Context, req *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error) {
	return c.listTasks.CallUnary(ctx, req)
}

func (c *taskServiceClient) CreateTask(ctx context.Context, req *connect.Request[api.CreateTaskRequest]) (*connect.Response[api.CreateTaskResponse], error) {
	return c.createTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) UpdateTask(ctx context.Context, req *connect.Request[api.UpdateTaskRequest]) (*connect.Response[api.UpdateTaskResponse], error) {
	return c.updateTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) DeleteTask(ctx context.Context, req *connect.Request[api.DeleteTaskRequest]) (*connect.Response[api.DeleteTaskResponse], error) {
	return c.deleteTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) CompleteTask(ctx context.Context, req *connect.Request[api.CompleteTaskRequest]) (*connect.Response[api.CompleteTaskResponse], error) {
	return c.completeTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) QuickAddTask(ctx context.Context, req *connect.Request[api.QuickAddTaskRequest]) (*connect.Response[api.QuickAddTaskResponse], error) {
	return c.quickAddTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) GetSchedule(ctx context.Context, req *connect.Request[api.GetScheduleRequest]) (*connect.Response[api.GetScheduleResponse], error) {
	return c.getSchedule.CallUnary(ctx, req)
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/barchasb-io/barchasb/internal/modules/serializer"
	"github.com/barchasb-io/barchasb/internal/modules/service"
)

type TaskHandler struct {
	tasks   service.TaskService
	labels  service.LabelService
	reports service.ReportService
}

func NewTaskHandler(tasks service.TaskService, labels service.LabelService, reports service.ReportService) *TaskHandler {
	return &TaskHandler{tasks: tasks, labels: labels, reports: reports}
}

type CreateTaskReq struct {
	Type        string          `json:"type" binding:"required" example:"image"`
	Data        json.RawMessage `json:"data" binding:"required" swaggertype:"object"`
	Title       string          `json:"title" binding:"max=256" example:"Classify this picture"`
	Description string          `json:"description" example:"Pick the label that fits best"`
	Point       int             `json:"point" binding:"gte=0" example:"10"`
	Tags        []string        `json:"tags" binding:"max=10,dive,min=1,max=64"`
	IsDone      bool            `json:"is_done"`
}

// CreateTask godoc
//
//	@Summary		Create task
//	@Description	Add a new task to the shared pool
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.CreateTaskReq	true	"CreateTask payload"
//	@Success		201		{object}	model.Task
//	@Router			/tasks/new [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	req := CreateTaskReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("", err))
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), service.CreateTaskInput{
		Type:        req.Type,
		Data:        datatypes.JSON(req.Data),
		Title:       req.Title,
		Description: req.Description,
		Point:       req.Point,
		Tags:        req.Tags,
		IsDone:      req.IsDone,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, task)
}

type FeedReq struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=200" example:"20"`
}

// Feed godoc
//
//	@Summary		Task feed
//	@Description	Open tasks the caller has neither labeled nor reported
//	@Tags			tasks
//	@Produce		json
//	@Param			limit	query	integer	false	"Maximum number of tasks to return, default 20. Max 200."
//	@Security		BearerAuth
//	@Success		200	{array}	model.Task
//	@Router			/tasks/feed [get]
func (h *TaskHandler) Feed(c *gin.Context) {
	req := FeedReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("", err))
		return
	}

	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	tasks, err := h.tasks.Feed(c.Request.Context(), user.ID, req.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(http.StatusBadRequest, "failed to fetch feed", err))
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// ListDone godoc
//
//	@Summary		List done tasks
//	@Tags			tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	model.Task
//	@Router			/tasks/done [get]
func (h *TaskHandler) ListDone(c *gin.Context) {
	tasks, err := h.tasks.ListDone(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ListLabeled godoc
//
//	@Summary		Tasks labeled by current user
//	@Tags			tasks
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	model.Task
//	@Router			/tasks/labeled [get]
func (h *TaskHandler) ListLabeled(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	tasks, err := h.tasks.LabeledByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// MarkDone godoc
//
//	@Summary		Mark task done
//	@Description	Administrative override, independent of the consensus threshold
//	@Tags			tasks
//	@Produce		json
//	@Param			task_id	path	string	true	"Task ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Task
//	@Router			/tasks/{task_id}/done [put]
func (h *TaskHandler) MarkDone(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("invalid task id", err))
		return
	}

	task, err := h.tasks.MarkDone(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("task not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, task)
}

type SubmitLabelReq struct {
	TaskID  string          `json:"task_id" binding:"required,uuid" format:"uuid"`
	Content json.RawMessage `json:"content" binding:"required" swaggertype:"object"`
}

type StatusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SubmitLabel godoc
//
//	@Summary		Submit label
//	@Description	Attach an annotation to a task; credits the caller's points and labeled count
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.SubmitLabelReq	true	"SubmitLabel payload"
//	@Security		BearerAuth
//	@Success		200	{object}	handler.StatusResp
//	@Router			/tasks/submit [post]
func (h *TaskHandler) SubmitLabel(c *gin.Context) {
	req := SubmitLabelReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("", err))
		return
	}

	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	// Attribution always comes from the verified token, never the payload.
	taskID := uuid.MustParse(req.TaskID)
	label, err := h.labels.Submit(c.Request.Context(), user.ID, taskID, datatypes.JSON(req.Content))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(http.StatusBadRequest, "submission failed", err))
		return
	}

	c.JSON(http.StatusOK, StatusResp{
		Status:  "success",
		Message: fmt.Sprintf("task successfully submitted %s", label.ID),
	})
}

type ReportTaskReq struct {
	TaskID string `json:"task_id" binding:"required,uuid" format:"uuid"`
	Detail string `json:"detail" binding:"required,min=1,max=1000" example:"broken image link"`
}

// ReportTask godoc
//
//	@Summary		Report task
//	@Description	Flag a problem with a task
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.ReportTaskReq	true	"ReportTask payload"
//	@Security		BearerAuth
//	@Success		200	{object}	handler.StatusResp
//	@Router			/tasks/report [post]
func (h *TaskHandler) ReportTask(c *gin.Context) {
	req := ReportTaskReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("", err))
		return
	}

	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	taskID := uuid.MustParse(req.TaskID)
	report, err := h.reports.Submit(c.Request.Context(), user.ID, taskID, req.Detail)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(http.StatusBadRequest, "report failed", err))
		return
	}

	c.JSON(http.StatusOK, StatusResp{
		Status:  "success",
		Message: fmt.Sprintf("task report successfully created %s", report.ID),
	})
}

// Consensus godoc
//
//	@Summary		Apply consensus
//	@Description	Tally labels and close the task once the count strictly exceeds the threshold
//	@Tags			tasks
//	@Produce		json
//	@Param			task_id	path	string	true	"Task ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	model.Task
//	@Router			/tasks/{task_id}/consensus [post]
func (h *TaskHandler) Consensus(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("invalid task id", err))
		return
	}

	task, err := h.labels.Consensus(c.Request.Context(), taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	if task == nil {
		c.JSON(http.StatusOK, StatusResp{Status: "success", Message: "no labels submitted"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetConsensus godoc
//
//	@Summary		Consensus tally
//	@Description	Read-only vote distribution and current winning content
//	@Tags			tasks
//	@Produce		json
//	@Param			task_id	path	string	true	"Task ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	service.TallyOutput
//	@Router			/tasks/{task_id}/consensus [get]
func (h *TaskHandler) GetConsensus(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ParamErr("invalid task id", err))
		return
	}

	out, err := h.labels.Tally(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("task not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, out)
}

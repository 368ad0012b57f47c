package handler

import (
	"github.com/gin-gonic/gin"

	opsapp "github.com/bizos/backend/internal/application/operations"
)

// OperationsHandler handles task and logistics endpoints
type OperationsHandler struct {
	BaseHandler
	tasks *opsapp.TaskService
}

// NewOperationsHandler creates a new OperationsHandler
func NewOperationsHandler(tasks *opsapp.TaskService) *OperationsHandler {
	return &OperationsHandler{tasks: tasks}
}

// RegisterRoutes registers the operations endpoints
func (h *OperationsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/operations/tasks", h.Create)
	rg.GET("/operations/tasks", h.List)
	rg.GET("/operations/tasks/:id", h.Get)
	rg.PUT("/operations/tasks/:id", h.Update)
	rg.DELETE("/operations/tasks/:id", h.Delete)
	rg.POST("/operations/logistics-plan", h.Plan)
}

// Create adds a new task or meeting
func (h *OperationsHandler) Create(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req opsapp.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.tasks.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "TASK_CREATE", err)
		return
	}
	h.Created(c, resp)
}

// List returns the caller's tasks
func (h *OperationsHandler) List(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req opsapp.TaskListFilter
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.tasks.List(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "TASK_LIST", err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one task
func (h *OperationsHandler) Get(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	resp, err := h.tasks.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleErrorTagged(c, "TASK_GET", err)
		return
	}
	h.Success(c, resp)
}

// Update applies a partial update to a task
func (h *OperationsHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	var req opsapp.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.tasks.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleErrorTagged(c, "TASK_UPDATE", err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a task
func (h *OperationsHandler) Delete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid task ID")
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleErrorTagged(c, "TASK_DELETE", err)
		return
	}
	h.NoContent(c)
}

// Plan generates a logistics plan from the caller's pending tasks
func (h *OperationsHandler) Plan(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req opsapp.LogisticsPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.tasks.Plan(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "LOGISTICS_PLAN", err)
		return
	}
	h.Success(c, resp)
}

package handler

import (
	"github.com/gin-gonic/gin"

	crmapp "github.com/bizos/backend/internal/application/crm"
)

// CRMHandler handles client endpoints
type CRMHandler struct {
	BaseHandler
	clients *crmapp.ClientService
}

// NewCRMHandler creates a new CRMHandler
func NewCRMHandler(clients *crmapp.ClientService) *CRMHandler {
	return &CRMHandler{clients: clients}
}

// RegisterRoutes registers the CRM endpoints
func (h *CRMHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/crm/clients", h.Create)
	rg.GET("/crm/clients", h.List)
	rg.GET("/crm/clients/:id", h.Get)
	rg.PUT("/crm/clients/:id", h.Update)
	rg.PATCH("/crm/clients/:id/status", h.UpdateStatus)
	rg.DELETE("/crm/clients/:id", h.Delete)
	rg.POST("/crm/lead-follow-up", h.DraftFollowUp)
}

// Create adds a new client
func (h *CRMHandler) Create(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req crmapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clients.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "CLIENT_CREATE", err)
		return
	}
	h.Created(c, resp)
}

// List returns the caller's clients
func (h *CRMHandler) List(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req crmapp.ClientListFilter
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.clients.List(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "CLIENT_LIST", err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one client
func (h *CRMHandler) Get(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	resp, err := h.clients.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleErrorTagged(c, "CLIENT_GET", err)
		return
	}
	h.Success(c, resp)
}

// Update applies a partial update to a client
func (h *CRMHandler) Update(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var req crmapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clients.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleErrorTagged(c, "CLIENT_UPDATE", err)
		return
	}
	h.Success(c, resp)
}

// UpdateStatus moves a client through the sales funnel
func (h *CRMHandler) UpdateStatus(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var req crmapp.UpdateClientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clients.UpdateStatus(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleErrorTagged(c, "CLIENT_STATUS", err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a client
func (h *CRMHandler) Delete(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	if err := h.clients.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleErrorTagged(c, "CLIENT_DELETE", err)
		return
	}
	h.NoContent(c)
}

// DraftFollowUp drafts an outreach email for a client
func (h *CRMHandler) DraftFollowUp(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req crmapp.LeadFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clients.DraftFollowUp(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "LEAD_FOLLOW_UP", err)
		return
	}
	h.Success(c, resp)
}

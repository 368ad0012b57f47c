package handler

import (
	"github.com/gin-gonic/gin"

	invapp "github.com/bizos/backend/internal/application/inventory"
)

// InventoryHandler handles stock item and vendor endpoints
type InventoryHandler struct {
	BaseHandler
	items   *invapp.ItemService
	vendors *invapp.VendorService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(items *invapp.ItemService, vendors *invapp.VendorService) *InventoryHandler {
	return &InventoryHandler{items: items, vendors: vendors}
}

// RegisterRoutes registers the inventory endpoints
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/inventory/items", h.CreateItem)
	rg.GET("/inventory/items", h.ListItems)
	rg.GET("/inventory/items/:id", h.GetItem)
	rg.PUT("/inventory/items/:id", h.UpdateItem)
	rg.DELETE("/inventory/items/:id", h.DeleteItem)

	rg.POST("/inventory/vendors", h.CreateVendor)
	rg.GET("/inventory/vendors", h.ListVendors)
	rg.GET("/inventory/vendors/:id", h.GetVendor)
	rg.PUT("/inventory/vendors/:id", h.UpdateVendor)
	rg.DELETE("/inventory/vendors/:id", h.DeleteVendor)

	rg.POST("/inventory/restock-suggestion", h.SuggestRestock)
}

// CreateItem adds a stock item
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req invapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.items.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "ITEM_CREATE", err)
		return
	}
	h.Created(c, resp)
}

// ListItems returns the caller's stock items; low_stock=true narrows to
// items at or below their reorder level
func (h *InventoryHandler) ListItems(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req invapp.ItemListFilter
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.items.List(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "ITEM_LIST", err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetItem returns one stock item
func (h *InventoryHandler) GetItem(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	resp, err := h.items.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleErrorTagged(c, "ITEM_GET", err)
		return
	}
	h.Success(c, resp)
}

// UpdateItem applies a partial update to a stock item
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req invapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.items.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleErrorTagged(c, "ITEM_UPDATE", err)
		return
	}
	h.Success(c, resp)
}

// DeleteItem removes a stock item
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.items.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleErrorTagged(c, "ITEM_DELETE", err)
		return
	}
	h.NoContent(c)
}

// CreateVendor adds a vendor
func (h *InventoryHandler) CreateVendor(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req invapp.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.vendors.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "VENDOR_CREATE", err)
		return
	}
	h.Created(c, resp)
}

// ListVendors returns the caller's vendors
func (h *InventoryHandler) ListVendors(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.vendors.List(c.Request.Context(), ownerID, q.Page, q.PageSize)
	if err != nil {
		h.HandleErrorTagged(c, "VENDOR_LIST", err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetVendor returns one vendor
func (h *InventoryHandler) GetVendor(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	resp, err := h.vendors.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleErrorTagged(c, "VENDOR_GET", err)
		return
	}
	h.Success(c, resp)
}

// UpdateVendor applies a partial update to a vendor
func (h *InventoryHandler) UpdateVendor(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req invapp.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.vendors.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleErrorTagged(c, "VENDOR_UPDATE", err)
		return
	}
	h.Success(c, resp)
}

// DeleteVendor removes a vendor
func (h *InventoryHandler) DeleteVendor(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendors.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleErrorTagged(c, "VENDOR_DELETE", err)
		return
	}
	h.NoContent(c)
}

// SuggestRestock reviews stock levels and proposes reorder quantities
func (h *InventoryHandler) SuggestRestock(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req invapp.RestockSuggestionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BindingError(c, err)
			return
		}
	}

	resp, err := h.items.SuggestRestock(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "RESTOCK_SUGGESTION", err)
		return
	}
	h.Success(c, resp)
}

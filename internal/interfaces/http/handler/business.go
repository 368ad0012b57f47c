package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	businessapp "github.com/bizos/backend/internal/application/business"
)

// maxLogoBytes caps logo uploads at 2 MiB
const maxLogoBytes = 2 << 20

// BusinessHandler handles business profile endpoints
type BusinessHandler struct {
	BaseHandler
	profiles *businessapp.ProfileService
}

// NewBusinessHandler creates a new BusinessHandler
func NewBusinessHandler(profiles *businessapp.ProfileService) *BusinessHandler {
	return &BusinessHandler{profiles: profiles}
}

// RegisterRoutes registers the business endpoints
func (h *BusinessHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/business/onboarding", h.Onboard)
	rg.GET("/business/profile", h.GetProfile)
	rg.PUT("/business/profile", h.UpdateProfile)
	rg.PATCH("/business/modules", h.SetModules)
	rg.POST("/business/logo", h.UploadLogo)
}

// Onboard creates the business profile for a fresh account
func (h *BusinessHandler) Onboard(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req businessapp.OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.profiles.Onboard(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetProfile returns the caller's business profile
func (h *BusinessHandler) GetProfile(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.profiles.Get(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateProfile applies partial updates to the profile
func (h *BusinessHandler) UpdateProfile(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req businessapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.profiles.Update(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetModules replaces the enabled module set
func (h *BusinessHandler) SetModules(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req businessapp.SetModulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.profiles.SetModules(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UploadLogo stores the uploaded logo and returns the refreshed profile
func (h *BusinessHandler) UploadLogo(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		h.BadRequest(c, "A logo file is required")
		return
	}
	if fileHeader.Size > maxLogoBytes {
		h.BadRequest(c, "Logo must be 2 MB or smaller")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read the uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
	if err != nil {
		h.BadRequest(c, "Could not read the uploaded file")
		return
	}

	resp, err := h.profiles.UploadLogo(c.Request.Context(), ownerID, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

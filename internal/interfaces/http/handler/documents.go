package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	docapp "github.com/bizos/backend/internal/application/documents"
)

// maxDocumentBytes caps contract uploads at 16 MiB
const maxDocumentBytes = 16 << 20

// DocumentsHandler handles document intelligence endpoints
type DocumentsHandler struct {
	BaseHandler
	docs *docapp.Service
}

// NewDocumentsHandler creates a new DocumentsHandler
func NewDocumentsHandler(docs *docapp.Service) *DocumentsHandler {
	return &DocumentsHandler{docs: docs}
}

// RegisterRoutes registers the documents endpoints
func (h *DocumentsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/parse-contract", h.ParseContract)
	rg.POST("/documents/summarize", h.Summarize)
	rg.POST("/documents/draft", h.Draft)
	rg.POST("/documents/categorize", h.Categorize)
}

// ParseContract extracts structured terms from an uploaded contract
// (multipart form: file)
func (h *DocumentsHandler) ParseContract(c *gin.Context) {
	_, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A document upload is required")
		return
	}
	if fileHeader.Size > maxDocumentBytes {
		h.BadRequest(c, "Document must be 16 MB or smaller")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Could not read the uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentBytes+1))
	if err != nil {
		h.BadRequest(c, "Could not read the uploaded file")
		return
	}

	resp, err := h.docs.ParseContract(c.Request.Context(), data, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.HandleErrorTagged(c, "CONTRACT_PARSE", err)
		return
	}
	h.Success(c, resp)
}

// Summarize condenses pasted document text
func (h *DocumentsHandler) Summarize(c *gin.Context) {
	_, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req docapp.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.docs.Summarize(c.Request.Context(), req)
	if err != nil {
		h.HandleErrorTagged(c, "DOC_SUMMARIZE", err)
		return
	}
	h.Success(c, resp)
}

// Draft writes a business document from a short brief
func (h *DocumentsHandler) Draft(c *gin.Context) {
	_, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req docapp.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.docs.Draft(c.Request.Context(), req)
	if err != nil {
		h.HandleErrorTagged(c, "DOC_DRAFT", err)
		return
	}
	h.Success(c, resp)
}

// Categorize assigns a folder and tags to a document
func (h *DocumentsHandler) Categorize(c *gin.Context) {
	_, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req docapp.CategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.docs.Categorize(c.Request.Context(), req)
	if err != nil {
		h.HandleErrorTagged(c, "DOC_CATEGORIZE", err)
		return
	}
	h.Success(c, resp)
}

package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	hrapp "github.com/bizos/backend/internal/application/hr"
	"github.com/bizos/backend/internal/domain/shared"
)

// maxResumeBytes caps resume uploads at 8 MiB
const maxResumeBytes = 8 << 20

// HRHandler handles job posting and candidate endpoints
type HRHandler struct {
	BaseHandler
	jobs       *hrapp.JobService
	candidates *hrapp.CandidateService
}

// NewHRHandler creates a new HRHandler
func NewHRHandler(jobs *hrapp.JobService, candidates *hrapp.CandidateService) *HRHandler {
	return &HRHandler{jobs: jobs, candidates: candidates}
}

// RegisterRoutes registers the HR endpoints
func (h *HRHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/hr/jobs", h.CreateJob)
	rg.GET("/hr/jobs", h.ListJobs)
	rg.GET("/hr/jobs/:id", h.GetJob)
	rg.PUT("/hr/jobs/:id", h.UpdateJob)
	rg.DELETE("/hr/jobs/:id", h.DeleteJob)

	rg.POST("/hr/candidates", h.CreateCandidate)
	rg.GET("/hr/jobs/:id/candidates", h.ListCandidates)
	rg.GET("/hr/candidates/:id", h.GetCandidate)
	rg.PATCH("/hr/candidates/:id/status", h.UpdateCandidateStatus)
	rg.PATCH("/hr/candidates/:id/notes", h.UpdateCandidateNotes)
	rg.DELETE("/hr/candidates/:id", h.DeleteCandidate)
	rg.POST("/hr/candidates/:id/rank", h.RankCandidate)
	rg.POST("/hr/interview-summary", h.SummarizeInterview)
	rg.POST("/hr/follow-up-email", h.DraftFollowUpEmail)
}

// listQuery is the paging subset shared by job and candidate lists
type listQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
}

func (q listQuery) toFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if q.Page > 0 {
		filter.Page = q.Page
	}
	if q.PageSize > 0 {
		filter.PageSize = q.PageSize
	}
	filter.Search = q.Search
	return filter
}

// CreateJob creates a job posting
func (h *HRHandler) CreateJob(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req hrapp.CreateJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.jobs.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "JOB_CREATE", err)
		return
	}
	h.Created(c, resp)
}

// ListJobs returns the caller's job postings
func (h *HRHandler) ListJobs(c *gin.Context) {
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

	page, err := h.jobs.List(c.Request.Context(), ownerID, q.toFilter())
	if err != nil {
		h.HandleErrorTagged(c, "JOB_LIST", err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetJob returns one job posting
func (h *HRHandler) GetJob(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	resp, err := h.jobs.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleErrorTagged(c, "JOB_GET", err)
		return
	}
	h.Success(c, resp)
}

// UpdateJob applies a partial update to a job posting
func (h *HRHandler) UpdateJob(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	var req hrapp.UpdateJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.jobs.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleErrorTagged(c, "JOB_UPDATE", err)
		return
	}
	h.Success(c, resp)
}

// DeleteJob removes a job posting; its candidates are kept
func (h *HRHandler) DeleteJob(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleErrorTagged(c, "JOB_DELETE", err)
		return
	}
	h.NoContent(c)
}

// CreateCandidate creates a candidate from a multipart form with either
// resume text or an uploaded resume file
func (h *HRHandler) CreateCandidate(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	jobID, err := uuid.Parse(c.PostForm("job_id"))
	if err != nil {
		h.BadRequest(c, "job_id must be a valid UUID")
		return
	}

	req := hrapp.CreateCandidateRequest{
		JobID:      jobID,
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		ResumeText: c.PostForm("resume_text"),
	}

	if fileHeader, err := c.FormFile("resume_file"); err == nil {
		if fileHeader.Size > maxResumeBytes {
			h.BadRequest(c, "Resume file must be 8 MB or smaller")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			h.BadRequest(c, "Could not read the uploaded file")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxResumeBytes+1))
		if err != nil {
			h.BadRequest(c, "Could not read the uploaded file")
			return
		}
		req.FileData = data
		req.FileName = fileHeader.Filename
		req.FileMIME = fileHeader.Header.Get("Content-Type")
	}

	resp, err := h.candidates.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "CANDIDATE_CREATE", err)
		return
	}
	h.Created(c, resp)
}

// ListCandidates returns the candidates attached to one job posting
func (h *HRHandler) ListCandidates(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	jobID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}

	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.candidates.ListByJob(c.Request.Context(), ownerID, jobID, q.toFilter())
	if err != nil {
		h.HandleErrorTagged(c, "CANDIDATE_LIST", err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetCandidate returns one candidate
func (h *HRHandler) GetCandidate(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	resp, err := h.candidates.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleErrorTagged(c, "CANDIDATE_GET", err)
		return
	}
	h.Success(c, resp)
}

// UpdateCandidateStatus moves a candidate through the hiring pipeline
func (h *HRHandler) UpdateCandidateStatus(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	var req hrapp.UpdateCandidateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.candidates.UpdateStatus(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleErrorTagged(c, "CANDIDATE_STATUS", err)
		return
	}
	h.Success(c, resp)
}

// UpdateCandidateNotes replaces a candidate's notes
func (h *HRHandler) UpdateCandidateNotes(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	var req hrapp.UpdateCandidateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.candidates.UpdateNotes(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.HandleErrorTagged(c, "CANDIDATE_NOTES", err)
		return
	}
	h.Success(c, resp)
}

// DeleteCandidate removes a candidate
func (h *HRHandler) DeleteCandidate(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	if err := h.candidates.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleErrorTagged(c, "CANDIDATE_DELETE", err)
		return
	}
	h.NoContent(c)
}

// RankCandidate scores a candidate's resume against the job description
func (h *HRHandler) RankCandidate(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid candidate ID")
		return
	}

	resp, err := h.candidates.Rank(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleErrorTagged(c, "CANDIDATE_RANK", err)
		return
	}
	h.Success(c, resp)
}

// SummarizeInterview condenses an interview transcript
func (h *HRHandler) SummarizeInterview(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req hrapp.InterviewSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.candidates.SummarizeInterview(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "INTERVIEW_SUMMARY", err)
		return
	}
	h.Success(c, resp)
}

// DraftFollowUpEmail drafts an outcome email for a candidate
func (h *HRHandler) DraftFollowUpEmail(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req hrapp.FollowUpEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.candidates.DraftFollowUpEmail(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleErrorTagged(c, "FOLLOW_UP_EMAIL", err)
		return
	}
	h.Success(c, resp)
}

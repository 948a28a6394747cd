package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"matchdb-jobs-service/internal/delivery/http/middleware"
	"matchdb-jobs-service/internal/delivery/http/response"
	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - only active jobs, server-side enforced
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	// Vendor-only job management
	vendorJobs := protected.Group("/vendor/jobs")
	vendorJobs.Use(middleware.RequireVendor())
	{
		vendorJobs.GET("", handler.ListByVendor)
		vendorJobs.POST("", handler.Create)
		vendorJobs.PUT("/:id", handler.Update)
		vendorJobs.POST("/:id/close", handler.Close)
		vendorJobs.POST("/:id/reopen", handler.Reopen)
	}
}

type CreateJobRequest struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	RecruiterName      string   `json:"recruiter_name"`
	RecruiterPhone     string   `json:"recruiter_phone"`
	Location           string   `json:"location"`
	JobCountry         string   `json:"job_country"`
	JobState           string   `json:"job_state"`
	JobCity            string   `json:"job_city"`
	JobType            string   `json:"job_type"`
	JobSubType         string   `json:"job_sub_type"`
	WorkMode           string   `json:"work_mode"`
	SalaryMin          *float64 `json:"salary_min"`
	SalaryMax          *float64 `json:"salary_max"`
	PayPerHour         *float64 `json:"pay_per_hour"`
	SkillsRequired     []string `json:"skills_required"`
	ExperienceRequired int      `json:"experience_required"`
}

func (r *CreateJobRequest) toJob() *domain.Job {
	return &domain.Job{
		Title:              r.Title,
		Description:        r.Description,
		RecruiterName:      r.RecruiterName,
		RecruiterPhone:     r.RecruiterPhone,
		Location:           r.Location,
		JobCountry:         r.JobCountry,
		JobState:           r.JobState,
		JobCity:            r.JobCity,
		JobType:            r.JobType,
		JobSubType:         r.JobSubType,
		WorkMode:           r.WorkMode,
		SalaryMin:          r.SalaryMin,
		SalaryMax:          r.SalaryMax,
		PayPerHour:         r.PayPerHour,
		SkillsRequired:     r.SkillsRequired,
		ExperienceRequired: r.ExperienceRequired,
	}
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a new job posting (Vendor only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /vendor/jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	vendorID := c.GetString(string(domain.KeyUserID))
	vendorEmail := c.GetString(string(domain.KeyUserEmail))

	job := req.toJob()
	if err := h.jobUC.CreateJob(c, vendorID, vendorEmail, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List godoc
// @Summary      List active jobs
// @Description  Get a paginated list of active jobs, optionally filtered by type and country
// @Tags         jobs
// @Produce      json
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Param        job_type   query     string  false  "Job type filter"
// @Param        country    query     string  false  "Country filter"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filter := domain.JobFilter{
		JobType: c.Query("job_type"),
		Country: c.Query("country"),
	}

	jobs, total, err := h.jobUC.ListActiveJobs(c, filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Get detailed info of an active job, including applicant count
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, applicants, err := h.jobUC.GetJob(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", gin.H{
		"job":             job,
		"applicant_count": applicants,
	})
}

// ListByVendor godoc
// @Summary      List vendor's own jobs
// @Description  Get every job belonging to the logged-in vendor, active or not
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /vendor/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListByVendor(c *gin.Context) {
	vendorID := c.GetString(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListVendorJobs(c, vendorID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vendor job list", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// Update godoc
// @Summary      Update a job
// @Description  Update an existing job posting (owner only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string            true  "Job ID"
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vendor/jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	vendorID := c.GetString(string(domain.KeyUserID))

	job := req.toJob()
	job.ID = c.Param("id")
	if err := h.jobUC.UpdateJob(c, vendorID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Close godoc
// @Summary      Close a job
// @Description  Deactivate a job posting so it stops appearing in listings and matches
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vendor/jobs/{id}/close [post]
// @Security     BearerAuth
func (h *JobHandler) Close(c *gin.Context) {
	vendorID := c.GetString(string(domain.KeyUserID))

	if err := h.jobUC.SetJobActive(c, vendorID, c.Param("id"), false); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job closed", nil)
}

// Reopen godoc
// @Summary      Reopen a job
// @Description  Reactivate a previously closed job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vendor/jobs/{id}/reopen [post]
// @Security     BearerAuth
func (h *JobHandler) Reopen(c *gin.Context) {
	vendorID := c.GetString(string(domain.KeyUserID))

	if err := h.jobUC.SetJobActive(c, vendorID, c.Param("id"), true); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job reopened", nil)
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchdb-jobs-service/internal/delivery/http/middleware"
	"matchdb-jobs-service/internal/delivery/http/response"
	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/pkg/apperror"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	candidate := protected.Group("/applications")
	candidate.Use(middleware.RequireCandidate())
	{
		candidate.POST("", handler.Apply)
		candidate.GET("", handler.MyApplications)
	}

	vendor := protected.Group("/vendor")
	vendor.Use(middleware.RequireVendor())
	{
		vendor.GET("/jobs/:id/applications", handler.ListForJob)
		vendor.PATCH("/applications/:id/status", handler.UpdateStatus)
	}
}

type ApplyRequest struct {
	JobID       string `json:"job_id" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application to an active job. One application per candidate per job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplyRequest  true  "Application JSON"
// @Success      201          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      409          {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidateID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	app, err := h.applicationUC.Apply(c, candidateID, email, req.JobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// MyApplications godoc
// @Summary      List own applications
// @Description  Get every application submitted by the logged-in candidate
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyUserID))

	apps, err := h.applicationUC.MyApplications(c, candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

// ListForJob godoc
// @Summary      List applications for a job
// @Description  Get every application for one of the vendor's own jobs
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vendor/jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	vendorID := c.GetString(string(domain.KeyUserID))

	apps, err := h.applicationUC.ListForJob(c, vendorID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application list", gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Move an application through the review pipeline (owner vendor only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      string                          true  "Application ID"
// @Param        status  body      UpdateApplicationStatusRequest  true  "Status JSON"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /vendor/applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	vendorID := c.GetString(string(domain.KeyUserID))

	if err := h.applicationUC.UpdateStatus(c, vendorID, c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}

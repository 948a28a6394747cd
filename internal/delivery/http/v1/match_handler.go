package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"matchdb-jobs-service/internal/delivery/http/middleware"
	"matchdb-jobs-service/internal/delivery/http/response"
	"matchdb-jobs-service/internal/domain"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

func NewMatchHandler(protected *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	candidate := protected.Group("/matches")
	candidate.Use(middleware.RequireCandidate())
	{
		candidate.GET("/jobs", handler.JobsForCandidate)
	}

	vendor := protected.Group("/vendor/matches")
	vendor.Use(middleware.RequireVendor())
	{
		vendor.GET("/candidates", handler.CandidatesForVendor)
	}
}

// JobsForCandidate godoc
// @Summary      Ranked job matches
// @Description  Rank all visible active jobs for the logged-in candidate. Facet counts cover the whole filtered set, not just the returned page.
// @Tags         matches
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /matches/jobs [get]
// @Security     BearerAuth
func (h *MatchHandler) JobsForCandidate(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	candidateID := c.GetString(string(domain.KeyUserID))
	plan := c.GetString(string(domain.KeyUserPlan))

	matches, facets, total, err := h.matchUC.MatchesForCandidate(c, candidateID, plan, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job matches", gin.H{
		"matches":   matches,
		"facets":    facets,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// CandidatesForVendor godoc
// @Summary      Ranked candidate matches
// @Description  Rank candidates against the vendor's active jobs, each with their single best-matching job. Pass job_id to match against one job only.
// @Tags         matches
// @Produce      json
// @Param        job_id  query     string  false  "Restrict matching to one job"
// @Success      200     {object}  response.Response
// @Router       /vendor/matches/candidates [get]
// @Security     BearerAuth
func (h *MatchHandler) CandidatesForVendor(c *gin.Context) {
	vendorID := c.GetString(string(domain.KeyUserID))

	matches, err := h.matchUC.CandidatesForVendor(c, vendorID, c.Query("job_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate matches", gin.H{
		"matches": matches,
		"total":   len(matches),
	})
}

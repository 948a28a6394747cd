package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchdb-jobs-service/internal/delivery/http/middleware"
	"matchdb-jobs-service/internal/delivery/http/response"
	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/pkg/apperror"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	public.GET("/candidates", handler.ListPublic)

	candidate := protected.Group("/profile")
	candidate.Use(middleware.RequireCandidate())
	{
		candidate.GET("", handler.Get)
		candidate.POST("", handler.Create)
		candidate.PUT("", handler.Update)
	}
}

type ProfileRequest struct {
	Name               string                  `json:"name"`
	Phone              string                  `json:"phone"`
	CurrentCompany     string                  `json:"current_company"`
	CurrentRole        string                  `json:"current_role"`
	PreferredJobType   string                  `json:"preferred_job_type"`
	ExpectedHourlyRate *float64                `json:"expected_hourly_rate"`
	ExperienceYears    *int                    `json:"experience_years"`
	Location           string                  `json:"location"`
	ProfileCountry     string                  `json:"profile_country"`
	Bio                string                  `json:"bio"`
	ResumeSummary      string                  `json:"resume_summary"`
	ResumeExperience   string                  `json:"resume_experience"`
	ResumeEducation    string                  `json:"resume_education"`
	ResumeAchievements string                  `json:"resume_achievements"`
	VisibilityConfig   domain.VisibilityConfig `json:"visibility_config"`
}

func (r *ProfileRequest) toUpdate() *domain.ProfileUpdate {
	return &domain.ProfileUpdate{
		Name:               r.Name,
		Phone:              r.Phone,
		CurrentCompany:     r.CurrentCompany,
		CurrentRole:        r.CurrentRole,
		PreferredJobType:   r.PreferredJobType,
		ExpectedHourlyRate: r.ExpectedHourlyRate,
		ExperienceYears:    r.ExperienceYears,
		Location:           r.Location,
		ProfileCountry:     r.ProfileCountry,
		Bio:                r.Bio,
		ResumeSummary:      r.ResumeSummary,
		ResumeExperience:   r.ResumeExperience,
		ResumeEducation:    r.ResumeEducation,
		ResumeAchievements: r.ResumeAchievements,
		VisibilityConfig:   r.VisibilityConfig,
	}
}

// Get godoc
// @Summary      Get own profile
// @Description  Get the logged-in candidate's full profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetProfile(c, candidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// Create godoc
// @Summary      Create profile
// @Description  Create the candidate's profile. Skills are extracted from the resume text; the profile is locked on first write.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      ProfileRequest  true  "Profile JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /profile [post]
// @Security     BearerAuth
func (h *ProfileHandler) Create(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidateID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	profile, err := h.profileUC.CreateProfile(c, candidateID, email, req.toUpdate())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", profile)
}

// Update godoc
// @Summary      Update profile
// @Description  Update the candidate's profile. Once locked, resume fields only accept appends, experience cannot decrease and visibility settings only widen.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      ProfileRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidateID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	profile, err := h.profileUC.UpdateProfile(c, candidateID, email, req.toUpdate())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// ListPublic godoc
// @Summary      List public candidate profiles
// @Description  Get the trimmed public view of every candidate profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /candidates [get]
func (h *ProfileHandler) ListPublic(c *gin.Context) {
	profiles, err := h.profileUC.ListPublicProfiles(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate list", gin.H{
		"candidates": profiles,
		"total":      len(profiles),
	})
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchdb-jobs-service/internal/delivery/http/response"
	"matchdb-jobs-service/internal/domain"
	"matchdb-jobs-service/pkg/apperror"
)

type PokeHandler struct {
	pokeUC domain.PokeUsecase
}

func NewPokeHandler(protected *gin.RouterGroup, pokeUC domain.PokeUsecase) {
	handler := &PokeHandler{pokeUC: pokeUC}

	pokes := protected.Group("/pokes")
	{
		pokes.POST("", handler.Send)
		pokes.GET("/sent", handler.ListSent)
		pokes.GET("/received", handler.ListReceived)
	}
}

type SendPokeRequest struct {
	TargetID       string `json:"target_id" binding:"required"`
	TargetVendorID string `json:"target_vendor_id"`
	TargetEmail    string `json:"target_email" binding:"required,email"`
	TargetName     string `json:"target_name" binding:"required"`
	Subject        string `json:"subject"`
	IsEmail        bool   `json:"is_email"`
	JobID          string `json:"job_id"`
	JobTitle       string `json:"job_title"`
	SenderName     string `json:"sender_name"`
}

// Send godoc
// @Summary      Send a poke
// @Description  Nudge a candidate or vendor. One quick poke and one email poke are allowed per target; monthly volume is capped by plan.
// @Tags         pokes
// @Accept       json
// @Produce      json
// @Param        poke  body      SendPokeRequest  true  "Poke JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Router       /pokes [post]
// @Security     BearerAuth
func (h *PokeHandler) Send(c *gin.Context) {
	var req SendPokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	sender := domain.PokeSender{
		UserID:   c.GetString(string(domain.KeyUserID)),
		Email:    c.GetString(string(domain.KeyUserEmail)),
		Name:     req.SenderName,
		UserType: c.GetString(string(domain.KeyUserType)),
		Plan:     c.GetString(string(domain.KeyUserPlan)),
	}

	rec, err := h.pokeUC.SendPoke(c, sender, &domain.PokeInput{
		TargetID:       req.TargetID,
		TargetVendorID: req.TargetVendorID,
		TargetEmail:    req.TargetEmail,
		TargetName:     req.TargetName,
		Subject:        req.Subject,
		IsEmail:        req.IsEmail,
		JobID:          req.JobID,
		JobTitle:       req.JobTitle,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Poke sent", rec)
}

// ListSent godoc
// @Summary      List sent pokes
// @Tags         pokes
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /pokes/sent [get]
// @Security     BearerAuth
func (h *PokeHandler) ListSent(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	pokes, err := h.pokeUC.ListSent(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Sent pokes", gin.H{
		"pokes": pokes,
		"total": len(pokes),
	})
}

// ListReceived godoc
// @Summary      List received pokes
// @Description  Candidates see pokes aimed at their profile; vendors see pokes aimed at any of their jobs.
// @Tags         pokes
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /pokes/received [get]
// @Security     BearerAuth
func (h *PokeHandler) ListReceived(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	userType := c.GetString(string(domain.KeyUserType))

	pokes, err := h.pokeUC.ListReceived(c, userID, userType)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Received pokes", gin.H{
		"pokes": pokes,
		"total": len(pokes),
	})
}

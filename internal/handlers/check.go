package handlers

import (
	"errors"
	"net/http"

	"github.com/anapiyani/Checkdaily-backend/internal/auth"
	"github.com/anapiyani/Checkdaily-backend/internal/dto"
	"github.com/anapiyani/Checkdaily-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckHandler handles check CRUD and today's check-in.
type CheckHandler struct {
	svc *service.CheckService
}

// NewCheckHandler returns a new CheckHandler.
func NewCheckHandler(svc *service.CheckService) *CheckHandler {
	return &CheckHandler{svc: svc}
}

// Create godoc
// @Summary      Create a check
// @Tags         checks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateCheckRequest  true  "Check body"
// @Success      201   {object}  dto.CheckResponse
// @Failure      400   {object}  map[string]string
// @Router       /checks [post]
func (h *CheckHandler) Create(c *gin.Context) {
	var req dto.CreateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), req.Name, req.Count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create check"})
		return
	}
	c.JSON(http.StatusCreated, checkToResponse(view))
}

// List godoc
// @Summary      List all checks for the current user
// @Tags         checks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CheckListResponse
// @Failure      500  {object}  map[string]string
// @Router       /checks [get]
func (h *CheckHandler) List(c *gin.Context) {
	views, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.CheckResponse, 0, len(views))
	for _, v := range views {
		out = append(out, checkToResponse(v))
	}
	c.JSON(http.StatusOK, dto.CheckListResponse{Checks: out})
}

// GetByID godoc
// @Summary      Get a check by ID
// @Tags         checks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Check ID"
// @Success      200  {object}  dto.CheckResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /checks/{id} [get]
func (h *CheckHandler) GetByID(c *gin.Context) {
	view, err := h.svc.Get(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "check not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, checkToResponse(view))
}

// Update godoc
// @Summary      Rename and/or resize a check
// @Tags         checks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Check ID"
// @Param        body  body      dto.UpdateCheckRequest  true  "Partial update"
// @Success      200   {object}  dto.CheckResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /checks/{id} [put]
func (h *CheckHandler) Update(c *gin.Context) {
	var req dto.UpdateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"), req.Name, req.Count)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "check not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, checkToResponse(view))
}

// Delete godoc
// @Summary      Delete a check
// @Tags         checks
// @Security     BearerAuth
// @Param        id   path  string  true  "Check ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /checks/{id} [delete]
func (h *CheckHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "check not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckToday godoc
// @Summary      Mark today as completed
// @Tags         checks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Check ID"
// @Success      200  {object}  dto.CheckResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /checks/{id}/check-today [post]
func (h *CheckHandler) CheckToday(c *gin.Context) {
	h.toggleToday(c, true)
}

// UncheckToday godoc
// @Summary      Clear today's completion
// @Tags         checks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Check ID"
// @Success      200  {object}  dto.CheckResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /checks/{id}/uncheck-today [post]
func (h *CheckHandler) UncheckToday(c *gin.Context) {
	h.toggleToday(c, false)
}

func (h *CheckHandler) toggleToday(c *gin.Context, checked bool) {
	view, err := h.svc.ToggleToday(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"), checked)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "check not found"})
			return
		}
		if errors.Is(err, service.ErrNoEntryToday) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no entry for today"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, checkToResponse(view))
}

func checkToResponse(v service.CheckView) dto.CheckResponse {
	days := make([]dto.DayStatusResponse, 0, len(v.Days))
	for _, ds := range v.Days {
		days = append(days, dto.DayStatusResponse{
			ID:        ds.ID,
			Date:      ds.Date,
			IsChecked: ds.IsChecked,
			CheckedAt: ds.CheckedAt,
		})
	}
	return dto.CheckResponse{
		ID:            v.Check.ID,
		Name:          v.Check.Name,
		Count:         v.Check.Count,
		CreatedAt:     v.Check.CreatedAt,
		PassedDays:    v.Stats.PassedDays,
		Percentage:    v.Stats.Percentage,
		CurrentStreak: v.Stats.CurrentStreak,
		LongestStreak: v.Stats.LongestStreak,
		Days:          days,
	}
}

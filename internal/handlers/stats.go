package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anapiyani/Checkdaily-backend/internal/auth"
	"github.com/anapiyani/Checkdaily-backend/internal/dto"
	"github.com/anapiyani/Checkdaily-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles the cross-check activity endpoints.
type StatsHandler struct {
	svc *service.CheckService
}

// NewStatsHandler returns a new StatsHandler.
func NewStatsHandler(svc *service.CheckService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// YearlyActivity godoc
// @Summary      GitHub-style yearly activity grid
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        year  query     int  true  "Year (1970-2100)"
// @Success      200   {object}  dto.YearActivityResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /stats/yearly-activity [get]
func (h *StatsHandler) YearlyActivity(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}
	grid, maxCount, err := h.svc.YearlyActivity(c.Request.Context(), auth.UserIDFromContext(c), year)
	if err != nil {
		if errors.Is(err, service.ErrYearOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be between 1970 and 2100"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	days := make([]dto.YearDayActivity, 0, len(grid))
	for _, d := range grid {
		days = append(days, dto.YearDayActivity{
			Date:           d.Date.Format("2006-01-02"),
			CompletedCount: d.CompletedCount,
		})
	}
	c.JSON(http.StatusOK, dto.YearActivityResponse{Year: year, MaxCount: maxCount, Days: days})
}

package handler

import (
	"net/http"
	"strconv"

	"crm-backend/internal/analytics"
	"crm-backend/internal/middleware"
	"crm-backend/internal/model"
	"crm-backend/internal/service"
	"crm-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type PerformanceHandler struct {
	performanceService service.PerformanceService
}

func NewPerformanceHandler(performanceService service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService}
}

func (h *PerformanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	perfGroup := router.Group("/api/performance")
	perfGroup.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleAnalyst))
	{
		perfGroup.GET("/teams", h.GetTeamPerformance)
		perfGroup.GET("/agents", h.GetAgentPerformance)
		perfGroup.GET("/classification", h.GetClassification)
		perfGroup.POST("/refresh", h.Refresh)
	}
}

// parseFilter reads the optional year/quarter/manager/agent query params.
// A quarter outside 1-4 is rejected by the callers.
func parseFilter(c *gin.Context) (analytics.Filter, bool) {
	var filter analytics.Filter
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, false
		}
		filter.Year = year
	}
	if v := c.Query("quarter"); v != "" {
		quarter, err := strconv.Atoi(v)
		if err != nil || quarter < 1 || quarter > 4 {
			return filter, false
		}
		filter.Quarter = quarter
	}
	filter.Manager = c.Query("manager")
	filter.SalesAgent = c.Query("agent")
	return filter, true
}

// @Summary      Get Team Performance
// @Description  Quarterly team metrics: revenue, win rate, average deal size and period-over-period revenue change
// @Tags         Performance
// @Produce      json
// @Param        year    query int    false "Filter by year"
// @Param        quarter query int    false "Filter by quarter (1-4)"
// @Param        manager query string false "Filter by team manager"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "Invalid filter"
// @Failure      401 {object} response.Response "Unauthorized"
// @Failure      500 {object} response.Response "Internal server error"
// @Security     BearerAuth
// @Router       /api/performance/teams [get]
func (h *PerformanceHandler) GetTeamPerformance(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid year or quarter parameter"))
		return
	}

	rows, err := h.performanceService.TeamPerformance(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// @Summary      Get Agent Performance
// @Description  Quarterly per-agent metrics rolled up from product-level groups, including sales cycle length
// @Tags         Performance
// @Produce      json
// @Param        year    query int    false "Filter by year"
// @Param        quarter query int    false "Filter by quarter (1-4)"
// @Param        agent   query string false "Filter by sales agent"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "Invalid filter"
// @Failure      401 {object} response.Response "Unauthorized"
// @Failure      500 {object} response.Response "Internal server error"
// @Security     BearerAuth
// @Router       /api/performance/agents [get]
func (h *PerformanceHandler) GetAgentPerformance(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid year or quarter parameter"))
		return
	}

	rows, err := h.performanceService.AgentPerformance(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// @Summary      Get Sales Performance Classification
// @Description  Decile ranking of agent quarterly revenue with the 3-way performance category
// @Tags         Performance
// @Produce      json
// @Param        year    query int    false "Filter by year"
// @Param        quarter query int    false "Filter by quarter (1-4)"
// @Param        agent   query string false "Filter by sales agent"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "Invalid filter"
// @Failure      401 {object} response.Response "Unauthorized"
// @Failure      500 {object} response.Response "Internal server error"
// @Security     BearerAuth
// @Router       /api/performance/classification [get]
func (h *PerformanceHandler) GetClassification(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid year or quarter parameter"))
		return
	}

	rows, err := h.performanceService.Classification(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// @Summary      Refresh Performance Views
// @Description  Recompute all views from the current table contents and notify connected clients
// @Tags         Performance
// @Produce      json
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "Unauthorized"
// @Failure      500 {object} response.Response "Internal server error"
// @Security     BearerAuth
// @Router       /api/performance/refresh [post]
func (h *PerformanceHandler) Refresh(c *gin.Context) {
	if err := h.performanceService.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"refreshed": true}))
}

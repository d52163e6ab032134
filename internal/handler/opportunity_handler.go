package handler

import (
	"net/http"

	"crm-backend/internal/middleware"
	"crm-backend/internal/model"
	"crm-backend/internal/service"
	"crm-backend/pkg/pagination"
	"crm-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type OpportunityHandler struct {
	opportunityService service.OpportunityService
}

func NewOpportunityHandler(opportunityService service.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{opportunityService: opportunityService}
}

func (h *OpportunityHandler) RegisterRoutes(router *gin.RouterGroup) {
	oppGroup := router.Group("/api/opportunities")
	oppGroup.Use(middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleAnalyst))
	{
		oppGroup.GET("", h.ListOpportunities)
	}
}

// @Summary      List Opportunities
// @Description  Paginated raw pipeline rows as loaded by the ingestion pipeline; the total includes rows without an engage date
// @Tags         Opportunities
// @Produce      json
// @Param        page  query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "Unauthorized"
// @Failure      500 {object} response.Response "Internal server error"
// @Security     BearerAuth
// @Router       /api/opportunities [get]
func (h *OpportunityHandler) ListOpportunities(c *gin.Context) {
	params := pagination.Parse(c)

	opps, total, err := h.opportunityService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"opportunities": opps,
		"total":         total,
		"page":          params.Page,
		"limit":         params.Limit,
	}))
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adrianocesar/processos-backend-go/internal/analysis"
	"github.com/adrianocesar/processos-backend-go/internal/models"
	"github.com/adrianocesar/processos-backend-go/internal/service"
	"github.com/adrianocesar/processos-backend-go/pkg/response"
)

// DashboardHandler handles HTTP requests for the dashboard views
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// bindFilter parses the shared filter parameters. Reports false after
// responding with a 400 when they are malformed.
func bindFilter(c *gin.Context) (models.DashboardFilter, bool) {
	var filter models.DashboardFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return filter, false
	}
	return filter, true
}

// bindLimit parses the limit query parameter with a default.
func bindLimit(c *gin.Context, def int) (int, bool) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(def))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		response.BadRequest(c, "Invalid limit parameter")
		return 0, false
	}
	if limit == 0 {
		limit = def
	}
	return limit, true
}

// bindOrder parses the order query parameter (asc|desc, default desc).
func bindOrder(c *gin.Context) (analysis.Order, bool) {
	switch c.DefaultQuery("order", "desc") {
	case "desc":
		return analysis.Descending, true
	case "asc":
		return analysis.Ascending, true
	default:
		response.BadRequest(c, "Invalid order parameter, expected asc or desc")
		return analysis.Descending, false
	}
}

// GetMeta handles GET /api/v1/dashboard/meta
func (h *DashboardHandler) GetMeta(c *gin.Context) {
	response.Success(c, h.dashboardService.Meta())
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, summary)
}

// GetYearly handles GET /api/v1/dashboard/yearly
func (h *DashboardHandler) GetYearly(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	yearly, err := h.dashboardService.Yearly(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  yearly,
		"count": len(yearly),
	})
}

// GetTopSubjects handles GET /api/v1/dashboard/subjects/top
func (h *DashboardHandler) GetTopSubjects(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	limit, ok := bindLimit(c, service.DefaultTopK)
	if !ok {
		return
	}
	order, ok := bindOrder(c)
	if !ok {
		return
	}

	table, err := h.dashboardService.TopSubjects(filter, limit, order)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  table,
		"count": len(table),
	})
}

// GetTopClasses handles GET /api/v1/dashboard/classes/top
func (h *DashboardHandler) GetTopClasses(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	limit, ok := bindLimit(c, service.DefaultTopK)
	if !ok {
		return
	}
	order, ok := bindOrder(c)
	if !ok {
		return
	}

	table, err := h.dashboardService.TopClasses(filter, limit, order)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  table,
		"count": len(table),
	})
}

// GetSubjectsByClass handles GET /api/v1/dashboard/subjects/by-class
func (h *DashboardHandler) GetSubjectsByClass(c *gin.Context) {
	class := c.Query("classe")
	if class == "" {
		response.BadRequest(c, "Missing classe parameter")
		return
	}

	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	limit, ok := bindLimit(c, service.DefaultTopK)
	if !ok {
		return
	}
	order, ok := bindOrder(c)
	if !ok {
		return
	}

	table, err := h.dashboardService.SubjectsByClass(filter, class, limit, order)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"classe": class,
		"data":   table,
		"count":  len(table),
	})
}

// GetClassesBySubject handles GET /api/v1/dashboard/classes/by-subject
func (h *DashboardHandler) GetClassesBySubject(c *gin.Context) {
	subject := c.Query("assunto")
	if subject == "" {
		response.BadRequest(c, "Missing assunto parameter")
		return
	}

	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	limit, ok := bindLimit(c, service.DefaultTopK)
	if !ok {
		return
	}
	order, ok := bindOrder(c)
	if !ok {
		return
	}

	table, err := h.dashboardService.ClassesBySubject(filter, subject, limit, order)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"assunto": subject,
		"data":    table,
		"count":   len(table),
	})
}

// GetSubjectDetail handles GET /api/v1/dashboard/subjects/detail
func (h *DashboardHandler) GetSubjectDetail(c *gin.Context) {
	subject := c.Query("assunto")
	if subject == "" {
		response.BadRequest(c, "Missing assunto parameter")
		return
	}

	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	detail, err := h.dashboardService.SubjectDetail(filter, subject)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, detail)
}

// GetRecords handles GET /api/v1/dashboard/records
func (h *DashboardHandler) GetRecords(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	limit, ok := bindLimit(c, service.DefaultPreviewLimit)
	if !ok {
		return
	}

	records, err := h.dashboardService.Records(filter, limit)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  records,
		"count": len(records),
	})
}

// GetMap handles GET /api/v1/dashboard/map
func (h *DashboardHandler) GetMap(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	mapResp, err := h.dashboardService.Map(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, mapResp)
}

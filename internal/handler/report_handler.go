package handler

import (
	"bytes"
	"errors"
	"net/http"

	"orderanalytics/internal/analytics"
	"orderanalytics/internal/dataset"
	"orderanalytics/internal/export"
	"orderanalytics/internal/middleware"
	"orderanalytics/internal/repository"
	"orderanalytics/internal/service"
	"orderanalytics/pkg/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reportService service.ReportService
	secret        []byte
}

func NewReportHandler(reportService service.ReportService, secret []byte) *ReportHandler {
	return &ReportHandler{reportService: reportService, secret: secret}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	readers := middleware.RequireRole(h.secret, middleware.RoleAdmin, middleware.RoleAnalyst)

	reports := router.Group("/api/reports")
	{
		reports.POST("", readers, h.GenerateReport)
		reports.GET("", readers, h.GetReport)
		reports.GET("/:section", readers, h.GetReportSection)
	}
	router.GET("/api/exports/report.xlsx", readers, h.ExportReport)
}

// GenerateReport runs the analytics pipeline over the posted dataset
// @Summary      Generate report from dataset
// @Description  Runs tariffs, product, order, profit distribution and ABC reports over the orders in the body
// @Tags         reports
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      []model.Order  true  "Orders dataset"
// @Success      200      {object}  response.Response{data=model.Report}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/reports [post]
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	orders, err := dataset.Decode(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(http.StatusBadRequest, err))
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), orders, service.SourceRequest)
	if err != nil {
		status := errorStatus(err)
		c.JSON(status, response.Fail(status, err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}

// GetReport runs the pipeline over all stored orders
// @Summary      Get report for stored orders
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.Report}
// @Failure      422  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/reports [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.GenerateFromStore(c.Request.Context())
	if err != nil {
		status := errorStatus(err)
		c.JSON(status, response.Fail(status, err))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}

// GetReportSection returns one table of the stored-orders report
// @Summary      Get one report section
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        section  path      string  true  "tariffs, products, orders, order_summary, distribution or abc"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/reports/{section} [get]
func (h *ReportHandler) GetReportSection(c *gin.Context) {
	section := c.Param("section")
	if !export.ValidSection(section) {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "unknown report section: "+section))
		return
	}

	report, err := h.reportService.GenerateFromStore(c.Request.Context())
	if err != nil {
		status := errorStatus(err)
		c.JSON(status, response.Fail(status, err))
		return
	}

	var data interface{}
	switch section {
	case export.SectionTariffs:
		data = report.Tariffs
	case export.SectionProducts:
		data = report.Products
	case export.SectionOrders:
		data = report.Orders.Orders
	case export.SectionOrderSummary:
		data = report.Orders
	case export.SectionDistribution:
		data = report.Distribution
	case export.SectionABC:
		data = report.ABC
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"section":     section,
		"rows":        data,
		"fingerprint": report.Fingerprint,
	}))
}

// ExportReport downloads the stored-orders report as an XLSX workbook
// @Summary      Export report workbook
// @Tags         reports
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      500  {object}  response.Response
// @Router       /api/exports/report.xlsx [get]
func (h *ReportHandler) ExportReport(c *gin.Context) {
	report, err := h.reportService.GenerateFromStore(c.Request.Context())
	if err != nil {
		status := errorStatus(err)
		c.JSON(status, response.Fail(status, err))
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, export.Tables(report)...); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to build workbook: "+err.Error()))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+workbookName(report.Fingerprint)+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func workbookName(fingerprint string) string {
	if len(fingerprint) < 12 {
		return "report.xlsx"
	}
	return "report-" + fingerprint[:12] + ".xlsx"
}

// errorStatus maps pipeline and store errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, analytics.ErrMalformedRecord),
		errors.Is(err, analytics.ErrZeroQuantity):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrDuplicateOrder):
		return http.StatusConflict
	case errors.Is(err, analytics.ErrEmptyDataset),
		errors.Is(err, analytics.ErrZeroWarehouseProfit):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

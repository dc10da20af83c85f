package api

import (
	"bytes"
	"net/http"
	"strconv"

	"shipment_erp/internal/app/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Reports *service.ReportService
}

// MonthlyCSVAPI - GET /api/reports/export/monthly/csv?month=&year=

// @Summary Monthly CSV export
// @Description Shipments created in the given month (UTC) as a CSV attachment
// @Tags reports
// @Produce text/csv
// @Param month query int true "Month 1-12"
// @Param year query int true "Year"
// @Success 200 {file} file "monthly-report.csv"
// @Failure 400 {object} object "error: string"
// @Failure 500 {object} object "error: string"
// @Router /api/reports/export/monthly/csv [get]
func (h *ReportHandler) MonthlyCSVAPI(c *gin.Context) {
	month, errMonth := strconv.Atoi(c.Query("month"))
	year, errYear := strconv.Atoi(c.Query("year"))
	if errMonth != nil || errYear != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "month and year are required numbers",
		})
		return
	}

	shipments, err := h.Reports.Monthly(c.Request.Context(), month, year)
	if err != nil {
		errorResponse(c, err)
		return
	}

	var buf bytes.Buffer
	if err := service.WriteCSV(&buf, shipments); err != nil {
		errorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=monthly-report.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

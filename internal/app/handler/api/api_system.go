package api

import (
	"net/http"
	"time"

	"shipment_erp/internal/app/repository"
	"shipment_erp/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SystemHandler struct {
	Store     repository.Store
	Enquiries *service.EnquiryNumbers
	Database  string
}

// TestAPI - GET /api/test - проверка, что сервер жив

// @Summary Liveness check
// @Tags system
// @Produce json
// @Success 200 {object} object "status: string, database: string, timestamp: string"
// @Router /api/test [get]
func (h *SystemHandler) TestAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"database":  h.Database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// DBTestAPI - GET /api/db-test - проверка соединения с БД

// @Summary Database connectivity check
// @Tags system
// @Produce json
// @Success 200 {object} object "success: bool, message: string"
// @Failure 500 {object} object "success: bool, message: string"
// @Router /api/db-test [get]
func (h *SystemHandler) DBTestAPI(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		logrus.WithField("error", err).Error("database ping failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
	})
}

// EnquiryNumberAPI - GET /api/enquiry-number - следующий номер QMRel

// @Summary Next enquiry number
// @Description Format QMRel-<year>-<seq>
// @Tags system
// @Produce json
// @Success 200 {object} object "enquiryNo: string"
// @Failure 500 {object} object "error: string"
// @Router /api/enquiry-number [get]
func (h *SystemHandler) EnquiryNumberAPI(c *gin.Context) {
	enquiryNo, err := h.Enquiries.Next(c.Request.Context())
	if err != nil {
		logrus.WithField("error", err).Error("enquiry number failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate enquiry number",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"enquiryNo": enquiryNo,
	})
}

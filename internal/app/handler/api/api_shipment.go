package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/config"
	"shipment_erp/internal/app/ds"
	"shipment_erp/internal/app/importer"
	"shipment_erp/internal/app/notify"
	"shipment_erp/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShipmentHandler struct {
	Service   *service.ShipmentService
	Importer  *importer.Importer
	Mailer    notify.Mailer
	UploadDir string
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid shipment ID",
		})
		return 0, false
	}
	return uint(id), true
}

// CreateShipmentAPI - POST /api/shipments - создание отгрузки

// @Summary Create a shipment
// @Description Create a shipment from raw form fields. Empty strings are stored as null, numeric fields are parsed.
// @Tags shipments
// @Accept json
// @Produce json
// @Param shipment body object true "Shipment fields"
// @Success 201 {object} object "id: int"
// @Failure 400 {object} object "error: string"
// @Failure 500 {object} object "error: string"
// @Router /api/shipments [post]
func (h *ShipmentHandler) CreateShipmentAPI(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	id, err := h.Service.Create(c.Request.Context(), raw)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": id,
	})
}

// UpdateShipmentAPI - PUT /api/shipments/:id - обновление только переданных полей

// @Summary Update a shipment
// @Description Write the supplied fields; fields not in the body keep their values
// @Tags shipments
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param shipment body object true "Fields to update"
// @Success 200 {object} object "message: string, id: int"
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Router /api/shipments/{id} [put]
func (h *ShipmentHandler) UpdateShipmentAPI(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if _, err := h.Service.Update(c.Request.Context(), id, raw); err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "updated",
		"id":      id,
	})
}

// GetShipmentAPI - GET /api/shipments/:id - одна отгрузка

// @Summary Get a shipment
// @Tags shipments
// @Produce json
// @Param id path int true "Shipment ID"
// @Success 200 {object} ds.Shipment
// @Failure 404 {object} object "error: string"
// @Router /api/shipments/{id} [get]
func (h *ShipmentHandler) GetShipmentAPI(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	shipment, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, shipment)
}

// GetShipmentsAPI - GET /api/shipments - список, новые сверху

// @Summary List shipments
// @Description Newest first, capped by the configured list limit
// @Tags shipments
// @Produce json
// @Param status query string false "ACTIVE or CANCELLED"
// @Param delivery_status query string false "IN_PROCESS, IN_TRANSIT or DELIVERED"
// @Param mode query string false "Transport mode"
// @Param customer query string false "Customer substring"
// @Param q query string false "Search enquiry, invoice, BL, container and part numbers"
// @Param limit query int false "Max rows"
// @Success 200 {array} ds.Shipment
// @Failure 500 {object} object "error: string"
// @Router /api/shipments [get]
func (h *ShipmentHandler) GetShipmentsAPI(c *gin.Context) {
	filter := ds.ShipmentFilter{
		Status:         c.Query("status"),
		DeliveryStatus: c.Query("delivery_status"),
		Mode:           c.Query("mode"),
		Customer:       strings.TrimSpace(c.Query("customer")),
		Search:         strings.TrimSpace(c.Query("q")),
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		filter.Limit = n
	}

	shipments, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, shipments)
}

type statusRequest struct {
	Status string `json:"status"`
}

type deliveryStatusRequest struct {
	DeliveryStatus string `json:"delivery_status"`
}

type manualDescRequest struct {
	ManualDesc string `json:"manual_desc"`
}

// SetStatusAPI - PATCH /api/shipments/:id/status - отмена / восстановление

// @Summary Set shipment status
// @Tags shipments
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param body body statusRequest true "ACTIVE or CANCELLED"
// @Success 200 {object} object "success: bool"
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Router /api/shipments/{id}/status [patch]
func (h *ShipmentHandler) SetStatusAPI(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body statusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.SetStatus(c.Request.Context(), id, body.Status); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetDeliveryStatusAPI - PATCH /api/shipments/:id/delivery-status

// @Summary Set delivery status
// @Tags shipments
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param body body deliveryStatusRequest true "IN_PROCESS, IN_TRANSIT or DELIVERED"
// @Success 200 {object} object "success: bool"
// @Failure 400 {object} object "error: string"
// @Failure 404 {object} object "error: string"
// @Router /api/shipments/{id}/delivery-status [patch]
func (h *ShipmentHandler) SetDeliveryStatusAPI(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body deliveryStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.SetDeliveryStatus(c.Request.Context(), id, body.DeliveryStatus); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetManualDescAPI - PUT /api/shipments/:id/manual-desc

// @Summary Set manual description
// @Tags shipments
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param body body manualDescRequest true "Free text, empty clears it"
// @Success 200 {object} object "success: bool"
// @Failure 404 {object} object "error: string"
// @Router /api/shipments/{id}/manual-desc [put]
func (h *ShipmentHandler) SetManualDescAPI(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body manualDescRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.SetManualDesc(c.Request.Context(), id, body.ManualDesc); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DashboardSummaryAPI - GET /api/shipments/dashboard/summary

// @Summary Dashboard counts
// @Description Total shipments with counts per mode and per status, read from one snapshot
// @Tags shipments
// @Produce json
// @Success 200 {object} ds.DashboardSummary
// @Failure 500 {object} object "error: string"
// @Router /api/shipments/dashboard/summary [get]
func (h *ShipmentHandler) DashboardSummaryAPI(c *gin.Context) {
	summary, err := h.Service.DashboardSummary(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

var uploadExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".csv":  true,
}

// BulkUploadAPI - POST /api/shipments/bulk-upload - импорт из Excel/CSV

// @Summary Bulk upload shipments
// @Description Import every row of the first sheet; bad rows are reported and skipped
// @Tags shipments
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx or csv file"
// @Success 200 {object} object "success: bool, inserted: int, errors: []importer.RowError"
// @Failure 400 {object} object "error: string"
// @Router /api/shipments/bulk-upload [post]
func (h *ShipmentHandler) BulkUploadAPI(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file uploaded",
		})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !uploadExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unsupported file type " + ext,
		})
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		errorResponse(c, err)
		return
	}
	// Генерируем уникальное имя файла
	path := filepath.Join(h.UploadDir, uuid.New().String()+ext)
	if err := c.SaveUploadedFile(file, path); err != nil {
		_ = os.Remove(path)
		errorResponse(c, err)
		return
	}

	result, err := h.Importer.ImportFile(c.Request.Context(), path)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			errorResponse(c, err)
			return
		}
		config.LogError("api", "BulkUploadAPI", "bulk upload interrupted", gin.H{
			"file":     file.Filename,
			"inserted": result.Inserted,
		}, err)
		c.JSON(statusCode(err), gin.H{
			"success":  false,
			"inserted": result.Inserted,
			"errors":   result.Errors,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"inserted": result.Inserted,
		"errors":   result.Errors,
	})
}

type trackingMailRequest struct {
	NotifyEmail  string `json:"notify_email" binding:"required,email"`
	BlNo         string `json:"bl_no"`
	ContainerNo  string `json:"container_no"`
	ETD          string `json:"etd"`
	ETA          string `json:"eta"`
	EmailMessage string `json:"email_message"`
}

// SendTrackingMailAPI - POST /api/shipments/send-mail - письмо клиенту

// @Summary Send tracking update mail
// @Tags shipments
// @Accept json
// @Produce json
// @Param body body trackingMailRequest true "Recipient and tracking fields"
// @Success 200 {object} object "success: bool"
// @Failure 400 {object} object "error: string"
// @Failure 500 {object} object "success: bool, error: string"
// @Router /api/shipments/send-mail [post]
func (h *ShipmentHandler) SendTrackingMailAPI(c *gin.Context) {
	var body trackingMailRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Mailer.SendTrackingUpdate(c.Request.Context(), body.NotifyEmail, notify.Tracking{
		BLNo:        body.BlNo,
		ContainerNo: body.ContainerNo,
		ETD:         body.ETD,
		ETA:         body.ETA,
		Message:     body.EmailMessage,
	})
	if err != nil {
		mailError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type emailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message"`
}

// SendEmailAPI - POST /api/shipments/send-email - произвольное письмо

// @Summary Send a free-form mail
// @Tags shipments
// @Accept json
// @Produce json
// @Param body body emailRequest true "Recipient, subject and text"
// @Success 200 {object} object "success: bool"
// @Failure 400 {object} object "error: string"
// @Router /api/shipments/send-email [post]
func (h *ShipmentHandler) SendEmailAPI(c *gin.Context) {
	var body emailRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Mailer.Send(c.Request.Context(), body.To, body.Subject, body.Message); err != nil {
		mailError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mailError(c *gin.Context, err error) {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		config.LogError("api", c.HandlerName(), "mail send failed", nil, err)
	}
	c.JSON(code, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

package api

import (
	"errors"
	"net/http"

	"shipment_erp/internal/app/apperr"
	"shipment_erp/internal/app/service"

	"github.com/gin-gonic/gin"
)

type PartHandler struct {
	Parts *service.PartReconciler
}

// GetPartAPI - GET /api/parts/:partNo - описание детали для автозаполнения формы

// @Summary Get part description
// @Description Returns an empty object when the part is unknown
// @Tags parts
// @Produce json
// @Param partNo path string true "Part number"
// @Success 200 {object} object "part_desc: string"
// @Failure 500 {object} object "error: string"
// @Router /api/parts/{partNo} [get]
func (h *PartHandler) GetPartAPI(c *gin.Context) {
	part, err := h.Parts.GetPart(c.Request.Context(), c.Param("partNo"))
	if errors.Is(err, apperr.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"part_desc": part.PartDesc,
	})
}

type partRequest struct {
	PartNo   string `json:"part_no"`
	PartDesc string `json:"part_desc"`
}

// CreatePartAPI - POST /api/parts - добавить деталь, существующая не меняется

// @Summary Create a part
// @Description Insert the part when the number is new; an existing description is kept
// @Tags parts
// @Accept json
// @Produce json
// @Param part body partRequest true "Part number and description"
// @Success 200 {object} object "success: bool"
// @Failure 400 {object} object "error: string"
// @Failure 500 {object} object "error: string"
// @Router /api/parts [post]
func (h *PartHandler) CreatePartAPI(c *gin.Context) {
	var body partRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Parts.CreatePart(c.Request.Context(), body.PartNo, body.PartDesc); err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

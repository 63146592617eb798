package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/service"
	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/types"
)

type ReceiptHandler struct {
	receipts *service.ReceiptService
}

func NewReceiptHandler(receipts *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

func (h *ReceiptHandler) RegisterRoutes(router *gin.RouterGroup) {
	receipts := router.Group("/receipts")
	{
		receipts.POST("/scan", h.Scan)
	}
}

func (h *ReceiptHandler) Scan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ScanReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.receipts.Scan(c.Request.Context(), userID, req.Image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

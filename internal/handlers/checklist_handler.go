package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Taichi412/checklist-backend/internal/models"
	"github.com/Taichi412/checklist-backend/internal/services"
)

// ChecklistHandler はチェックリスト関連のハンドラーを管理します。
type ChecklistHandler struct {
	checklistService *services.ChecklistService
}

// NewChecklistHandler は新しいChecklistHandlerを作成します。
func NewChecklistHandler(checklistService *services.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// GetChecklistHandler は指定施設のチェックリストを取得します。
func (h *ChecklistHandler) GetChecklistHandler(c *gin.Context) {
	facility := c.DefaultQuery("facility", models.DefaultFacility)

	items, err := h.checklistService.ListByFacility(facility)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checklist"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateChecklistHandler は新しいチェックリスト項目を作成します。
func (h *ChecklistHandler) CreateChecklistHandler(c *gin.Context) {
	var req models.ChecklistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	item, err := h.checklistService.Create(req.Name, req.Facility)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checklist item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateFieldHandler はチェックリスト項目の1ステータス列を更新します。
func (h *ChecklistHandler) UpdateFieldHandler(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	// value が文字列の "true" などの場合もここで400になる
	var req models.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field and boolean value are required"})
		return
	}

	if err := h.checklistService.UpdateField(id, req.Field, *req.Value); err != nil {
		if err == services.ErrFieldNotAllowed {
			c.JSON(http.StatusBadRequest, gin.H{"error": "field is not updatable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update checklist item"})
		return
	}

	c.Status(http.StatusOK)
}

package services

import (
	"errors"

	"github.com/Taichi412/checklist-backend/internal/models"
	"github.com/Taichi412/checklist-backend/internal/repositories"
)

// ErrFieldNotAllowed は許可リストに無いフィールド名が指定された場合のエラーです。
var ErrFieldNotAllowed = errors.New("field not allowed")

// ChecklistService はチェックリスト関連のビジネスロジックを扱います。
type ChecklistService struct {
	checklistRepo *repositories.ChecklistRepository
}

// NewChecklistService は新しいChecklistServiceを作成します。
func NewChecklistService(checklistRepo *repositories.ChecklistRepository) *ChecklistService {
	return &ChecklistService{checklistRepo: checklistRepo}
}

// ListByFacility は指定施設のチェックリストを取得します。未指定時は galleria。
func (s *ChecklistService) ListByFacility(facility string) ([]*models.ChecklistItem, error) {
	if facility == "" {
		facility = models.DefaultFacility
	}
	return s.checklistRepo.ListByFacility(facility)
}

// Create は新しいチェックリスト項目を作成します。
// facility 未指定時は galleria、ステータス列はすべて false で作成されます。
func (s *ChecklistService) Create(name, facility string) (*models.ChecklistItem, error) {
	if facility == "" {
		facility = models.DefaultFacility
	}
	return s.checklistRepo.Create(name, facility)
}

// UpdateField は1ステータス列を更新します。
// フィールド名は許可リストで検証し、通らなければストアに触れずに拒否します。
func (s *ChecklistService) UpdateField(id int, field string, value bool) error {
	column, ok := models.StatusColumns[field]
	if !ok {
		return ErrFieldNotAllowed
	}
	return s.checklistRepo.UpdateField(id, column, value)
}

package repositories

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/Taichi412/checklist-backend/internal/models"
)

// checklistColumns はSELECT時のカラム順です。Scanの順序と一致させること。
const checklistColumns = "id, name, facility, stayed, checked_out, bussing, amenities, washing, " +
	"bed_making, bath_toilet, vacuum, finishing, sheets, onsen_start, onsen_stop, " +
	"final_check, today_used, created_at, updated_at"

// ChecklistRepository は checklist_items テーブルの操作を行うための構造体です。
type ChecklistRepository struct {
	DB *sql.DB
}

// NewChecklistRepository は新しいChecklistRepositoryインスタンスを作成します。
func NewChecklistRepository(db *sql.DB) *ChecklistRepository {
	return &ChecklistRepository{DB: db}
}

// ListByFacility は指定施設のチェックリストをすべて取得します。
// 並び順はストアのデフォルトのままです。
func (r *ChecklistRepository) ListByFacility(facility string) ([]*models.ChecklistItem, error) {
	query := "SELECT " + checklistColumns + " FROM checklist_items WHERE facility = ?"

	rows, err := r.DB.Query(query, facility)
	if err != nil {
		log.Printf("Failed to query checklist items: %v", err)
		return nil, fmt.Errorf("could not query checklist items: %w", err)
	}
	defer rows.Close()

	// 0件でも null ではなく [] を返す
	items := []*models.ChecklistItem{}
	for rows.Next() {
		var item models.ChecklistItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Facility,
			&item.Stayed, &item.CheckedOut, &item.Bussing, &item.Amenities, &item.Washing,
			&item.BedMaking, &item.BathToilet, &item.Vacuum, &item.Finishing, &item.Sheets,
			&item.OnsenStart, &item.OnsenStop, &item.FinalCheck, &item.TodayUsed,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			log.Printf("Failed to scan checklist item: %v", err)
			return nil, fmt.Errorf("could not scan checklist item: %w", err)
		}
		items = append(items, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checklist items: %w", err)
	}

	return items, nil
}

// Create は新しいチェックリスト項目をデータベースに挿入します。
// ステータス列はすべてカラムのデフォルト (FALSE) に任せます。
func (r *ChecklistRepository) Create(name, facility string) (*models.ChecklistItem, error) {
	query := "INSERT INTO checklist_items (name, facility) VALUES (?, ?)"

	result, err := r.DB.Exec(query, name, facility)
	if err != nil {
		log.Printf("Failed to insert checklist item: %v", err)
		return nil, fmt.Errorf("could not insert checklist item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}

	// ゼロ値のboolフィールドがそのまま「すべてfalse」の初期状態になる
	return &models.ChecklistItem{
		ID:        int(id),
		Name:      name,
		Facility:  facility,
		CreatedAt: time.Now(),
	}, nil
}

// UpdateField は1項目の1ステータス列だけを更新します。
// column には models.StatusColumns を通過した値のみを渡すこと。
// 存在しないIDでもエラーにはしません (既存APIの挙動を維持)。
func (r *ChecklistRepository) UpdateField(id int, column string, value bool) error {
	query := fmt.Sprintf("UPDATE checklist_items SET %s = ? WHERE id = ?", column)

	if _, err := r.DB.Exec(query, value, id); err != nil {
		log.Printf("Failed to update checklist field %s: %v", column, err)
		return fmt.Errorf("could not update checklist item: %w", err)
	}

	return nil
}

package models

import "time"

// DefaultFacility は facility 未指定時に使われる施設名です。
const DefaultFacility = "galleria"

// ChecklistItem は清掃チェックリスト1件のデータベース構造体を表します。
// ステータス列はすべてBOOLEANで、作成時はすべてfalseです。
type ChecklistItem struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name"`
	Facility string `json:"facility"`

	Stayed     bool `json:"stayed"`
	CheckedOut bool `json:"checked_out"`
	Bussing    bool `json:"bussing"`
	Amenities  bool `json:"amenities"`
	Washing    bool `json:"washing"`
	BedMaking  bool `json:"bed_making"`
	BathToilet bool `json:"bath_toilet"`
	Vacuum     bool `json:"vacuum"`
	Finishing  bool `json:"finishing"`
	Sheets     bool `json:"sheets"`
	OnsenStart bool `json:"onsen_start"`
	OnsenStop  bool `json:"onsen_stop"`
	FinalCheck bool `json:"final_check"`
	TodayUsed  bool `json:"today_used"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// StatusColumns は update-field で変更できるフィールド名と対応する
// カラム名の許可リストです。ここに無い名前はストアに到達する前に拒否されます。
// UPDATE文に埋め込まれるカラム名は必ずこのマップの値から取ること。
var StatusColumns = map[string]string{
	"stayed":      "stayed",
	"checked_out": "checked_out",
	"bussing":     "bussing",
	"amenities":   "amenities",
	"washing":     "washing",
	"bed_making":  "bed_making",
	"bath_toilet": "bath_toilet",
	"vacuum":      "vacuum",
	"finishing":   "finishing",
	"sheets":      "sheets",
	"onsen_start": "onsen_start",
	"onsen_stop":  "onsen_stop",
	"final_check": "final_check",
	"today_used":  "today_used",
}

type ChecklistCreateRequest struct {
	Name     string `json:"name" binding:"required"` // 部屋名など（必須）
	Facility string `json:"facility"`                // 未指定なら galleria
}

// UpdateFieldRequest は update-field のリクエストボディです。
// Value はポインタにして、false と未指定を区別します。
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value *bool  `json:"value" binding:"required"`
}

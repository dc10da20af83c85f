package ds

import "time"

// @Schema(description="Part master record, keyed by part number")
type Part struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"-"`
	PartNo    string    `gorm:"column:part_no;size:128;not null;uniqueIndex" json:"part_no"`
	PartDesc  string    `gorm:"column:part_desc;type:text" json:"part_desc"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Part) TableName() string {
	return "parts"
}

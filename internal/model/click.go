package model

import (
	"time"
)

// Click 一次短链访问记录，只追加不修改
type Click struct {
	ID         uint      `gorm:"primarykey" json:"-"`
	LinkID     uint      `gorm:"not null;index" json:"-"`
	Timestamp  time.Time `gorm:"column:clicked_at;not null;index" json:"timestamp"`
	SourceIP   *string   `gorm:"size:45" json:"ip,omitempty"`
	UserAgent  string    `gorm:"type:text" json:"userAgent,omitempty"`
	DeviceType string    `gorm:"size:16" json:"deviceType,omitempty"`
}

func (Click) TableName() string {
	return "clicks"
}

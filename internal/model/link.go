package model

import (
	"time"
)

// Link 短链接记录。CustomAlias 为 NULL 时不参与唯一约束。
type Link struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OriginalURL string    `gorm:"type:text;not null" json:"originalUrl"`
	ShortCode   string    `gorm:"size:64;uniqueIndex;not null" json:"shortCode"`
	CustomAlias *string   `gorm:"size:64;uniqueIndex" json:"customAlias,omitempty"`
	OwnerID     *uint     `gorm:"index" json:"userId,omitempty"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Clicks      []Click   `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE" json:"clicks"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName 指定表名
func (Link) TableName() string {
	return "links"
}

// OwnedBy 判断链接是否属于指定用户，匿名链接不属于任何人
func (l *Link) OwnedBy(userID uint) bool {
	return l.OwnerID != nil && *l.OwnerID == userID
}

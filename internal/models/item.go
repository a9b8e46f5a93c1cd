package models

import "time"

// Item is a single entry on a user's task list.
type Item struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `json:"-" gorm:"column:user_id;type:varchar(36);not null;index:idx_items_user_created,priority:1"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:varchar(1000);not null"`
	CreatedAt   time.Time `json:"-" gorm:"index:idx_items_user_created,priority:2"`
}

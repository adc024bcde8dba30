package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Level     string    `gorm:"type:varchar(20);not null;default:'info'"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}

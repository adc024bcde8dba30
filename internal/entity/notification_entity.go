package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationLevel string

const (
	NotificationLevelSuccess NotificationLevel = "success"
	NotificationLevelWarning NotificationLevel = "warning"
	NotificationLevelError   NotificationLevel = "error"
	NotificationLevelInfo    NotificationLevel = "info"
)

type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Level     NotificationLevel
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

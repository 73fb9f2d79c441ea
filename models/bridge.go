package models

import (
	"time"
)

// UserBridge links two accounts so they see each other's records.
// Created one-directional and pending; only the recipient can accept,
// after which queries treat the link as bidirectional.
type UserBridge struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FromUserID uint      `json:"from_user_id" gorm:"index;not null"`
	ToUserID   uint      `json:"to_user_id" gorm:"index;not null"`
	Accepted   bool      `json:"accepted" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at"`
	FromUser   User      `json:"-" gorm:"foreignKey:FromUserID"`
	ToUser     User      `json:"-" gorm:"foreignKey:ToUserID"`
}

func (UserBridge) TableName() string {
	return "user_bridges"
}

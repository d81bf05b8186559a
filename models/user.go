package models

import "time"

type User struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name                 string    `json:"name"`
	Email                string    `gorm:"unique" json:"email"`
	Password             string    `json:"-"`
	Role                 int       `gorm:"default:0" json:"role"`
	ProfileImage         string    `json:"profileImage"`
	ProfileImagePublicID string    `json:"-"`
}

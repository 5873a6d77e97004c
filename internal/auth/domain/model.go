// Package domain contains core types for admin authentication.
package domain

import "time"

// Admin is an operator account allowed to sign in.
type Admin struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"column:email" json:"email"`
	PasswordHash string    `gorm:"column:password" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Admin) TableName() string { return "admins" }

// AdminView is the public projection returned after signup.
type AdminView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func (a Admin) View() AdminView {
	return AdminView{ID: a.ID, Email: a.Email}
}

package domain

import "time"

type Client struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Address   *string   `gorm:"column:address" json:"address"`
	State     *string   `gorm:"column:state" json:"state"`
	GSTNumber *string   `gorm:"column:gst_number" json:"gst_number"`
	CompanyID int64     `gorm:"column:company_id" json:"company_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// ClientDetail is a client joined with its company's name.
type ClientDetail struct {
	Client
	CompanyName *string `gorm:"column:company_name" json:"company_name"`
}

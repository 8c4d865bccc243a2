package models

import "eventspot/src/types"

type User struct {
	ID       uint    `gorm:"primarykey" json:"id"`
	Username string  `gorm:"uniqueIndex" json:"username"`
	Password string  `json:"-"`
	Name     string  `json:"name"`
	Email    string  `gorm:"uniqueIndex" json:"email"`
	Phone    *string `json:"phone,omitempty"`
	City     *string `json:"city,omitempty"`

	Bookings []Booking `gorm:"foreignKey:user_id" json:"bookings,omitempty"`

	types.Timestamps
}

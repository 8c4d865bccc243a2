package models

import (
	"eventspot/src/types"
	"time"
)

type Booking struct {
	ID            uint              `gorm:"primarykey" json:"id"`
	UserID        uint              `json:"userId"`
	EventID       uint              `json:"eventId"`
	BookingDate   time.Time         `gorm:"autoCreateTime" json:"bookingDate"`
	NumberOfSeats int               `json:"numberOfSeats"`
	TotalAmount   int               `json:"totalAmount"`
	Status        string            `gorm:"default:'confirmed'" json:"status"`
	SeatNumbers   types.SeatNumbers `gorm:"type:jsonb" json:"seatNumbers"`

	Event *Event `gorm:"foreignKey:event_id" json:"event,omitempty"`
	User  *User  `gorm:"foreignKey:user_id" json:"-"`

	types.Timestamps
}

package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

// SeatNumbers is stored as a jsonb column on bookings.
type SeatNumbers []int

func (a SeatNumbers) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *SeatNumbers) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported type for seat numbers column")
	}
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type RegisterUserRequestBody struct {
	Username string  `json:"username" binding:"required,min=3,username"`
	Password string  `json:"password" binding:"required,min=6"`
	Name     string  `json:"name" binding:"required,min=2"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone,omitempty"`
	City     *string `json:"city,omitempty"`
}

type LoginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateBookingRequestBody struct {
	EventID       uint  `json:"eventId" binding:"required"`
	NumberOfSeats int   `json:"numberOfSeats" binding:"required,min=1"`
	SeatNumbers   []int `json:"seatNumbers,omitempty"`
}

type EventListQuery struct {
	CategoryID *uint `form:"categoryId"`
}

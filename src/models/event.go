package models

import (
	"eventspot/src/types"
	"time"
)

type Event struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Image          string    `json:"image"`
	Date           time.Time `json:"date"`
	Price          int       `json:"price"`
	VenueID        uint      `json:"venueId"`
	CategoryID     uint      `json:"categoryId"`
	ArtistID       *uint     `json:"artistId,omitempty"`
	IsFeatured     bool      `gorm:"default:false" json:"isFeatured"`
	IsTrending     bool      `gorm:"default:false" json:"isTrending"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `gorm:"check:available_seats >= 0" json:"availableSeats"`

	Venue    *Venue    `gorm:"foreignKey:venue_id" json:"venue,omitempty"`
	Category *Category `gorm:"foreignKey:category_id" json:"-"`
	Artist   *Artist   `gorm:"foreignKey:artist_id" json:"artist,omitempty"`
	Bookings []Booking `gorm:"foreignKey:event_id" json:"-"`

	types.Timestamps
}

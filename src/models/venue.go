package models

import "eventspot/src/types"

type Venue struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Capacity int    `json:"capacity"`
	Image    string `json:"image"`

	Events []Event `gorm:"foreignKey:venue_id" json:"events,omitempty"`

	types.Timestamps
}

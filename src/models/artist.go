package models

import "eventspot/src/types"

type Artist struct {
	ID    uint    `gorm:"primarykey" json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Image string  `json:"image"`
	Bio   *string `json:"bio,omitempty"`

	Events []Event `gorm:"foreignKey:artist_id" json:"events,omitempty"`

	types.Timestamps
}

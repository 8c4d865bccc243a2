package models

import "eventspot/src/types"

type Category struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`

	Events []Event `gorm:"foreignKey:category_id" json:"events,omitempty"`

	types.Timestamps
}

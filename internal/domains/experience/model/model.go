package model

import "bookit/shared/model"

const (
	TableName  = "experiences"
	EntityName = "experience"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldRating      = "rating"
	FieldCreatedAt   = "created_at"
)

type Experience struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	Description string  `db:"description"`
	Location    string  `db:"location"`
	Price       int     `db:"price"`
	ImageURL    string  `db:"image_url"`
	Duration    string  `db:"duration"`
	Category    string  `db:"category"`
	Rating      float64 `db:"rating"`
	ReviewCount int     `db:"review_count"`
	SlotCount   int     `db:"slot_count" expr:"(SELECT COUNT(*) FROM slots WHERE slots.experience_id = experiences.id)"`
	model.Metadata
}

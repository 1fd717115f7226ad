package dto

import (
	"bookit/shared/constant"
	"bookit/shared/model"
	"bookit/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.UpdatedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
}

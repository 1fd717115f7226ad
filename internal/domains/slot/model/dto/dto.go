package dto

import (
	"bookit/internal/domains/slot/model"
	"bookit/shared/constant"
)

type SlotResponse struct {
	ID           string `json:"id"`
	ExperienceID string `json:"experienceId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Capacity     int    `json:"capacity"`
	BookedCount  int    `json:"bookedCount"`
	Available    int    `json:"available"`
}

func (r *SlotResponse) FromModel(m model.Slot) {
	r.ID = m.ID
	r.ExperienceID = m.ExperienceID
	r.Date = m.Date.Format(constant.DateOnlyFormat)
	r.Time = m.Time
	r.Capacity = m.Capacity
	r.BookedCount = m.BookedCount
	r.Available = m.Available()
}

func FromModels(models []model.Slot) []SlotResponse {
	res := make([]SlotResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

package model_test

import (
	"bookit/internal/domains/slot/model"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartMinute(t *testing.T) {
	tests := []struct {
		label    string
		expected int
		ok       bool
	}{
		{label: "07:00 am", expected: 7 * 60, ok: true},
		{label: "9:00 am", expected: 9 * 60, ok: true},
		{label: "12:30 pm", expected: 12*60 + 30, ok: true},
		{label: "12:00 am", expected: 0, ok: true},
		{label: " 1:00 PM ", expected: 13 * 60, ok: true},
		{label: "noon"},
		{label: ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			minute, ok := model.StartMinute(tt.label)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, minute)
		})
	}
}

func TestCompare(t *testing.T) {
	day := time.Date(2099, 3, 1, 0, 0, 0, 0, time.UTC)

	slots := []model.Slot{
		{ID: "sunset", Date: day, Time: "sunset"},
		{ID: "1pm", Date: day, Time: "1:00 pm"},
		{ID: "next-7am", Date: day.AddDate(0, 0, 1), Time: "07:00 am"},
		{ID: "11am", Date: day, Time: "11:00 am"},
		{ID: "7am", Date: day, Time: "07:00 am"},
		{ID: "9am", Date: day, Time: "9:00 am"},
	}

	slices.SortStableFunc(slots, model.Compare)

	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		ids = append(ids, slot.ID)
	}

	assert.Equal(t, []string{"7am", "9am", "11am", "1pm", "sunset", "next-7am"}, ids)
}

package dto

import (
	"bookit/internal/domains/experience/model"
	slotDto "bookit/internal/domains/slot/model/dto"
	gDto "bookit/shared/dto"
)

// ExperienceFilter carries the optional list filters. Prices are inclusive bounds.
type ExperienceFilter struct {
	Search   string `json:"search"   validate:"omitempty,max=100"`
	Location string `json:"location" validate:"omitempty,max=100"`
	MinPrice *int   `json:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *int   `json:"maxPrice" validate:"omitempty,gte=0"`
}

// PriceRangeValid reports false when both bounds are set and inverted.
func (f ExperienceFilter) PriceRangeValid() bool {
	return f.MinPrice == nil || f.MaxPrice == nil || *f.MinPrice <= *f.MaxPrice
}

// ToFilterGroup ORs the search term across title, description and category and ANDs
// the remaining filters.
func (f ExperienceFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []gDto.Clause{},
	}

	if f.Search != "" {
		search := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters:  []gDto.Clause{},
		}

		for _, field := range []string{model.FieldTitle, model.FieldDescription, model.FieldCategory} {
			search.Filters = append(search.Filters, gDto.Filter{
				ArgName:  "search_" + field,
				Field:    field,
				Value:    f.Search,
				Operator: gDto.FilterOperatorLike,
				Table:    model.TableName,
			})
		}

		group.Filters = append(group.Filters, search)
	}

	if f.Location != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Value:    f.Location,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	if f.MinPrice != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "min_price",
			Field:    model.FieldPrice,
			Value:    *f.MinPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if f.MaxPrice != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "max_price",
			Field:    model.FieldPrice,
			Value:    *f.MaxPrice,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	return group
}

type ExperienceResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Price       int     `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	SlotCount   int     `json:"slotCount"`
	gDto.Metadata
}

func (r *ExperienceResponse) FromModel(m model.Experience) {
	r.ID = m.ID
	r.Title = m.Title
	r.Description = m.Description
	r.Location = m.Location
	r.Price = m.Price
	r.ImageURL = m.ImageURL
	r.Duration = m.Duration
	r.Category = m.Category
	r.Rating = m.Rating
	r.ReviewCount = m.ReviewCount
	r.SlotCount = m.SlotCount
	r.Metadata.FromModel(m.Metadata)
}

type GetExperiencesResponse struct {
	Experiences []ExperienceResponse `json:"experiences"`
	Count       int                  `json:"count"`
}

func (r *GetExperiencesResponse) FromModels(models []model.Experience) {
	r.Count = len(models)

	r.Experiences = make([]ExperienceResponse, len(models))
	for i, mod := range models {
		r.Experiences[i].FromModel(mod)
	}
}

type ExperienceDetailResponse struct {
	Experience ExperienceResponse     `json:"experience"`
	Slots      []slotDto.SlotResponse `json:"slots"`
}

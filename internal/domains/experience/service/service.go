package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Experience=MockExperienceService

import (
	"bookit/config"
	"bookit/infras/otel"
	"bookit/internal/domains/experience/model"
	"bookit/internal/domains/experience/model/dto"
	"bookit/internal/domains/experience/repository"
	slotModel "bookit/internal/domains/slot/model"
	slotDto "bookit/internal/domains/slot/model/dto"
	slotRepo "bookit/internal/domains/slot/repository"
	"bookit/shared"
	"bookit/shared/cache"
	"bookit/shared/constant"
	gDto "bookit/shared/dto"
	"bookit/shared/failure"
	"bookit/shared/timezone"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	CacheGetExperience    = "experience:get"
	CacheGetAllExperience = "experience:gets"

	messageNotFound = "Experience not found"
)

type Experience interface {
	GetAll(ctx context.Context, filter dto.ExperienceFilter) (dto.GetExperiencesResponse, error)
	Get(ctx context.Context, id string) (dto.ExperienceDetailResponse, error)
}

type serviceImpl struct {
	repo     repository.Experience
	slotRepo slotRepo.Slot
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Experience, slotRepo slotRepo.Slot, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Experience {
	return &serviceImpl{
		repo:     repo,
		slotRepo: slotRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.ExperienceFilter) (res dto.GetExperiencesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !filter.PriceRangeValid() {
		return res, failure.BadRequestFromString("minPrice must not be greater than maxPrice") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKeyWithQuery(CacheGetAllExperience, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for experiences")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get experiences")

		return res, fmt.Errorf("failed to get experiences: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save experiences to cache")
		}
	}()

	return res, nil
}

// Get returns the experience with its slots dated today or later, ordered by date then time.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ExperienceDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.NotFound(messageNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(CacheGetExperience, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for experience")

		return res, nil
	}

	experience, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get experience")

		return res, fmt.Errorf("failed to get experience: %w", err)
	}

	if experience.ID == "" {
		return res, failure.NotFound(messageNotFound) // nolint:wrapcheck
	}

	slotFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []gDto.Clause{
			gDto.Filter{
				Field:    slotModel.FieldExperienceID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    slotModel.TableName,
			},
			gDto.Filter{
				Field:    slotModel.FieldDate,
				Value:    timezone.Today().Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    slotModel.TableName,
			},
		},
	}

	slotParams := gDto.QueryParams{
		SortBy:  slotModel.TableName + "." + slotModel.FieldDate,
		SortDir: gDto.SortDirAsc,
	}

	slots, err := s.slotRepo.GetAll(ctx, slotParams, slotFilter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get experience slots")

		return res, fmt.Errorf("failed to get experience slots: %w", err)
	}

	// Time labels are free text, so they are ordered here rather than in SQL.
	slices.SortStableFunc(slots, slotModel.Compare)

	res.Experience.FromModel(experience)
	res.Slots = slotDto.FromModels(slots)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save experience to cache")
		}
	}()

	return res, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bookit/infras/otel"
	"bookit/infras/postgres"
	"bookit/internal/domains/experience/model"
	gDto "bookit/shared/dto"
	gRepo "bookit/shared/repository"
	"context"
)

type Experience interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Experience, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Experience, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Experience]
}

func New(db *postgres.Connection, otel otel.Otel) Experience {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Experience](model.EntityName, model.TableName, db, otel),
	}
}

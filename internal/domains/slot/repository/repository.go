package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bookit/infras/otel"
	"bookit/infras/postgres"
	"bookit/internal/domains/slot/model"
	gDto "bookit/shared/dto"
	gRepo "bookit/shared/repository"
	"context"
)

type Slot interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Slot, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Slot]
}

func New(db *postgres.Connection, otel otel.Otel) Slot {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Slot](model.EntityName, model.TableName, db, otel),
	}
}

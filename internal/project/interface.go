package project

import (
	"context"

	"buildbridge/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Project CRUD
	Create(ctx context.Context, sc model.Scope, input CreateProjectInput) (CreateProjectOutput, error)
	List(ctx context.Context, sc model.Scope, input ListProjectsInput) (ListProjectsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailProjectOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateProjectInput) (UpdateProjectOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}

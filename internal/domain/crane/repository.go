package crane

import "context"

// CraneModelRepository - interface for the crane_models table
type CraneModelRepository interface {
	Create(ctx context.Context, model CraneModel) (CraneModel, error)
	GetByID(ctx context.Context, id string) (CraneModel, error)
	List(ctx context.Context) ([]CraneModel, error)
}

// CraneRepository - interface for the cranes table
type CraneRepository interface {
	Create(ctx context.Context, c Crane) (Crane, error)
	GetByID(ctx context.Context, id string) (Crane, error)
	List(ctx context.Context, filter ListFilter) ([]Crane, error)
}

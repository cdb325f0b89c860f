package trainer

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type SearchTrainers struct {
	repo domain.Repository
}

func NewSearchTrainers(repo domain.Repository) *SearchTrainers {
	return &SearchTrainers{repo: repo}
}

func (uc *SearchTrainers) Execute(
	ctx context.Context,
	f domain.Filter,
) ([]models.Trainer, error) {

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Apply(all, f), nil
}

type GetTrainer struct {
	repo domain.Repository
}

func NewGetTrainer(repo domain.Repository) *GetTrainer {
	return &GetTrainer{repo: repo}
}

func (uc *GetTrainer) Execute(ctx context.Context, id string) (*models.Trainer, error) {
	return uc.repo.GetByID(ctx, id)
}

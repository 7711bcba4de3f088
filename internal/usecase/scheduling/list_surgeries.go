package scheduling

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

type ListSurgeriesInput struct {
	Week   string
	From   string
	To     string
	RoomID *uuid.UUID
}

type ListSurgeries struct {
	repo domain.Repository
}

func NewListSurgeries(repo domain.Repository) *ListSurgeries {
	return &ListSurgeries{repo: repo}
}

func (uc *ListSurgeries) Execute(
	ctx context.Context,
	in ListSurgeriesInput,
) ([]models.Surgery, error) {

	period, err := domain.ParseRange(in.Week, in.From, in.To)
	if err != nil {
		return nil, err
	}

	return uc.repo.ListSurgeries(ctx, domain.SurgeryFilter{
		Range:  period,
		RoomID: in.RoomID,
	})
}

type GetSurgery struct {
	repo domain.Repository
}

func NewGetSurgery(repo domain.Repository) *GetSurgery {
	return &GetSurgery{repo: repo}
}

func (uc *GetSurgery) Execute(ctx context.Context, id uuid.UUID) (*models.Surgery, error) {
	return uc.repo.GetSurgery(ctx, id)
}

package services

import (
	"context"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
	"github.com/securyflex/securyflex-backend/internal/dto"
)

// OpdrachtReaderSvc defines read operations on job postings.
type OpdrachtReaderSvc interface {
	// GetOpdracht retrieves a posting by id.
	GetOpdracht(ctx context.Context, opdrachtID string) (*domain.Opdracht, error)

	// ListAvailable returns the postings the actor may apply to. When the
	// "available" view is requested and the actor is not compliant, the
	// result is empty and carries a compliance warning instead.
	ListAvailable(ctx context.Context, actorUserID string, params dto.ListOpdrachtenParams) (*dto.ListOpdrachtenResponse, error)

	// ListMine returns postings created by the actor.
	ListMine(ctx context.Context, actorUserID string, limit, offset int) ([]domain.Opdracht, error)

	// ListSollicitaties returns the applications on a posting; restricted to
	// the posting owner.
	ListSollicitaties(ctx context.Context, actorUserID string, opdrachtID string) ([]domain.Sollicitatie, error)
}

// OpdrachtWriterSvc defines lifecycle operations on job postings.
type OpdrachtWriterSvc interface {
	// Create validates and persists a new posting for the actor.
	Create(ctx context.Context, actorUserID string, req dto.CreateOpdrachtRequest) (*domain.Opdracht, error)

	// Apply submits a sollicitatie on behalf of the actor.
	Apply(ctx context.Context, actorUserID string, opdrachtID string, req dto.ApplyRequest) (*dto.ApplyResponse, error)

	// Decide accepts or rejects a sollicitatie as the posting owner.
	Decide(ctx context.Context, reviewerUserID string, sollicitatieID string, action dto.DecideAction) (*domain.Sollicitatie, error)

	// UpdateStatus moves a posting along its state machine as the owner.
	UpdateStatus(ctx context.Context, actorUserID string, opdrachtID string, next domain.OpdrachtStatus) (*domain.Opdracht, error)
}

// OpdrachtSvcFacade combines all opdracht-related service interfaces.
type OpdrachtSvcFacade interface {
	OpdrachtReaderSvc
	OpdrachtWriterSvc
}

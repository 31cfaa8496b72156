package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// OpdrachtFilter narrows opdracht listings. Zero values mean "no filter".
type OpdrachtFilter struct {
	Statuses  []domain.OpdrachtStatus
	Audiences []domain.TargetAudience
	// IncludeDirectZZP additionally matches postings with direct_zzp_allowed,
	// regardless of audience. Used for ZZP visibility.
	IncludeDirectZZP bool
	Creator          *domain.Owner
	Limit            int
	Offset           int
}

// OpdrachtReader defines read operations for job postings.
type OpdrachtReader interface {
	// FindOpdrachtByID retrieves a posting by its unique identifier.
	FindOpdrachtByID(ctx context.Context, opdrachtID string) (*domain.Opdracht, error)

	// ListOpdrachten retrieves postings matching the filter, newest first.
	ListOpdrachten(ctx context.Context, filter OpdrachtFilter) ([]domain.Opdracht, error)
}

// OpdrachtWriter defines write operations for job postings.
type OpdrachtWriter interface {
	// SaveOpdracht persists a new posting.
	SaveOpdracht(ctx context.Context, opdracht domain.Opdracht) error

	// UpdateOpdrachtStatus moves a posting to the next status. The previous
	// status is part of the WHERE clause so an illegal or raced transition
	// updates zero rows and returns ErrConflict.
	UpdateOpdrachtStatus(ctx context.Context, opdrachtID string, from, to domain.OpdrachtStatus, updatedBy string, now time.Time) error
}

// OpdrachtTransactionSupport defines operations used inside the accept flow
// transaction.
type OpdrachtTransactionSupport interface {
	// ClaimSlot atomically increments the accepted headcount of a posting,
	// guarded by accepted_count < aantal_beveiligers in the statement itself.
	// Returns the posting as it stands after the claim, or ErrConflict when
	// the posting is full or no longer open.
	ClaimSlot(ctx context.Context, tx pgx.Tx, opdrachtID string, updatedBy string, now time.Time) (*domain.Opdracht, error)

	// AssignBedrijfInTx sets the accepted bedrijf and moves the posting to
	// TOEGEWEZEN within the given transaction.
	AssignBedrijfInTx(ctx context.Context, tx pgx.Tx, opdrachtID string, bedrijfID string, updatedBy string, now time.Time) error

	// UpdateStatusInTx moves a posting to the next status within the given
	// transaction, with the same raced-transition semantics as
	// UpdateOpdrachtStatus.
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, opdrachtID string, from, to domain.OpdrachtStatus, updatedBy string, now time.Time) error
}

// OpdrachtRepository combines all opdracht-related repository interfaces.
type OpdrachtRepository interface {
	OpdrachtReader
	OpdrachtWriter
	OpdrachtTransactionSupport
}

// OpdrachtRepositoryWithTx extends OpdrachtRepository with transaction
// capabilities.
type OpdrachtRepositoryWithTx interface {
	OpdrachtRepository
	TransactionManager
}

package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// SollicitatieReader defines read operations for applications.
type SollicitatieReader interface {
	// FindSollicitatieByID retrieves an application by its unique identifier.
	FindSollicitatieByID(ctx context.Context, sollicitatieID string) (*domain.Sollicitatie, error)

	// FindByOpdrachtAndSollicitant retrieves the single application a
	// sollicitant made on a posting, if any.
	FindByOpdrachtAndSollicitant(ctx context.Context, opdrachtID string, sollicitantID string) (*domain.Sollicitatie, error)

	// ListByOpdracht retrieves all applications on a posting.
	ListByOpdracht(ctx context.Context, opdrachtID string) ([]domain.Sollicitatie, error)

	// ListBySollicitant retrieves a sollicitant's applications, newest first.
	ListBySollicitant(ctx context.Context, sollicitantID string, limit int, offset int) ([]domain.Sollicitatie, error)
}

// SollicitatieWriter defines write operations for applications.
type SollicitatieWriter interface {
	// SaveSollicitatieInTx persists a new application within the given
	// transaction. The unique (opdracht_id, sollicitant_id) index surfaces
	// duplicates as ErrDuplicate.
	SaveSollicitatieInTx(ctx context.Context, tx pgx.Tx, sollicitatie domain.Sollicitatie) error

	// UpdateStatusInTx flips an application's status within the given
	// transaction.
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, sollicitatieID string, status domain.SollicitatieStatus, updatedBy string, now time.Time) error
}

// SollicitatieRepository combines all sollicitatie-related repository interfaces.
type SollicitatieRepository interface {
	SollicitatieReader
	SollicitatieWriter
}

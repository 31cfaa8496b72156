package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
)

// ProfileReader defines read operations for the per-role profile extensions.
type ProfileReader interface {
	// FindZZPByUserID retrieves the ZZP profile belonging to a user.
	FindZZPByUserID(ctx context.Context, userID string) (*domain.ZZPProfile, error)

	// FindBedrijfByUserID retrieves the bedrijf profile belonging to a user.
	FindBedrijfByUserID(ctx context.Context, userID string) (*domain.BedrijfProfile, error)

	// FindOpdrachtgeverByUserID retrieves the opdrachtgever profile belonging to a user.
	FindOpdrachtgeverByUserID(ctx context.Context, userID string) (*domain.OpdrachtgeverProfile, error)

	// FindBedrijfByID retrieves a bedrijf profile by its profile id.
	FindBedrijfByID(ctx context.Context, profileID string) (*domain.BedrijfProfile, error)

	// ListActiveTeamMembers returns the active roster of a bedrijf.
	ListActiveTeamMembers(ctx context.Context, bedrijfID string) ([]domain.TeamMember, error)
}

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	// SaveZZPProfile persists a new ZZP profile.
	SaveZZPProfile(ctx context.Context, profile domain.ZZPProfile) error

	// SaveBedrijfProfile persists a new bedrijf profile.
	SaveBedrijfProfile(ctx context.Context, profile domain.BedrijfProfile) error

	// SaveOpdrachtgeverProfile persists a new opdrachtgever profile.
	SaveOpdrachtgeverProfile(ctx context.Context, profile domain.OpdrachtgeverProfile) error

	// UpdateLicenseInTx overwrites the ND-nummer fields within a transaction,
	// so the mandatory audit entry commits or rolls back with the mutation.
	UpdateLicenseInTx(ctx context.Context, tx pgx.Tx, profileID string, profileType domain.SollicitantType, info domain.LicenseInfo, updatedBy string, now time.Time) error
}

// LicenseScanner feeds the periodic compliance sweep.
type LicenseScanner interface {
	// ListLicensedProfiles returns every ZZP and bedrijf profile whose
	// license status is not NIET_GEREGISTREERD.
	ListLicensedProfiles(ctx context.Context) ([]domain.LicensedProfile, error)
}

// ProfileRepository combines all profile-related repository interfaces.
type ProfileRepository interface {
	ProfileReader
	ProfileWriter
	LicenseScanner
}

// ProfileRepositoryWithTx extends ProfileRepository with transaction control
// for callers that pair license updates with audit writes.
type ProfileRepositoryWithTx interface {
	ProfileRepository
	TransactionManager
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/securyflex/securyflex-backend/internal/apperrors"
	"github.com/securyflex/securyflex-backend/internal/core/domain"
	portsrepo "github.com/securyflex/securyflex-backend/internal/core/ports/repositories"
	"github.com/securyflex/securyflex-backend/internal/models"
)

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepositoryWithTx {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ProfileRepositoryWithTx = (*PgxProfileRepository)(nil)

func toDomainZZPProfile(m models.ZZPProfile) domain.ZZPProfile {
	return domain.ZZPProfile{
		ProfileID:  m.ProfileID,
		UserID:     m.UserID,
		Voornaam:   m.Voornaam,
		Achternaam: m.Achternaam,
		KVKNummer:  m.KVKNummer,
		LicenseInfo: domain.LicenseInfo{
			NDNummer:            m.NDNummer,
			NDNummerStatus:      domain.NDNummerStatus(m.NDNummerStatus),
			NDNummerVervalDatum: m.NDNummerVervalDatum,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainBedrijfProfile(m models.BedrijfProfile) domain.BedrijfProfile {
	return domain.BedrijfProfile{
		ProfileID:    m.ProfileID,
		UserID:       m.UserID,
		Bedrijfsnaam: m.Bedrijfsnaam,
		KVKNummer:    m.KVKNummer,
		TeamGrootte:  m.TeamGrootte,
		LicenseInfo: domain.LicenseInfo{
			NDNummer:            m.NDNummer,
			NDNummerStatus:      domain.NDNummerStatus(m.NDNummerStatus),
			NDNummerVervalDatum: m.NDNummerVervalDatum,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxProfileRepository) FindZZPByUserID(ctx context.Context, userID string) (*domain.ZZPProfile, error) {
	query := `
		SELECT profile_id, user_id, voornaam, achternaam, kvk_nummer, nd_nummer, nd_nummer_status, nd_nummer_verval_datum,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM zzp_profiles
		WHERE user_id = $1;
	`
	var m models.ZZPProfile
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.ProfileID, &m.UserID, &m.Voornaam, &m.Achternaam, &m.KVKNummer,
		&m.NDNummer, &m.NDNummerStatus, &m.NDNummerVervalDatum,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find zzp profile for user %s: %w", userID, err)
	}
	p := toDomainZZPProfile(m)
	return &p, nil
}

func (r *PgxProfileRepository) FindBedrijfByUserID(ctx context.Context, userID string) (*domain.BedrijfProfile, error) {
	return r.findBedrijf(ctx, `user_id = $1`, userID)
}

func (r *PgxProfileRepository) FindBedrijfByID(ctx context.Context, profileID string) (*domain.BedrijfProfile, error) {
	return r.findBedrijf(ctx, `profile_id = $1`, profileID)
}

func (r *PgxProfileRepository) findBedrijf(ctx context.Context, where string, arg any) (*domain.BedrijfProfile, error) {
	query := `
		SELECT profile_id, user_id, bedrijfsnaam, kvk_nummer, team_grootte, nd_nummer, nd_nummer_status, nd_nummer_verval_datum,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM bedrijf_profiles
		WHERE ` + where + `;`
	var m models.BedrijfProfile
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.ProfileID, &m.UserID, &m.Bedrijfsnaam, &m.KVKNummer, &m.TeamGrootte,
		&m.NDNummer, &m.NDNummerStatus, &m.NDNummerVervalDatum,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bedrijf profile: %w", err)
	}
	p := toDomainBedrijfProfile(m)
	return &p, nil
}

func (r *PgxProfileRepository) FindOpdrachtgeverByUserID(ctx context.Context, userID string) (*domain.OpdrachtgeverProfile, error) {
	query := `
		SELECT profile_id, user_id, bedrijfsnaam, contact_naam, created_at, created_by, last_updated_at, last_updated_by
		FROM opdrachtgever_profiles
		WHERE user_id = $1;
	`
	var m models.OpdrachtgeverProfile
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.ProfileID, &m.UserID, &m.Bedrijfsnaam, &m.ContactNaam,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find opdrachtgever profile for user %s: %w", userID, err)
	}
	return &domain.OpdrachtgeverProfile{
		ProfileID:    m.ProfileID,
		UserID:       m.UserID,
		Bedrijfsnaam: m.Bedrijfsnaam,
		ContactNaam:  m.ContactNaam,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

func (r *PgxProfileRepository) ListActiveTeamMembers(ctx context.Context, bedrijfID string) ([]domain.TeamMember, error) {
	query := `
		SELECT member_id, bedrijf_id, naam, is_active, joined_at
		FROM team_members
		WHERE bedrijf_id = $1 AND is_active
		ORDER BY joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, bedrijfID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members for bedrijf %s: %w", bedrijfID, err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.MemberID, &m.BedrijfID, &m.Naam, &m.IsActive, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team member row: %w", err)
		}
		members = append(members, domain.TeamMember{
			MemberID:  m.MemberID,
			BedrijfID: m.BedrijfID,
			Naam:      m.Naam,
			IsActive:  m.IsActive,
			JoinedAt:  m.JoinedAt,
		})
	}
	return members, rows.Err()
}

func (r *PgxProfileRepository) SaveZZPProfile(ctx context.Context, profile domain.ZZPProfile) error {
	query := `
		INSERT INTO zzp_profiles (profile_id, user_id, voornaam, achternaam, kvk_nummer, nd_nummer, nd_nummer_status, nd_nummer_verval_datum,
		                          created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		profile.ProfileID, profile.UserID, profile.Voornaam, profile.Achternaam, profile.KVKNummer,
		profile.NDNummer, string(profile.NDNummerStatus), profile.NDNummerVervalDatum,
		profile.CreatedAt, profile.CreatedBy, profile.LastUpdatedAt, profile.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("failed to save zzp profile: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) SaveBedrijfProfile(ctx context.Context, profile domain.BedrijfProfile) error {
	query := `
		INSERT INTO bedrijf_profiles (profile_id, user_id, bedrijfsnaam, kvk_nummer, team_grootte, nd_nummer, nd_nummer_status, nd_nummer_verval_datum,
		                              created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		profile.ProfileID, profile.UserID, profile.Bedrijfsnaam, profile.KVKNummer, profile.TeamGrootte,
		profile.NDNummer, string(profile.NDNummerStatus), profile.NDNummerVervalDatum,
		profile.CreatedAt, profile.CreatedBy, profile.LastUpdatedAt, profile.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("failed to save bedrijf profile: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) SaveOpdrachtgeverProfile(ctx context.Context, profile domain.OpdrachtgeverProfile) error {
	query := `
		INSERT INTO opdrachtgever_profiles (profile_id, user_id, bedrijfsnaam, contact_naam,
		                                    created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		profile.ProfileID, profile.UserID, profile.Bedrijfsnaam, profile.ContactNaam,
		profile.CreatedAt, profile.CreatedBy, profile.LastUpdatedAt, profile.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("failed to save opdrachtgever profile: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) UpdateLicenseInTx(ctx context.Context, tx pgx.Tx, profileID string, profileType domain.SollicitantType, info domain.LicenseInfo, updatedBy string, now time.Time) error {
	table := "zzp_profiles"
	if profileType == domain.SollicitantBedrijf {
		table = "bedrijf_profiles"
	}
	query := `
		UPDATE ` + table + `
		SET nd_nummer = $2, nd_nummer_status = $3, nd_nummer_verval_datum = $4, last_updated_at = $5, last_updated_by = $6
		WHERE profile_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		profileID, info.NDNummer, string(info.NDNummerStatus), info.NDNummerVervalDatum, now, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update license of profile %s: %w", profileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProfileRepository) ListLicensedProfiles(ctx context.Context) ([]domain.LicensedProfile, error) {
	query := `
		SELECT profile_id, 'ZZP' AS profile_type, user_id, nd_nummer, nd_nummer_status, nd_nummer_verval_datum
		FROM zzp_profiles
		WHERE nd_nummer_status <> 'NIET_GEREGISTREERD'
		UNION ALL
		SELECT profile_id, 'BEDRIJF' AS profile_type, user_id, nd_nummer, nd_nummer_status, nd_nummer_verval_datum
		FROM bedrijf_profiles
		WHERE nd_nummer_status <> 'NIET_GEREGISTREERD';
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list licensed profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.LicensedProfile
	for rows.Next() {
		var p domain.LicensedProfile
		var profileType, status string
		if err := rows.Scan(&p.ProfileID, &profileType, &p.UserID, &p.NDNummer, &status, &p.NDNummerVervalDatum); err != nil {
			return nil, fmt.Errorf("failed to scan licensed profile row: %w", err)
		}
		p.ProfileType = domain.SollicitantType(profileType)
		p.NDNummerStatus = domain.NDNummerStatus(status)
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

package models

import "time"

// ZZPProfile is the database representation of a freelancer profile.
type ZZPProfile struct {
	ProfileID           string     `db:"profile_id"`
	UserID              string     `db:"user_id"`
	Voornaam            string     `db:"voornaam"`
	Achternaam          string     `db:"achternaam"`
	KVKNummer           string     `db:"kvk_nummer"`
	NDNummer            *string    `db:"nd_nummer"`
	NDNummerStatus      string     `db:"nd_nummer_status"`
	NDNummerVervalDatum *time.Time `db:"nd_nummer_verval_datum"`
	AuditFields
}

// BedrijfProfile is the database representation of a security-company profile.
type BedrijfProfile struct {
	ProfileID           string     `db:"profile_id"`
	UserID              string     `db:"user_id"`
	Bedrijfsnaam        string     `db:"bedrijfsnaam"`
	KVKNummer           string     `db:"kvk_nummer"`
	TeamGrootte         int        `db:"team_grootte"`
	NDNummer            *string    `db:"nd_nummer"`
	NDNummerStatus      string     `db:"nd_nummer_status"`
	NDNummerVervalDatum *time.Time `db:"nd_nummer_verval_datum"`
	AuditFields
}

// OpdrachtgeverProfile is the database representation of a client profile.
type OpdrachtgeverProfile struct {
	ProfileID    string `db:"profile_id"`
	UserID       string `db:"user_id"`
	Bedrijfsnaam string `db:"bedrijfsnaam"`
	ContactNaam  string `db:"contact_naam"`
	AuditFields
}

// TeamMember is a row in a bedrijf's roster table.
type TeamMember struct {
	MemberID  string    `db:"member_id"`
	BedrijfID string    `db:"bedrijf_id"`
	Naam      string    `db:"naam"`
	IsActive  bool      `db:"is_active"`
	JoinedAt  time.Time `db:"joined_at"`
}

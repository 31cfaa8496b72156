package domain

import "time"

// NDNummerStatus is the lifecycle state of a government security license
// (ND-nummer) as last observed for a profile.
type NDNummerStatus string

const (
	NDNietGeregistreerd NDNummerStatus = "NIET_GEREGISTREERD"
	NDActief            NDNummerStatus = "ACTIEF"
	NDVerlopen          NDNummerStatus = "VERLOPEN"
	NDGeschorst         NDNummerStatus = "GESCHORST"
	NDIngetrokken       NDNummerStatus = "INGETROKKEN"
)

// LicenseInfo is the ND-nummer slice shared by ZZP and bedrijf profiles.
// Status and expiry are jointly authoritative: the compliance sweep demotes
// ACTIEF profiles whose expiry has passed within one cycle.
type LicenseInfo struct {
	NDNummer            *string        `json:"ndNummer,omitempty"`
	NDNummerStatus      NDNummerStatus `json:"ndNummerStatus"`
	NDNummerVervalDatum *time.Time     `json:"ndNummerVervalDatum,omitempty"`
}

// ZZPProfile extends a User with freelancer-specific data.
type ZZPProfile struct {
	ProfileID string `json:"profileID"` // Primary key (UUID)
	UserID    string `json:"userID"`    // FK -> users.user_id, one-to-one
	Voornaam  string `json:"voornaam"`
	Achternaam string `json:"achternaam"`
	KVKNummer string `json:"kvkNummer"`
	LicenseInfo
	AuditFields
}

// BedrijfProfile extends a User with security-company data.
type BedrijfProfile struct {
	ProfileID    string `json:"profileID"`
	UserID       string `json:"userID"`
	Bedrijfsnaam string `json:"bedrijfsnaam"`
	KVKNummer    string `json:"kvkNummer"`
	TeamGrootte  int    `json:"teamGrootte"` // current active roster size
	LicenseInfo
	AuditFields
}

// OpdrachtgeverProfile extends a User commissioning security work. Clients
// carry no license; they post work rather than perform it.
type OpdrachtgeverProfile struct {
	ProfileID    string `json:"profileID"`
	UserID       string `json:"userID"`
	Bedrijfsnaam string `json:"bedrijfsnaam"`
	ContactNaam  string `json:"contactNaam"`
	AuditFields
}

// LicensedProfile is the projection the compliance sweep iterates over: one
// row per ZZP or bedrijf profile that carries a license.
type LicensedProfile struct {
	ProfileID   string          `json:"profileID"`
	ProfileType SollicitantType `json:"profileType"`
	UserID      string          `json:"userID"`
	LicenseInfo
}

// TeamMember is an entry in a bedrijf's active roster.
type TeamMember struct {
	MemberID  string    `json:"memberID"` // Primary key (UUID)
	BedrijfID string    `json:"bedrijfID"`
	Naam      string    `json:"naam"`
	IsActive  bool      `json:"isActive"`
	JoinedAt  time.Time `json:"joinedAt"`
}

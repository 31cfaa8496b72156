package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// OwnerType discriminates the kind of profile that owns an opdracht.
type OwnerType string

const (
	OwnerOpdrachtgever OwnerType = "OPDRACHTGEVER"
	OwnerBedrijf       OwnerType = "BEDRIJF"
)

// Owner is a tagged reference to the profile that owns an entity.
// It is resolved once at the request boundary from the actor's profile kind,
// so downstream code never carries parallel nullable foreign keys.
type Owner struct {
	Type OwnerType `json:"type"`
	ID   string    `json:"id"` // profile id of the owning opdrachtgever or bedrijf
}

// IsZero reports whether the owner reference is unset.
func (o Owner) IsZero() bool {
	return o.Type == "" || o.ID == ""
}

package dto

import (
	"time"

	"github.com/securyflex/securyflex-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListWerkurenParams defines query parameters for listing werkuren.
type ListWerkurenParams = PageParams

// WerkuurResponse is the public view of a work-hour record.
type WerkuurResponse struct {
	WerkuurID      string               `json:"werkuurID"`
	OpdrachtID     string               `json:"opdrachtID"`
	SollicitatieID string               `json:"sollicitatieID"`
	StartTijd      time.Time            `json:"startTijd"`
	EindTijd       time.Time            `json:"eindTijd"`
	Uurtarief      decimal.Decimal      `json:"uurtarief"`
	Status         domain.WerkuurStatus `json:"status"`
}

// ToWerkuurResponse converts a domain.Werkuur to its response DTO.
func ToWerkuurResponse(w *domain.Werkuur) WerkuurResponse {
	return WerkuurResponse{
		WerkuurID:      w.WerkuurID,
		OpdrachtID:     w.OpdrachtID,
		SollicitatieID: w.SollicitatieID,
		StartTijd:      w.StartTijd,
		EindTijd:       w.EindTijd,
		Uurtarief:      w.Uurtarief,
		Status:         w.Status,
	}
}

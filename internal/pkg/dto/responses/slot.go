package responses

import "medibook-service/internal/app/models"

// SlotsByDate lists the slots matching a queried date. KnownDates is only
// populated when nothing matched, as a hint for clients.
type SlotsByDate struct {
	Date       string        `json:"date"`
	Slots      []models.Slot `json:"slots"`
	KnownDates []string      `json:"knownDates,omitempty"`
}

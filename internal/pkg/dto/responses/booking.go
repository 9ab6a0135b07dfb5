package responses

import "medibook-service/internal/app/models"

// BookingSettlement is the success payload of a settlement: the persisted
// booking plus the wallet/online split used to fund it.
type BookingSettlement struct {
	Booking          *models.Booking `json:"booking"`
	WalletUsed       float64         `json:"walletUsed"`
	OnlineUsed       float64         `json:"onlineUsed"`
	RemainingEarmark float64         `json:"remainingEarmark"`
}

// PaymentShortfall rides on the 402 body when the wallet cannot cover the
// payable amount and no transaction id was supplied.
type PaymentShortfall struct {
	WalletAvailable float64 `json:"walletAvailable"`
	RequiredOnline  float64 `json:"requiredOnline"`
}

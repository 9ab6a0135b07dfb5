package models

import "time"

// WalletLog is one append-only ledger entry on a staff wallet. Entries are
// never updated or removed once pushed.
type WalletLog struct {
	Direction    string    `json:"direction" bson:"direction"`
	ForTests     float64   `json:"forTests" bson:"forTests"`
	ForDoctors   float64   `json:"forDoctors" bson:"forDoctors"`
	ForPackages  float64   `json:"forPackages" bson:"forPackages"`
	Amount       float64   `json:"amount" bson:"amount"`
	Counterparty string    `json:"counterparty" bson:"counterparty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

type Staff struct {
	ID             string  `json:"id" bson:"_id,omitempty"`
	CompanyID      string  `json:"companyId" bson:"companyId"`
	Name           string  `json:"name" bson:"name"`
	Email          string  `json:"email" bson:"email"`
	Phone          string  `json:"phone" bson:"phone"`
	Designation    string  `json:"designation" bson:"designation"`
	WalletBalance  float64 `json:"walletBalance" bson:"walletBalance"`
	ForTests       float64 `json:"forTests" bson:"forTests"`
	ForDoctors     float64 `json:"forDoctors" bson:"forDoctors"`
	ForPackages    float64 `json:"forPackages" bson:"forPackages"`
	WalletLogs     []WalletLog `json:"walletLogs" bson:"walletLogs"`
	TimeModel      `bson:",inline"`
}

// Reconciled reports whether the total balance equals the sum of the three
// earmarks. Wallet mutations go through a single $inc update so this holds
// by construction; reads assert it anyway.
func (s *Staff) Reconciled() bool {
	const epsilon = 1e-6
	diff := s.WalletBalance - (s.ForTests + s.ForDoctors + s.ForPackages)
	return diff < epsilon && diff > -epsilon
}

// EarmarkBalance returns the balance of the named earmark.
func (s *Staff) EarmarkBalance(earmark string) float64 {
	switch earmark {
	case "forTests":
		return s.ForTests
	case "forDoctors":
		return s.ForDoctors
	case "forPackages":
		return s.ForPackages
	default:
		return 0
	}
}

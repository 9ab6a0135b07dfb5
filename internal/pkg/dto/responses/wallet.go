package responses

type WalletLog struct {
	Direction    string  `json:"direction"`
	ForTests     float64 `json:"forTests"`
	ForDoctors   float64 `json:"forDoctors"`
	ForPackages  float64 `json:"forPackages"`
	Amount       float64 `json:"amount"`
	Counterparty string  `json:"counterparty"`
	CreatedAt    string  `json:"createdAt"`
	TimeAgo      string  `json:"timeAgo"`
}

type WalletBalance struct {
	StaffID       string      `json:"staffId"`
	WalletBalance float64     `json:"walletBalance"`
	ForTests      float64     `json:"forTests"`
	ForDoctors    float64     `json:"forDoctors"`
	ForPackages   float64     `json:"forPackages"`
	Logs          []WalletLog `json:"logs"`
}

// TopUpWallet is the top-up response: updated balances plus the entry that
// was just appended.
type TopUpWallet struct {
	StaffID       string    `json:"staffId"`
	WalletBalance float64   `json:"walletBalance"`
	ForTests      float64   `json:"forTests"`
	ForDoctors    float64   `json:"forDoctors"`
	ForPackages   float64   `json:"forPackages"`
	Entry         WalletLog `json:"entry"`
}

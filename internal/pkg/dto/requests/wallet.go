package requests

// TopUpWallet credits a staff wallet split across the three earmarks.
// The sum of the three amounts must be positive; each individual amount
// may be zero.
type TopUpWallet struct {
	ForTests    float64 `json:"forTests" validate:"gte=0"`
	ForDoctors  float64 `json:"forDoctors" validate:"gte=0"`
	ForPackages float64 `json:"forPackages" validate:"gte=0"`
	From        string  `json:"from" validate:"required"`
}

func (r *TopUpWallet) Sum() float64 {
	return r.ForTests + r.ForDoctors + r.ForPackages
}

package responses

type AdminLogin struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type HraResult struct {
	ResponseID string `json:"responseId"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"maxScore"`
	RiskLevel  string `json:"riskLevel"`
}

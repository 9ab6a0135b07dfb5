package requests

type HraOption struct {
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score" validate:"gte=0"`
}

type HraQuestion struct {
	Text    string      `json:"text" validate:"required"`
	Options []HraOption `json:"options" validate:"required,min=2,dive"`
}

type CreateHraQuestionnaire struct {
	Title     string        `json:"title" validate:"required"`
	Questions []HraQuestion `json:"questions" validate:"required,min=1,dive"`
}

// SubmitHraResponse carries one selected option index per question, in
// question order.
type SubmitHraResponse struct {
	StaffID string `json:"staffId" validate:"required"`
	Answers []int  `json:"answers" validate:"required,min=1"`
}

package models

import "time"

// Health-risk-assessment questionnaire. Scores are summed over the selected
// option of every question and banded into a risk level.

type HraOption struct {
	Text  string `json:"text" bson:"text"`
	Score int    `json:"score" bson:"score"`
}

type HraQuestion struct {
	Text    string      `json:"text" bson:"text"`
	Options []HraOption `json:"options" bson:"options"`
}

type HraQuestionnaire struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Title     string        `json:"title" bson:"title"`
	Questions []HraQuestion `json:"questions" bson:"questions"`
	TimeModel `bson:",inline"`
}

// MaxScore is the highest achievable total for the questionnaire.
func (q *HraQuestionnaire) MaxScore() int {
	total := 0
	for _, question := range q.Questions {
		best := 0
		for _, option := range question.Options {
			if option.Score > best {
				best = option.Score
			}
		}
		total += best
	}
	return total
}

type HraResponse struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	QuestionnaireID string    `json:"questionnaireId" bson:"questionnaireId"`
	StaffID         string    `json:"staffId" bson:"staffId"`
	Answers         []int     `json:"answers" bson:"answers"`
	Score           int       `json:"score" bson:"score"`
	RiskLevel       string    `json:"riskLevel" bson:"riskLevel"`
	SubmittedAt     time.Time `json:"submittedAt" bson:"submittedAt"`
}

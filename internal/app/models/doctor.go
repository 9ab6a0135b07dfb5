package models

type Doctor struct {
	ID              string  `json:"id" bson:"_id,omitempty"`
	Name            string  `json:"name" bson:"name"`
	Specialization  string  `json:"specialization" bson:"specialization"`
	Qualification   string  `json:"qualification" bson:"qualification"`
	ConsultationFee float64 `json:"consultationFee" bson:"consultationFee"`
	OnlineSlots     []Slot  `json:"onlineSlots" bson:"onlineSlots"`
	OfflineSlots    []Slot  `json:"offlineSlots" bson:"offlineSlots"`
	TimeModel       `bson:",inline"`
}

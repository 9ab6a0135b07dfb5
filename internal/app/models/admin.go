package models

type Admin struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	Role      string `json:"role" bson:"role"`
	TimeModel `bson:",inline"`
}

type Company struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Address   string `json:"address" bson:"address"`
	City      string `json:"city" bson:"city"`
	GSTIN     string `json:"gstin,omitempty" bson:"gstin,omitempty"`
	TimeModel `bson:",inline"`
}

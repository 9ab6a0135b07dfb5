package models

// Catalog items carry a list price and an optional offer price. A zero
// offerPrice means "no offer", in which case the list price applies.

type Test struct {
	ID         string  `json:"id" bson:"_id,omitempty"`
	CategoryID string  `json:"categoryId" bson:"categoryId"`
	Name       string  `json:"name" bson:"name"`
	Price      float64 `json:"price" bson:"price"`
	OfferPrice float64 `json:"offerPrice,omitempty" bson:"offerPrice,omitempty"`
	TimeModel  `bson:",inline"`
}

func (t *Test) EffectivePrice() float64 {
	if t.OfferPrice > 0 {
		return t.OfferPrice
	}
	return t.Price
}

type Package struct {
	ID         string   `json:"id" bson:"_id,omitempty"`
	Name       string   `json:"name" bson:"name"`
	TestIDs    []string `json:"testIds" bson:"testIds"`
	Price      float64  `json:"price" bson:"price"`
	OfferPrice float64  `json:"offerPrice,omitempty" bson:"offerPrice,omitempty"`
	TimeModel  `bson:",inline"`
}

func (p *Package) EffectivePrice() float64 {
	if p.OfferPrice > 0 {
		return p.OfferPrice
	}
	return p.Price
}

type Xray struct {
	ID         string  `json:"id" bson:"_id,omitempty"`
	CategoryID string  `json:"categoryId" bson:"categoryId"`
	Name       string  `json:"name" bson:"name"`
	Price      float64 `json:"price" bson:"price"`
	OfferPrice float64 `json:"offerPrice,omitempty" bson:"offerPrice,omitempty"`
	TimeModel  `bson:",inline"`
}

func (x *Xray) EffectivePrice() float64 {
	if x.OfferPrice > 0 {
		return x.OfferPrice
	}
	return x.Price
}

type Category struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Name      string `json:"name" bson:"name"`
	Kind      string `json:"kind" bson:"kind"`
	TimeModel `bson:",inline"`
}

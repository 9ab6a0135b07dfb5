package requests

type CreateTest struct {
	CategoryID string  `json:"categoryId,omitempty"`
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	OfferPrice float64 `json:"offerPrice,omitempty" validate:"gte=0"`
}

type CreatePackage struct {
	Name       string   `json:"name" validate:"required"`
	TestIDs    []string `json:"testIds,omitempty"`
	Price      float64  `json:"price" validate:"required,gt=0"`
	OfferPrice float64  `json:"offerPrice,omitempty" validate:"gte=0"`
}

type CreateXray struct {
	CategoryID string  `json:"categoryId,omitempty"`
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	OfferPrice float64 `json:"offerPrice,omitempty" validate:"gte=0"`
}

type CreateCategory struct {
	Name string `json:"name" validate:"required"`
	Kind string `json:"kind" validate:"required,oneof=test xray"`
}

type UpdateCatalogItem struct {
	Name       string  `json:"name,omitempty"`
	Price      float64 `json:"price,omitempty" validate:"gte=0"`
	OfferPrice float64 `json:"offerPrice,omitempty" validate:"gte=0"`
}

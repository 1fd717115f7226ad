package dto

type ValidatePromoRequest struct {
	Code     string `json:"code"     validate:"required,max=32"`
	Subtotal int    `json:"subtotal" validate:"required,gte=1"`
}

type ValidatePromoResponse struct {
	Valid    bool `json:"valid"`
	Discount int  `json:"discount"`
	NewTotal int  `json:"newTotal"`
}

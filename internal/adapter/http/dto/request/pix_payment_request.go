package request

import "pix_checkout/internal/domain/entities"

type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
}

type PaymentItemRequest struct {
	Title       string  `json:"title"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// PixPaymentRequest is the body of POST /api/payments/pix. Amount is in
// centavos. Field presence is checked by the use case so every missing field
// maps to the same validation errors as the form flow.
type PixPaymentRequest struct {
	Amount   *float64             `json:"amount"`
	Customer CustomerRequest      `json:"customer"`
	Items    []PaymentItemRequest `json:"items"`
	IP       string               `json:"ip"`
}

// ToEntity forwards ip only as the caller sent it.
func (r PixPaymentRequest) ToEntity() entities.PaymentRequest {
	items := make([]entities.PaymentItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.PaymentItem{
			Title:       it.Title,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Description: it.Description,
		})
	}

	return entities.PaymentRequest{
		Amount: r.Amount,
		Customer: entities.CustomerInput{
			FullName: r.Customer.Name,
			Email:    r.Customer.Email,
			Document: r.Customer.Document,
			Phone:    r.Customer.Phone,
		},
		Items: items,
		IP:    r.IP,
	}
}

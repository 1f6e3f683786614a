package request

import (
	"checkout-service/internal/domain/session"
	"checkout-service/internal/usecase/commands"
)

type LineItemDTO struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=100"`
}

type BuyerDTO struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}

type CreateCheckoutSessionRequest struct {
	// Items absent means "start with an empty cart"; present but empty
	// is a structural violation caught by binding.
	Items    []LineItemDTO `json:"items,omitempty" binding:"omitempty,min=1,dive"`
	Buyer    *BuyerDTO     `json:"buyer,omitempty"`
	Currency string        `json:"currency,omitempty"`
}

func (r CreateCheckoutSessionRequest) ToCommand() commands.CreateSessionRequest {
	return commands.CreateSessionRequest{
		Items:    toLineItemInputs(r.Items),
		Buyer:    toBuyerInput(r.Buyer),
		Currency: r.Currency,
	}
}

type UpdateCheckoutSessionRequest struct {
	Items []LineItemDTO `json:"items,omitempty" binding:"omitempty,min=1,dive"`
	Buyer *BuyerDTO     `json:"buyer,omitempty"`
}

func (r UpdateCheckoutSessionRequest) ToCommand() commands.UpdateSessionRequest {
	return commands.UpdateSessionRequest{
		Items: toLineItemInputs(r.Items),
		Buyer: toBuyerInput(r.Buyer),
	}
}

func toLineItemInputs(items []LineItemDTO) *[]session.LineItemInput {
	if items == nil {
		return nil
	}
	inputs := make([]session.LineItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, session.LineItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &inputs
}

func toBuyerInput(b *BuyerDTO) *commands.BuyerInput {
	if b == nil {
		return nil
	}
	return &commands.BuyerInput{Email: b.Email, FullName: b.FullName}
}

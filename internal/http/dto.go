package http

import (
	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/domain"
)

type AddItemRequestDTO struct {
	ProductID *int64 `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity *float64 `json:"quantity"`
}

type ProductDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	ImageURL string `json:"image_url"`
	Spec     string `json:"spec"`
}

type CartLineDTO struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Known     bool    `json:"known"`
	Quantity  float64 `json:"quantity"`
	UnitPrice string  `json:"unit_price,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
	LineTotal string  `json:"line_total"`
}

type CartDTO struct {
	Items     []CartLineDTO `json:"items"`
	ItemCount float64       `json:"item_count"`
	Subtotal  string        `json:"subtotal"`
	Tax       string        `json:"tax"`
	Total     string        `json:"total"`
}

func convertProduct(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID,
		Name:     p.Name,
		Category: string(p.Category),
		Price:    cart.FormatMoney(p.Price),
		ImageURL: p.ImageURL,
		Spec:     p.Spec,
	}
}

func convertCart(snapshot domain.Snapshot, totals domain.Totals) CartDTO {
	dto := CartDTO{
		Items:     make([]CartLineDTO, len(totals.Lines)),
		ItemCount: cart.ItemCount(snapshot),
		Subtotal:  cart.FormatMoney(totals.Subtotal),
		Tax:       cart.FormatMoney(totals.Tax),
		Total:     cart.FormatMoney(totals.Total),
	}

	for i, line := range totals.Lines {
		item := CartLineDTO{
			ProductID: line.ProductID,
			Name:      cart.DisplayName(line),
			Known:     line.Known(),
			Quantity:  line.Quantity,
			LineTotal: cart.DisplayAmount(line),
		}
		if line.Known() {
			item.UnitPrice = cart.FormatMoney(line.Product.Price)
			item.ImageURL = line.Product.ImageURL
		}
		dto.Items[i] = item
	}

	return dto
}

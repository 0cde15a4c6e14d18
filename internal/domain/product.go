package domain

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryAll         Category = "all"
	CategoryGPU         Category = "gpu"
	CategoryMotherboard Category = "mobo"
	CategoryPeripheral  Category = "periph"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAll, CategoryGPU, CategoryMotherboard, CategoryPeripheral:
		return true
	}
	return false
}

type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Spec     string          `json:"spec"`
}

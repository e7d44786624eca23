package product

import "time"

// Product is a sellable stock item. BarCode and the reference ids are
// optional; SKU, product code and slug are required and unique.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	BatchNumber string     `json:"batchNumber,omitempty"`
	BarCode     string     `json:"barCode,omitempty"`
	Image       string     `json:"image,omitempty"`
	Tax         float64    `json:"tax"`
	AlertQty    int        `json:"alertQty"`
	StockQty    int        `json:"stockQty"`
	Price       float64    `json:"price"`
	BuyingPrice float64    `json:"buyingPrice"`
	SKU         string     `json:"sku"`
	ProductCode string     `json:"productCode"`
	Slug        string     `json:"slug"`
	SupplierID  string     `json:"supplierId,omitempty"`
	UnitID      string     `json:"unitId,omitempty"`
	BrandID     string     `json:"brandId,omitempty"`
	CategoryID  string     `json:"categoryId,omitempty"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

package entity

// PlaceholderPhotoURL stands in for a missing product or company photo.
const PlaceholderPhotoURL = "/assets/placeholder.png"

// CatalogProduct is the flattened storefront view of a product: the
// product record plus denormalized company identity attached at read time.
type CatalogProduct struct {
	CompanyID   string   `json:"companyId"`
	CompanyName string   `json:"companyName"`
	CompanyLogo string   `json:"companyLogo"`
	ProductID   string   `json:"productId"`
	Product     *Product `json:"product"`
}

// Package entity contains the core business objects of the marketplace,
// each serialized to the document tree with the tree's own key names.
package entity

import "time"

// Company is a vendor's storefront record, rooted at companies/{companyID}.
// Products live in-tree under the company; the company is never deleted by
// the application.
type Company struct {
	CompanyName     string              `json:"companyName"`
	CompanyPhotoURL string              `json:"companyPhotoUrl,omitempty"`
	Email           string              `json:"email"`
	PhoneNumber     string              `json:"phoneNumber"`
	Products        map[string]*Product `json:"products,omitempty"`
}

// Product is owned exclusively by its parent Company.
// discountPrice <= originalPrice is assumed but not enforced server-side.
type Product struct {
	ProductName        string     `json:"productName"`
	ProductDescription string     `json:"productDescription,omitempty"`
	OriginalPrice      float64    `json:"originalPrice"`
	DiscountPrice      float64    `json:"discountPrice"`
	StockQuantity      int        `json:"stockQuantity"`
	ProductPhotoURLs   []string   `json:"productPhotoUrls,omitempty"`
	Nutrients          []Nutrient `json:"nutrients,omitempty"`
	Categories         []Category `json:"categories,omitempty"`
	Dimensions         string     `json:"dimensions,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

// Nutrient is a single nutrition-facts row.
type Nutrient struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Category is a main/sub category pair, e.g. {"Vegetables", "Leafy Greens"}.
type Category struct {
	Main string `json:"main"`
	Sub  string `json:"sub,omitempty"`
}

// Price returns the effective selling price: the discount price when set,
// otherwise the original price.
func (p *Product) Price() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}

	return p.OriginalPrice
}

// MatchesCategory reports whether the product carries the given category
// as either a main or a sub category.
func (p *Product) MatchesCategory(category string) bool {
	for _, c := range p.Categories {
		if c.Main == category || c.Sub == category {
			return true
		}
	}

	return false
}

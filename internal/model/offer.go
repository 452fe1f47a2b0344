package model

// BasicPrice is the business-level price attached to offer mappings. The
// vendor names its currency field currencyId here, unlike campaign prices.
type BasicPrice struct {
	Value        float64 `json:"value,omitempty"`
	CurrencyID   string  `json:"currencyId,omitempty"`
	DiscountBase float64 `json:"discountBase,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

type CampaignPrice struct {
	Value        float64 `json:"value,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	DiscountBase float64 `json:"discountBase,omitempty"`
	VAT          int     `json:"vat,omitempty"`
}

type Offer struct {
	OfferID    string      `json:"offerId"`
	Name       string      `json:"name,omitempty"`
	Vendor     string      `json:"vendor,omitempty"`
	Category   string      `json:"category,omitempty"`
	Barcodes   []string    `json:"barcodes,omitempty"`
	BasicPrice *BasicPrice `json:"basicPrice,omitempty"`
	CardStatus string      `json:"cardStatus,omitempty"`
	Archived   bool        `json:"archived,omitempty"`
}

type Mapping struct {
	MarketSKU          int64  `json:"marketSku,omitempty"`
	MarketCategoryID   int64  `json:"marketCategoryId,omitempty"`
	MarketCategoryName string `json:"marketCategoryName,omitempty"`
}

type OfferMapping struct {
	Offer   Offer    `json:"offer"`
	Mapping *Mapping `json:"mapping,omitempty"`
}

// CategoryName prefers the seller's own category and falls back to the
// market one from the mapping.
func (mapping OfferMapping) CategoryName() string {
	if mapping.Offer.Category != "" {
		return mapping.Offer.Category
	}

	if mapping.Mapping != nil {
		return mapping.Mapping.MarketCategoryName
	}

	return ""
}

type OfferIssue struct {
	Message string `json:"message,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type CampaignOffer struct {
	OfferID       string         `json:"offerId"`
	Name          string         `json:"name,omitempty"`
	BasicPrice    *BasicPrice    `json:"basicPrice,omitempty"`
	CampaignPrice *CampaignPrice `json:"campaignPrice,omitempty"`
	Status        string         `json:"status,omitempty"`
	Errors        []OfferIssue   `json:"errors,omitempty"`
	Warnings      []OfferIssue   `json:"warnings,omitempty"`
}

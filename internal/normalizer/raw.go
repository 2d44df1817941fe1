// Package normalizer reconciles the two raw transaction shapes, minimal
// document-extracted records and rich partner-enriched records, into the
// canonical models.Transaction representation. It is a pure transformation
// with no side effects; all I/O stays at the caller's boundary.
package normalizer

import (
	"encoding/json"

	"snapengine/internal/models"
)

// SourceShape tags a raw batch by its origin. The two shapes carry different
// guarantees: document extraction is best-effort and untrusted; the partner
// feed is assumed reliable for enrichment fields but still optional per
// field.
type SourceShape string

const (
	ShapeDocumentExtracted SourceShape = "document_extracted"
	ShapePartnerEnriched   SourceShape = "partner_enriched"
)

// Valid reports whether the shape tag is one of the two known origins.
func (s SourceShape) Valid() bool {
	return s == ShapeDocumentExtracted || s == ShapePartnerEnriched
}

// RawRecord is the union of both input shapes as received at the boundary.
// Document-extracted records populate only date, description, amount and
// type; partner-enriched records additionally carry direction, currency and
// the enrichment fields. Required-field validation happens in Normalize, not
// at decode time.
type RawRecord struct {
	ID          string      `json:"id,omitempty"`
	Date        string      `json:"date,omitempty"`
	DatePosted  string      `json:"date_posted,omitempty"`
	Description string      `json:"description,omitempty"`
	Amount      json.Number `json:"amount,omitempty"`
	Type        string      `json:"type,omitempty"`      // "income" | "expense"
	Direction   string      `json:"direction,omitempty"` // "INFLOW" | "OUTFLOW"

	ISOCurrencyCode string `json:"iso_currency_code,omitempty"`
	MCC             string `json:"mcc,omitempty"`

	MerchantName            *string                         `json:"merchant_name,omitempty"`
	LogoURL                 *string                         `json:"logo_url,omitempty"`
	Website                 *string                         `json:"website,omitempty"`
	EntityID                *string                         `json:"entity_id,omitempty"`
	PaymentChannel          *string                         `json:"payment_channel,omitempty"`
	PersonalFinanceCategory *models.PersonalFinanceCategory `json:"personal_finance_category,omitempty"`
	Location                *models.Location                `json:"location,omitempty"`
	Counterparties          []models.Counterparty           `json:"counterparties,omitempty"`
}

// PartnerCSVRecord is the partner feed's CSV export shape, one row per
// transaction. Enrichment beyond location arrives separately through the
// partner's enrich response and is merged by the caller before
// normalization.
type PartnerCSVRecord struct {
	ID              string `csv:"id"`
	Description     string `csv:"description"`
	Amount          string `csv:"amount"`
	Direction       string `csv:"direction"`
	ISOCurrencyCode string `csv:"iso_currency_code"`
	City            string `csv:"city"`
	Region          string `csv:"region"`
	DatePosted      string `csv:"date_posted"`
	MCC             string `csv:"mcc"`
}

// ToRawRecord converts a CSV row into the union shape consumed by Normalize.
func (r PartnerCSVRecord) ToRawRecord() RawRecord {
	raw := RawRecord{
		ID:              r.ID,
		Description:     r.Description,
		Amount:          json.Number(r.Amount),
		Direction:       r.Direction,
		ISOCurrencyCode: r.ISOCurrencyCode,
		DatePosted:      r.DatePosted,
		MCC:             r.MCC,
	}
	if r.City != "" || r.Region != "" {
		raw.Location = &models.Location{
			City:   r.City,
			Region: r.Region,
		}
	}
	return raw
}

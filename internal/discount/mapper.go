package discount

import (
	"strings"

	"alumnirabatt/internal/models"
)

// Sites holds the public web roots that upstream paths are appended to verbatim,
// so each root carries whatever separator its provider's paths lack.
type Sites struct {
	Studentkortet string
	Mecenat       string
}

func FromStuk(p models.StukPartner, site string) models.Discount {
	brand := p.PartnerExtraTitle
	if brand == "" {
		brand = p.Name
	}
	description := StripHTML(p.DescriptionText)

	return models.Discount{
		ID:          models.StukScheme + p.ID.String(),
		Brand:       brand,
		Title:       strings.TrimSpace(p.Headline),
		Description: description,
		LogoURL:     p.LogoImageURL,
		URL:         site + p.Path,
		Provider:    models.ProviderStudentkortet,
		Condition:   FindCondition(description),
	}
}

// FromMecenat maps a Mecenat discount. The id keeps the stuk:// scheme.
func FromMecenat(d models.MecenatDiscount, site string) models.Discount {
	conditionText := StripHTML(d.ConditionHTML)
	description := d.Subtitle
	if description == "" {
		description = conditionText
	}
	condition := FindCondition(conditionText)
	if condition == nil {
		condition = FindCondition(description)
	}

	return models.Discount{
		ID:          models.StukScheme + d.ID.String(),
		Brand:       d.BrandName,
		Title:       d.Title,
		Description: description,
		LogoURL:     d.BrandLogo,
		URL:         site + d.URL,
		Provider:    models.ProviderMecenat,
		Condition:   condition,
	}
}

// Merge normalizes both upstream payloads, Studentkortet records first.
// Either payload may be nil.
func Merge(stuk *models.StukResponse, mecenat *models.MecenatResponse, sites Sites) []models.Discount {
	size := 0
	if stuk != nil {
		size += len(stuk.Hits.Hits)
	}
	if mecenat != nil {
		size += len(mecenat.Discounts)
	}

	out := make([]models.Discount, 0, size)
	if stuk != nil {
		for _, hit := range stuk.Hits.Hits {
			out = append(out, FromStuk(hit.Source, sites.Studentkortet))
		}
	}
	if mecenat != nil {
		for _, d := range mecenat.Discounts {
			out = append(out, FromMecenat(d, sites.Mecenat))
		}
	}
	return out
}

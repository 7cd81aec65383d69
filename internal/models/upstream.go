package models

// StukResponse is the payload of the Studentkortet partner search.
type StukResponse struct {
	Hits struct {
		Hits []StukHit `json:"hits"`
	} `json:"hits"`
}

type StukHit struct {
	Source StukPartner `json:"_source"`
}

type StukPartner struct {
	ID                RawID  `json:"id"`
	Name              string `json:"name"`
	PartnerExtraTitle string `json:"partner_extra_title"`
	Headline          string `json:"headline"`
	DescriptionText   string `json:"description_text"`
	LogoImageURL      string `json:"logo_image_url"`
	Path              string `json:"path"`
}

// MecenatResponse is the payload of the Mecenat alumni search. Discounts is
// omitted by the API when nothing matches.
type MecenatResponse struct {
	Discounts []MecenatDiscount `json:"discounts"`
}

type MecenatDiscount struct {
	ID            RawID  `json:"id"`
	BrandLogo     string `json:"brandLogo"`
	BrandName     string `json:"brandName"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	ConditionHTML string `json:"conditionHTML"`
	ValidTo       string `json:"validTo"`
	URL           string `json:"url"`
}

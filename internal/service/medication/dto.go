package medication

type Manufacturer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info,omitempty"`
}

type Image struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
	AltText  string `json:"alt_text"`
}

type Medication struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Manufacturer Manufacturer `json:"manufacturer"`
	Images       []Image      `json:"images"`
}

type CreateMedication struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	PurchasePrice  float64 `json:"purchase_price"`
	ManufacturerID int64   `json:"manufacturer_id"`
}

// ImageUpload is one image attached to a medication on creation.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

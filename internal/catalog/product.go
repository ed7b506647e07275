package catalog

// Availability values as the catalog source spells them.
const (
	InStock    = "In Stock"
	LowStock   = "Low Stock"
	OutOfStock = "Out of Stock"
)

// Product is one catalog entry. Read-only after load; cart lines snapshot the
// fields they need instead of pointing back here.
type Product struct {
	ID                   ID         `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Category             string     `json:"category"`
	Brand                string     `json:"brand,omitempty"`
	Price                float64    `json:"price"`
	DiscountPercentage   float64    `json:"discountPercentage,omitempty"`
	Rating               float64    `json:"rating"`
	Stock                int        `json:"stock"`
	AvailabilityStatus   string     `json:"availabilityStatus"`
	MinimumOrderQuantity int        `json:"minimumOrderQuantity,omitempty"`
	SKU                  string     `json:"sku,omitempty"`
	Weight               float64    `json:"weight,omitempty"`
	Dimensions           Dimensions `json:"dimensions,omitempty"`
	WarrantyInformation  string     `json:"warrantyInformation,omitempty"`
	ShippingInformation  string     `json:"shippingInformation,omitempty"`
	ReturnPolicy         string     `json:"returnPolicy,omitempty"`
	Tags                 []string   `json:"tags,omitempty"`
	Reviews              []Review   `json:"reviews,omitempty"`
	Thumbnail            string     `json:"thumbnail,omitempty"`
	Images               []string   `json:"images,omitempty"`
	Meta                 Meta       `json:"meta,omitempty"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type Review struct {
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	Date          string `json:"date"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
}

type Meta struct {
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Barcode   string `json:"barcode,omitempty"`
	QRCode    string `json:"qrCode,omitempty"`
}

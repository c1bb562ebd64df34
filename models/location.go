package models

// LocationType distinguishes mobile service at the customer's address from
// drop-off at a shop.
type LocationType string

const (
	LocationMobile LocationType = "mobile"
	LocationShop   LocationType = "shop"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Location carries exactly one of Address (mobile) or ShopID (shop),
// switched by Type.
type Location struct {
	Type    LocationType `json:"type"`
	Address *Address     `json:"address,omitempty"`
	ShopID  string       `json:"shopId,omitempty"`
}

// ContactMethod is the customer's preferred channel for updates.
type ContactMethod string

const (
	ContactEmail ContactMethod = "email"
	ContactPhone ContactMethod = "phone"
	ContactSMS   ContactMethod = "sms"
)

type ContactInfo struct {
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	PreferredContact ContactMethod `json:"preferredContact"`
}

package models

// DeliveryCharge is the store-wide shipping schedule.
type DeliveryCharge struct {
	InsideDhaka  float64 `bson:"insideDhaka" json:"insideDhaka"`
	OutSideDhaka float64 `bson:"outSideDhaka" json:"outSideDhaka"`
}

// Setting holds global store configuration. Read-only from the
// storefront's perspective.
type Setting struct {
	Name           string         `bson:"name" json:"name"`
	Tagline        string         `bson:"tagline" json:"tagline"`
	Description    string         `bson:"description" json:"description"`
	Favicon        string         `bson:"favicon" json:"favicon"`
	DeliveryCharge DeliveryCharge `bson:"deliveryCharge" json:"deliveryCharge"`
}

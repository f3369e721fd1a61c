package shopsite

import "time"

// Token is an access token obtained from the authorization-code exchange.
// There is no refresh: once expired, signed calls fail remotely.
type Token struct {
	AccessToken string
	TokenType   string
	Scope       string
	ExpiresIn   time.Duration
	Expiry      time.Time
}

// Order is a single order record from the orders data source.
type Order struct {
	OrderID         string      `xml:"OrderID"         json:"order_id"`
	OrderDate       string      `xml:"OrderDate"       json:"order_date"`
	BillingAddress  Address     `xml:"BillingAddress"  json:"billing_address"`
	ShippingAddress Address     `xml:"ShippingAddress" json:"shipping_address"`
	Items           []OrderItem `xml:"Items>Item"      json:"items"`
	Total           string      `xml:"Total"           json:"total"`
}

// Address is a billing or shipping address on an order.
type Address struct {
	FirstName string `xml:"FirstName" json:"first_name"`
	LastName  string `xml:"LastName"  json:"last_name"`
	Company   string `xml:"Company"   json:"company,omitempty"`
	Address1  string `xml:"Address1"  json:"address1"`
	Address2  string `xml:"Address2"  json:"address2,omitempty"`
	City      string `xml:"City"      json:"city"`
	State     string `xml:"State"     json:"state"`
	Zip       string `xml:"Zip"       json:"zip"`
	Country   string `xml:"Country"   json:"country"`
	Phone     string `xml:"Phone"     json:"phone,omitempty"`
	Email     string `xml:"Email"     json:"email"`
}

// OrderItem is a line item on an order.
type OrderItem struct {
	Name     string `xml:"Name"     json:"name"`
	SKU      string `xml:"SKU"      json:"sku"`
	Quantity string `xml:"Quantity" json:"quantity"`
	Price    string `xml:"Price"    json:"price"`
}

// Product is a catalog record from the products data source.
type Product struct {
	Name    string `xml:"Name"    json:"name"`
	SKU     string `xml:"SKU"     json:"sku"`
	Price   string `xml:"Price"   json:"price"`
	Taxable string `xml:"Taxable" json:"taxable"`
}

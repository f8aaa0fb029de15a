package dto

import "github.com/shopspring/decimal"

type PlaceOrderRequest struct {
	Customer         CustomerRequest    `json:"customer"`
	Items            []OrderItemRequest `json:"items" validate:"min=1,max=100,dive"`
	Fulfillment      FulfillmentRequest `json:"fulfillment"`
	Notes            string             `json:"notes" validate:"max=2000"`
	Payment          PaymentRequest     `json:"payment"`
	DownloadReceipt  bool               `json:"downloadReceipt"`
	SendCustomerCopy bool               `json:"sendCustomerCopy"`
}

type CustomerRequest struct {
	Name   string `json:"name" validate:"required,max=120"`
	Phone  string `json:"phone" validate:"required,max=40"`
	Email  string `json:"email" validate:"omitempty,email,max=254"`
	IsCell bool   `json:"isCell"`
}

type OrderItemRequest struct {
	ID       string          `json:"id" validate:"max=120"`
	Name     string          `json:"name" validate:"required,max=200"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"min=1,max=1000"`
}

type FulfillmentRequest struct {
	Type    string          `json:"type" validate:"oneof=delivery pickup"`
	Date    string          `json:"date" validate:"required,max=40"`
	Time    string          `json:"time" validate:"required,max=40"`
	Address *AddressRequest `json:"address"`
}

type AddressRequest struct {
	Line1 string `json:"line1" validate:"required,max=200"`
	Line2 string `json:"line2" validate:"max=200"`
	City  string `json:"city" validate:"required,max=100"`
	State string `json:"state" validate:"required,max=40"`
	Zip   string `json:"zip" validate:"required,max=10"`
}

type PaymentRequest struct {
	Method string `json:"method" validate:"required"`
	Paid   bool   `json:"paid"`
}

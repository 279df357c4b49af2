package dto

import "time"

type CreateCustomerInput struct {
	Name           string `json:"name"`
	Phones         string `json:"phones"`
	Address        string `json:"address"`
	Email          string `json:"email"`
	DefaultPackage string `json:"default_package"`
}

type CustomerSearchResult struct {
	Name       string     `json:"name"`
	Phones     string     `json:"phones"`
	UploadedAt *time.Time `json:"uploaded_at"`
	// UploadedAtFormatted is the upload time rendered in Israel local time,
	// dd/MM/yyyy HH:mm, or "-" when the customer has no uploaded order.
	UploadedAtFormatted string `json:"uploaded_at_formatted"`
}

package entity

import "time"

// Registration status values. No code path here transitions a registration
// away from pending; approval is an out-of-band admin process.
const RegistrationStatusPending = "pending"

// VendorRegistration is a pending vendor application at registrations/{uid}.
type VendorRegistration struct {
	UID              string    `json:"uid"`
	RegistrationType string    `json:"registrationType"`
	CompanyName      string    `json:"companyName"`
	RegisterNo       string    `json:"registerNo,omitempty"`
	CompanyType      string    `json:"companyType,omitempty"`
	CertificateURL   string    `json:"certificateUrl,omitempty"`
	ISOURL           string    `json:"isoUrl,omitempty"`
	GSTNo            string    `json:"gstNo,omitempty"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phoneNumber,omitempty"`
	Status           string    `json:"status"`
	SubmittedAt      time.Time `json:"submittedAt"`
}

package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// AccountUsecase covers the post-auth registration step and vendor
// onboarding.
type AccountUsecase interface {
	// RegisterProfile creates user/{uid}/profile, the precondition for
	// cart and checkout actions.
	RegisterProfile(ctx context.Context, uid string, input *RegisterProfileInput) (*entity.UserProfile, error)

	// GetProfile returns the user's profile.
	GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error)

	// RegisterVendor creates an email/password account, uploads the
	// certificates and files a pending registration.
	RegisterVendor(ctx context.Context, input *RegisterVendorInput) (*RegisterVendorOutput, error)
}

// RegisterProfileInput is the first post-auth registration form.
type RegisterProfileInput struct {
	Name    string  `json:"name" validate:"required"`
	Phone   string  `json:"phone" validate:"required,len=10,numeric"`
	Address string  `json:"address" validate:"required"`
	Pincode string  `json:"pincode" validate:"omitempty,len=6,numeric"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// RegisterVendorInput is the vendor application form plus certificate files.
type RegisterVendorInput struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	RegistrationType string `json:"registration_type" validate:"required"`
	CompanyName      string `json:"company_name" validate:"required"`
	RegisterNo       string `json:"register_no"`
	CompanyType      string `json:"company_type"`
	GSTNo            string `json:"gst_no"`
	PhoneNumber      string `json:"phone_number"`

	Certificate *FileUpload `json:"-"`
	ISO         *FileUpload `json:"-"`
}

// RegisterVendorOutput reports the created account and filed registration.
type RegisterVendorOutput struct {
	UID    string `json:"uid"`
	Status string `json:"status"`
}

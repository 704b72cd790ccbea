package impl

import (
	"context"
	"log/slog"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type accountService struct {
	profileRepo      repository.ProfileRepository
	registrationRepo repository.RegistrationRepository
	productRepo      repository.ProductRepository
	identity         service.IdentityService
	storage          service.StorageService
	geocoder         service.Geocoder
	logger           *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	profileRepo repository.ProfileRepository,
	registrationRepo repository.RegistrationRepository,
	productRepo repository.ProductRepository,
	identity service.IdentityService,
	storage service.StorageService,
	geocoder service.Geocoder,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		profileRepo:      profileRepo,
		registrationRepo: registrationRepo,
		productRepo:      productRepo,
		identity:         identity,
		storage:          storage,
		geocoder:         geocoder,
		logger:           logger,
	}
}

// RegisterProfile creates the profile that gates cart and checkout actions.
func (srv *accountService) RegisterProfile(ctx context.Context, uid string, input *usecase.RegisterProfileInput) (*entity.UserProfile, error) {
	profile := &entity.UserProfile{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Pincode: input.Pincode,
		Lat:     input.Lat,
		Lng:     input.Lng,
	}

	srv.fillFromCoordinates(ctx, profile)

	if err := srv.profileRepo.Set(ctx, uid, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.logger.Info("profile registered", slog.String("uid", uid))

	return profile, nil
}

// fillFromCoordinates backfills a missing address or pincode by reverse
// geocoding the submitted coordinates. Best effort: any failure keeps the
// submitted values untouched.
func (srv *accountService) fillFromCoordinates(ctx context.Context, profile *entity.UserProfile) {
	if srv.geocoder == nil {
		return
	}
	if profile.Lat == 0 && profile.Lng == 0 {
		return
	}
	if profile.Address != "" && profile.Pincode != "" {
		return
	}

	placemark, err := srv.geocoder.ReverseGeocode(ctx, orb.Point{profile.Lng, profile.Lat})
	if err != nil {
		srv.logger.Warn("reverse geocoding failed", slog.Any("error", err))

		return
	}

	if profile.Address == "" {
		profile.Address = placemark.FullAddress
	}
	if profile.Pincode == "" {
		profile.Pincode = placemark.Pincode
	}
}

// GetProfile returns the user's profile.
func (srv *accountService) GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileRequired, "profile not registered")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// RegisterVendor creates the auth account, uploads the certificates and
// files the pending application plus the company record skeleton. The
// application status stays "pending"; approval happens out of band.
func (srv *accountService) RegisterVendor(ctx context.Context, input *usecase.RegisterVendorInput) (*usecase.RegisterVendorOutput, error) {
	uid, err := srv.identity.CreateAccount(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vendor account")
	}

	var certificateURL, isoURL string
	if input.Certificate != nil {
		certificateURL, err = srv.storage.Upload(ctx, service.FolderCompanyCertificates,
			input.Certificate.Filename, input.Certificate.ContentType, input.Certificate.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload certificate")
		}
	}
	if input.ISO != nil {
		isoURL, err = srv.storage.Upload(ctx, service.FolderISOCertificates,
			input.ISO.Filename, input.ISO.ContentType, input.ISO.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload ISO certificate")
		}
	}

	registration := &entity.VendorRegistration{
		UID:              uid,
		RegistrationType: input.RegistrationType,
		CompanyName:      input.CompanyName,
		RegisterNo:       input.RegisterNo,
		CompanyType:      input.CompanyType,
		CertificateURL:   certificateURL,
		ISOURL:           isoURL,
		GSTNo:            input.GSTNo,
		Email:            input.Email,
		PhoneNumber:      input.PhoneNumber,
		Status:           entity.RegistrationStatusPending,
		SubmittedAt:      time.Now().UTC(),
	}
	if err := srv.registrationRepo.Create(ctx, registration); err != nil {
		return nil, errors.Wrap(err, "failed to file registration")
	}

	company := &entity.Company{
		CompanyName: input.CompanyName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}
	if err := srv.productRepo.CreateCompany(ctx, uid, company); err != nil {
		return nil, errors.Wrap(err, "failed to create company record")
	}

	srv.logger.Info("vendor registered",
		slog.String("uid", uid),
		slog.String("companyName", input.CompanyName))

	return &usecase.RegisterVendorOutput{
		UID:    uid,
		Status: entity.RegistrationStatusPending,
	}, nil
}

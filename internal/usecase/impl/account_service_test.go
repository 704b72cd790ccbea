package impl

import (
	"context"
	"strings"
	"testing"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	service          usecase.AccountUsecase
	profileRepo      *mockRepo.MockProfileRepository
	registrationRepo *mockRepo.MockRegistrationRepository
	productRepo      *mockRepo.MockProductRepository
	identity         *mockSvc.MockIdentityService
	storage          *mockSvc.MockStorageService
	geocoder         *mockSvc.MockGeocoder
}

func createTestAccountService(t *testing.T) *accountFixture {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	identity := mockSvc.NewMockIdentityService(t)
	storage := mockSvc.NewMockStorageService(t)
	geocoder := mockSvc.NewMockGeocoder(t)

	service := NewAccountService(
		profileRepo,
		registrationRepo,
		productRepo,
		identity,
		storage,
		geocoder,
		newDiscardLogger(),
	)

	return &accountFixture{
		service:          service,
		profileRepo:      profileRepo,
		registrationRepo: registrationRepo,
		productRepo:      productRepo,
		identity:         identity,
		storage:          storage,
		geocoder:         geocoder,
	}
}

func TestAccountService_RegisterProfile_Complete(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	// Address and pincode are both present, so no geocoding happens.
	fx.profileRepo.EXPECT().
		Set(ctx, "user-1", mock.AnythingOfType("*entity.UserProfile")).
		Return(nil)

	profile, err := fx.service.RegisterProfile(ctx, "user-1", &usecase.RegisterProfileInput{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 Main Road, Mysore",
		Pincode: "570001",
		Lat:     12.9,
		Lng:     77.6,
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, "12 Main Road, Mysore", profile.Address)
}

func TestAccountService_RegisterProfile_BackfillsFromCoordinates(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.geocoder.EXPECT().
		ReverseGeocode(ctx, orb.Point{77.6, 12.9}).
		Return(&service.Placemark{
			FullAddress: "12 Main Road, Mysore, Karnataka",
			Pincode:     "570001",
		}, nil)
	fx.profileRepo.EXPECT().
		Set(ctx, "user-1", mock.AnythingOfType("*entity.UserProfile")).
		Return(nil)

	profile, err := fx.service.RegisterProfile(ctx, "user-1", &usecase.RegisterProfileInput{
		Name:  "Asha",
		Phone: "9876543210",
		Lat:   12.9,
		Lng:   77.6,
	})
	require.NoError(t, err)
	assert.Equal(t, "12 Main Road, Mysore, Karnataka", profile.Address)
	assert.Equal(t, "570001", profile.Pincode)
}

func TestAccountService_RegisterProfile_GeocodeFailureKeepsInput(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.geocoder.EXPECT().
		ReverseGeocode(ctx, orb.Point{77.6, 12.9}).
		Return(nil, errors.New("geocoder unavailable"))
	fx.profileRepo.EXPECT().
		Set(ctx, "user-1", mock.AnythingOfType("*entity.UserProfile")).
		Return(nil)

	profile, err := fx.service.RegisterProfile(ctx, "user-1", &usecase.RegisterProfileInput{
		Name:    "Asha",
		Phone:   "9876543210",
		Address: "12 Main Road",
		Lat:     12.9,
		Lng:     77.6,
	})
	require.NoError(t, err)
	assert.Equal(t, "12 Main Road", profile.Address)
	assert.Empty(t, profile.Pincode)
}

func TestAccountService_RegisterProfile_ZeroCoordinatesSkipGeocode(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		Set(ctx, "user-1", mock.AnythingOfType("*entity.UserProfile")).
		Return(nil)

	_, err := fx.service.RegisterProfile(ctx, "user-1", &usecase.RegisterProfileInput{
		Name:  "Asha",
		Phone: "9876543210",
	})
	assert.NoError(t, err)
}

func TestAccountService_GetProfile_NotRegistered(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		Get(ctx, "user-1").
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, "user-1")
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileRequired)
}

func TestAccountService_RegisterVendor_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	certificate := strings.NewReader("pdf-bytes")

	fx.identity.EXPECT().
		CreateAccount(ctx, "vendor@example.com", "s3cret-pass").
		Return("vendor-uid", nil)
	fx.storage.EXPECT().
		Upload(ctx, service.FolderCompanyCertificates, "certificate.pdf", "application/pdf", certificate).
		Return("https://cdn.example.com/certificate.pdf", nil)

	fx.registrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VendorRegistration")).
		Run(func(ctx context.Context, registration *entity.VendorRegistration) {
			assert.Equal(t, "vendor-uid", registration.UID)
			assert.Equal(t, "Green Valley", registration.CompanyName)
			assert.Equal(t, "https://cdn.example.com/certificate.pdf", registration.CertificateURL)
			assert.Empty(t, registration.ISOURL)
			assert.Equal(t, entity.RegistrationStatusPending, registration.Status)
		}).
		Return(nil)
	fx.productRepo.EXPECT().
		CreateCompany(ctx, "vendor-uid", mock.AnythingOfType("*entity.Company")).
		Run(func(ctx context.Context, companyID string, company *entity.Company) {
			assert.Equal(t, "Green Valley", company.CompanyName)
			assert.Equal(t, "vendor@example.com", company.Email)
		}).
		Return(nil)

	out, err := fx.service.RegisterVendor(ctx, &usecase.RegisterVendorInput{
		Email:            "vendor@example.com",
		Password:         "s3cret-pass",
		RegistrationType: "company",
		CompanyName:      "Green Valley",
		Certificate: &usecase.FileUpload{
			Filename:    "certificate.pdf",
			ContentType: "application/pdf",
			Body:        certificate,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "vendor-uid", out.UID)
	assert.Equal(t, entity.RegistrationStatusPending, out.Status)
}

func TestAccountService_RegisterVendor_AccountCreationFails(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.identity.EXPECT().
		CreateAccount(ctx, "vendor@example.com", "s3cret-pass").
		Return("", errors.New("email already in use"))

	out, err := fx.service.RegisterVendor(ctx, &usecase.RegisterVendorInput{
		Email:       "vendor@example.com",
		Password:    "s3cret-pass",
		CompanyName: "Green Valley",
	})
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "failed to create vendor account")
}

func TestAccountService_RegisterVendor_UploadFails(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	certificate := strings.NewReader("pdf-bytes")

	fx.identity.EXPECT().
		CreateAccount(ctx, "vendor@example.com", "s3cret-pass").
		Return("vendor-uid", nil)
	fx.storage.EXPECT().
		Upload(ctx, service.FolderCompanyCertificates, "certificate.pdf", "application/pdf", certificate).
		Return("", errors.New("bucket unavailable"))

	out, err := fx.service.RegisterVendor(ctx, &usecase.RegisterVendorInput{
		Email:       "vendor@example.com",
		Password:    "s3cret-pass",
		CompanyName: "Green Valley",
		Certificate: &usecase.FileUpload{
			Filename:    "certificate.pdf",
			ContentType: "application/pdf",
			Body:        certificate,
		},
	})
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "failed to upload certificate")
}

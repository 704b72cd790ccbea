package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() DeliveryAddress {
	return DeliveryAddress{
		Name:    "Asha Varma",
		Phone:   "9876543210",
		Street:  "12 Market Lane",
		City:    "Kochi",
		State:   "Kerala",
		Pincode: "682001",
	}
}

func TestDeliveryAddress_Validate_Accepts(t *testing.T) {
	addr := validAddress()
	require.NoError(t, addr.Validate())

	addr.AltPhone = "9123456780"
	require.NoError(t, addr.Validate())
}

func TestDeliveryAddress_Validate_Phone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		ok    bool
	}{
		{name: "exactly ten digits", phone: "0123456789", ok: true},
		{name: "nine digits", phone: "012345678", ok: false},
		{name: "eleven digits", phone: "01234567890", ok: false},
		{name: "letters", phone: "98765abc10", ok: false},
		{name: "with separator", phone: "98765-4321", ok: false},
		{name: "empty", phone: "", ok: false},
		{name: "unicode digits", phone: "٩٨٧٦٥٤٣٢١٠", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			addr.Phone = tt.phone
			err := addr.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDeliveryAddress_Validate_AltPhoneOptional(t *testing.T) {
	addr := validAddress()
	addr.AltPhone = ""
	assert.NoError(t, addr.Validate())

	addr.AltPhone = "12345"
	assert.Error(t, addr.Validate())
}

func TestDeliveryAddress_Validate_Pincode(t *testing.T) {
	tests := []struct {
		name    string
		pincode string
		ok      bool
	}{
		{name: "exactly six digits", pincode: "560001", ok: true},
		{name: "five digits", pincode: "56000", ok: false},
		{name: "seven digits", pincode: "5600012", ok: false},
		{name: "letters", pincode: "56OO01", ok: false},
		{name: "empty", pincode: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			addr.Pincode = tt.pincode
			err := addr.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDeliveryAddress_Validate_RequiredFields(t *testing.T) {
	for _, field := range []string{"name", "street", "city", "state"} {
		t.Run(field, func(t *testing.T) {
			addr := validAddress()
			switch field {
			case "name":
				addr.Name = ""
			case "street":
				addr.Street = ""
			case "city":
				addr.City = ""
			case "state":
				addr.State = ""
			}
			assert.Error(t, addr.Validate())
		})
	}
}

func TestDeliveryAddress_Validate_FirstFailingRuleWins(t *testing.T) {
	addr := validAddress()
	addr.Name = ""
	addr.Phone = "bad"

	err := addr.Validate()
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())
}

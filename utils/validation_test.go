package utils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anjaleena-mwt/reciperealm/models"
)

func TestValidatePhoneNumber(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"+14155551234", true},
		{"4155551234", true},
		{"1234567", true},
		{"123456789012345", true},
		{"abc", false},
		{"123", false},
		{"+1234567890123456", false},
		{"", false},
		{"+", false},
		{"415-555-1234", false},
		{"+14 155551234", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.valid, ValidatePhoneNumber(tc.phone), "phone %q", tc.phone)
	}
}

func TestValidateImageExtension(t *testing.T) {
	cases := []struct {
		filename string
		ext      string
		valid    bool
	}{
		{"photo.jpg", ".jpg", true},
		{"photo.jpeg", ".jpeg", true},
		{"photo.png", ".png", true},
		{"photo.gif", ".gif", true},
		{"photo.webp", ".webp", true},
		{"photo.PNG", ".png", true},
		{"photo.JPG", ".jpg", true},
		{"photo.exe", ".exe", false},
		{"photo.pdf", ".pdf", false},
		{"photo", "", false},
		{"archive.tar.gz", ".gz", false},
	}

	for _, tc := range cases {
		ext, valid := ValidateImageExtension(tc.filename)
		require.Equal(t, tc.valid, valid, "filename %q", tc.filename)
		require.Equal(t, tc.ext, ext, "filename %q", tc.filename)
	}
}

func TestValidateRegistration(t *testing.T) {
	valid := models.RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
		Address:         "1 Test Lane",
		PhoneNumber:     "+14155551234",
	}

	require.Empty(t, ValidateRegistration(&valid))

	mismatch := valid
	mismatch.ConfirmPassword = "other"
	require.Equal(t, "Passwords do not match", ValidateRegistration(&mismatch))

	badPhone := valid
	badPhone.PhoneNumber = "abc"
	require.Equal(t, "Invalid phone number", ValidateRegistration(&badPhone))

	// Fixed check order: a request failing both checks reports the
	// password mismatch first.
	both := valid
	both.ConfirmPassword = "other"
	both.PhoneNumber = "abc"
	require.Equal(t, "Passwords do not match", ValidateRegistration(&both))
}

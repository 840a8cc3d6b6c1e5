package utils

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/anjaleena-mwt/reciperealm/models"
)

var (
	// PhoneRegex accepts an optional leading + followed by 7 to 15 digits.
	PhoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)

	// ValidImageExtensions contains valid image file extensions
	ValidImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)

// ValidatePhoneNumber checks the phone number format.
func ValidatePhoneNumber(phone string) bool {
	return PhoneRegex.MatchString(phone)
}

// ValidateRegistration runs the field checks of a registration request in
// fixed order and returns the first failure message, or "" when the fields
// are valid. The duplicate-identity check against the store runs before
// this in the handler.
func ValidateRegistration(req *models.RegisterRequest) string {
	if req.Password != req.ConfirmPassword {
		return "Passwords do not match"
	}
	if !ValidatePhoneNumber(req.PhoneNumber) {
		return "Invalid phone number"
	}
	return ""
}

// ValidateImageExtension extracts the filename's extension, lower-cases it
// and checks it against the allow-list. Extension only, no content
// sniffing.
func ValidateImageExtension(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, valid := range ValidImageExtensions {
		if ext == valid {
			return ext, true
		}
	}
	return ext, false
}

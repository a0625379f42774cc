package locale

import "smarttour/pkg/sanitizer"

// InferCountryFromPhone maps a phone number to a known country, or nil.
func InferCountryFromPhone(phone string) *Country {
	normalized := sanitizer.NormalizePhone(phone)
	if normalized == "" {
		return nil
	}

	country, ok := Countries[sanitizer.PhoneRegion(normalized)]
	if !ok {
		return nil
	}
	return &country
}

// InferNationalityFromPhone returns the demonym for the phone's country, or "".
func InferNationalityFromPhone(phone string) string {
	if c := InferCountryFromPhone(phone); c != nil {
		return c.Nationality
	}
	return ""
}

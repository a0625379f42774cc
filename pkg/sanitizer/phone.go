package sanitizer

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Local numbers without a country code are tried against these regions in order.
var supportedRegions = []string{
	"JO",
	"US",
	"GB",
}

var rePhoneChars = regexp.MustCompile(`^\+?[0-9\s().\-]+$`)

// NormalizePhone returns the E.164 form of phone, or "" when it is not a
// plausible number in any supported region.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" || !rePhoneChars.MatchString(phone) {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err != nil {
			continue
		}
		if phonenumbers.IsPossibleNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return ""
}

// PhoneRegion returns the ISO 3166-1 region of an E.164 number, or "".
func PhoneRegion(e164 string) string {
	parsed, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(parsed)
}

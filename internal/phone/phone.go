// Package phone wraps the libphonenumber port with the small surface
// this service needs: parse a raw string (with or without a default
// region) and derive formats, validity, and classification in one pass.
//
// The package is purely mechanical. Policy decisions, like when a
// country hint is required, belong to the service layer.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Details holds everything the API derives from a single parsed number.
// Constructed fresh per request and never mutated afterwards.
type Details struct {
	// International is the human-readable international format,
	// e.g. "+1 415-555-2671".
	International string

	// E164 is the canonical "+<countrycode><number>" form.
	E164 string

	// National is the region-local display format,
	// e.g. "(415) 555-2671".
	National string

	// Region is the ISO 3166-1 alpha-2 code the number belongs to.
	// May be empty or the non-geographic "001" for numbers like
	// universal toll-free.
	Region string

	// Type is the numbering plan classification (MOBILE, FIXED_LINE, ...).
	Type string

	// Valid reports whether the number matches an assigned numbering
	// plan, not just a plausible shape.
	Valid bool

	// Possible reports whether the number has a correct length/shape for
	// its region regardless of assignment.
	Possible bool

	// Timezones lists the IANA timezones the number's prefix maps to.
	// Empty when the dataset has no answer.
	Timezones []string
}

// typeNames maps libphonenumber classifications onto the API's stable
// enum strings.
var typeNames = map[phonenumbers.PhoneNumberType]string{
	phonenumbers.FIXED_LINE:           "FIXED_LINE",
	phonenumbers.MOBILE:               "MOBILE",
	phonenumbers.FIXED_LINE_OR_MOBILE: "FIXED_LINE_OR_MOBILE",
	phonenumbers.TOLL_FREE:            "TOLL_FREE",
	phonenumbers.PREMIUM_RATE:         "PREMIUM_RATE",
	phonenumbers.SHARED_COST:          "SHARED_COST",
	phonenumbers.VOIP:                 "VOIP",
	phonenumbers.PERSONAL_NUMBER:      "PERSONAL_NUMBER",
	phonenumbers.PAGER:                "PAGER",
	phonenumbers.UAN:                  "UAN",
	phonenumbers.VOICEMAIL:            "VOICEMAIL",
	phonenumbers.UNKNOWN:              "UNKNOWN",
}

// TypeName returns the enum string for a libphonenumber classification.
func TypeName(t phonenumbers.PhoneNumberType) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Parse parses raw using region as the default when raw lacks an
// international prefix, then derives all Details fields.
//
// region may be empty, in which case raw must carry a leading "+"
// (international-only parsing); phonenumbers returns an error otherwise.
func Parse(raw, region string) (*Details, error) {
	num, err := phonenumbers.Parse(raw, strings.ToUpper(region))
	if err != nil {
		return nil, err
	}

	d := &Details{
		International: phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		E164:          phonenumbers.Format(num, phonenumbers.E164),
		National:      phonenumbers.Format(num, phonenumbers.NATIONAL),
		Region:        phonenumbers.GetRegionCodeForNumber(num),
		Type:          TypeName(phonenumbers.GetNumberType(num)),
		Valid:         phonenumbers.IsValidNumber(num),
		Possible:      phonenumbers.IsPossibleNumber(num),
	}

	// Timezone data is best effort: an unknown prefix simply leaves the
	// field empty. The library reports unknown prefixes as "Etc/Unknown",
	// which is noise to API clients.
	if zones, err := phonenumbers.GetTimezonesForNumber(num); err == nil {
		for _, z := range zones {
			if z != "Etc/Unknown" {
				d.Timezones = append(d.Timezones, z)
			}
		}
	}

	return d, nil
}

// ParseStrict parses raw with no default region: the input must start
// with "+" and a country calling code.
func ParseStrict(raw string) (*Details, error) {
	return Parse(raw, "")
}

// Package schema builds validated, immutable command schemas from plain
// descriptor values. This file contains the platform locale vocabulary and
// localization table validation.
package schema

import (
	"fmt"
	"unicode/utf8"

	"slashkit/pkg/slashtypes"
)

// knownLocales is the platform's locale-code vocabulary. Localization table
// keys must come from this set.
var knownLocales = map[string]struct{}{
	"id":     {},
	"da":     {},
	"de":     {},
	"en-GB":  {},
	"en-US":  {},
	"es-ES":  {},
	"es-419": {},
	"fr":     {},
	"hr":     {},
	"it":     {},
	"lt":     {},
	"hu":     {},
	"nl":     {},
	"no":     {},
	"pl":     {},
	"pt-BR":  {},
	"ro":     {},
	"fi":     {},
	"sv-SE":  {},
	"vi":     {},
	"tr":     {},
	"cs":     {},
	"el":     {},
	"bg":     {},
	"ru":     {},
	"uk":     {},
	"hi":     {},
	"th":     {},
	"zh-CN":  {},
	"ja":     {},
	"zh-TW":  {},
	"ko":     {},
}

// KnownLocale reports whether code belongs to the platform locale vocabulary.
func KnownLocale(code string) bool {
	_, ok := knownLocales[code]
	return ok
}

// ValidateLocalizations validates a locale→string mapping, rejecting unknown
// locale codes, empty strings, and strings longer than maxLen. An empty or
// nil mapping is valid and yields a nil table (no localized variants).
func ValidateLocalizations(entries map[string]string, maxLen int, path string) (slashtypes.LocalizationTable, []slashtypes.SchemaError) {
	if len(entries) == 0 {
		return nil, nil
	}

	var errs []slashtypes.SchemaError
	table := make(slashtypes.LocalizationTable, len(entries))
	for code, value := range entries {
		switch {
		case !KnownLocale(code):
			errs = append(errs, slashtypes.SchemaError{
				Kind:   slashtypes.ErrLocalizationKeyInvalid,
				Path:   path,
				Detail: fmt.Sprintf("unknown locale code %q", code),
			})
		case value == "":
			errs = append(errs, slashtypes.SchemaError{
				Kind:   slashtypes.ErrLocalizationKeyInvalid,
				Path:   path,
				Detail: fmt.Sprintf("empty string for locale %q", code),
			})
		case utf8.RuneCountInString(value) > maxLen:
			errs = append(errs, slashtypes.SchemaError{
				Kind:   slashtypes.ErrLocalizationKeyInvalid,
				Path:   path,
				Detail: fmt.Sprintf("string for locale %q exceeds %d characters", code, maxLen),
			})
		default:
			table[code] = value
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return table, nil
}

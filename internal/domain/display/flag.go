package display

import "strings"

// regionalIndicatorOffset shifts 'A' (0x41) to REGIONAL INDICATOR SYMBOL LETTER A (0x1F1E6)
const regionalIndicatorOffset = 0x1F1E6 - 'A'

// Flag turns a two letter ISO country code into its flag emoji. Input is not validated.
func Flag(countryCode string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(countryCode) {
		b.WriteRune(r + regionalIndicatorOffset)
	}
	return b.String()
}

// DisplayName is the place name followed by its flag.
func DisplayName(name string, countryCode string) string {
	return name + " " + Flag(countryCode)
}

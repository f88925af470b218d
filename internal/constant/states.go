package constant

// StateAbbrs lists the selectable US state codes. The empty entry
// means "national" and is omitted from backend query strings.
var StateAbbrs = []string{
	"", "AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

func IsStateAbbr(abbr string) bool {
	for _, s := range StateAbbrs {
		if s == abbr {
			return true
		}
	}
	return false
}

package locale

type Country struct {
	Code        string // ISO 3166-1 alpha-2 code, e.g. "JO"
	Name        string
	Nationality string // demonym shown on the guest form
	CallingCode string // e.g. "+962"
	Timezone    string // IANA zone
}

var Countries = map[string]Country{
	"JO": {
		Code:        "JO",
		Name:        "Jordan",
		Nationality: "Jordanian",
		CallingCode: "+962",
		Timezone:    "Asia/Amman",
	},
	"US": {
		Code:        "US",
		Name:        "United States",
		Nationality: "American",
		CallingCode: "+1",
		Timezone:    "America/New_York",
	},
	"GB": {
		Code:        "GB",
		Name:        "United Kingdom",
		Nationality: "British",
		CallingCode: "+44",
		Timezone:    "Europe/London",
	},
}

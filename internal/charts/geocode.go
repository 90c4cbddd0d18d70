package charts

// iso3ByCountry maps production-country names as they appear in the
// catalog to ISO 3166-1 alpha-3 codes for the choropleth. Names absent
// here are reported in the chart's notice rather than dropped silently.
var iso3ByCountry = map[string]string{
	"Argentina":            "ARG",
	"Australia":            "AUS",
	"Austria":              "AUT",
	"Bangladesh":           "BGD",
	"Belgium":              "BEL",
	"Brazil":               "BRA",
	"Bulgaria":             "BGR",
	"Cambodia":             "KHM",
	"Canada":               "CAN",
	"Chile":                "CHL",
	"China":                "CHN",
	"Colombia":             "COL",
	"Croatia":              "HRV",
	"Czech Republic":       "CZE",
	"Denmark":              "DNK",
	"Egypt":                "EGY",
	"Finland":              "FIN",
	"France":               "FRA",
	"Germany":              "DEU",
	"Ghana":                "GHA",
	"Greece":               "GRC",
	"Hong Kong":            "HKG",
	"Hungary":              "HUN",
	"Iceland":              "ISL",
	"India":                "IND",
	"Indonesia":            "IDN",
	"Ireland":              "IRL",
	"Israel":               "ISR",
	"Italy":                "ITA",
	"Japan":                "JPN",
	"Jordan":               "JOR",
	"Kenya":                "KEN",
	"Kuwait":               "KWT",
	"Lebanon":              "LBN",
	"Luxembourg":           "LUX",
	"Malaysia":             "MYS",
	"Mauritius":            "MUS",
	"Mexico":               "MEX",
	"Morocco":              "MAR",
	"Netherlands":          "NLD",
	"New Zealand":          "NZL",
	"Nigeria":              "NGA",
	"Norway":               "NOR",
	"Pakistan":             "PAK",
	"Peru":                 "PER",
	"Philippines":          "PHL",
	"Poland":               "POL",
	"Portugal":             "PRT",
	"Qatar":                "QAT",
	"Romania":              "ROU",
	"Russia":               "RUS",
	"Saudi Arabia":         "SAU",
	"Senegal":              "SEN",
	"Serbia":               "SRB",
	"Singapore":            "SGP",
	"South Africa":         "ZAF",
	"South Korea":          "KOR",
	"Spain":                "ESP",
	"Sweden":               "SWE",
	"Switzerland":          "CHE",
	"Taiwan":               "TWN",
	"Thailand":             "THA",
	"Turkey":               "TUR",
	"Ukraine":              "UKR",
	"United Arab Emirates": "ARE",
	"United Kingdom":       "GBR",
	"United States":        "USA",
	"Uruguay":              "URY",
	"Venezuela":            "VEN",
	"Vietnam":              "VNM",
	"West Germany":         "DEU",
	"Zimbabwe":             "ZWE",
}

// geocode returns the ISO-3 code for a country name.
func geocode(country string) (string, bool) {
	code, ok := iso3ByCountry[country]
	return code, ok
}

package inputs

import "github.com/goliatone/go-formbuilder/pkg/model"

// CountryChoices returns the built-in country list, ISO 3166-1 alpha-2
// codes as values. Callers wanting localised names should supply their own
// collection instead.
func CountryChoices() []model.Choice {
	out := make([]model.Choice, 0, len(countries))
	for _, c := range countries {
		out = append(out, model.Choice{Label: c.name, Value: c.code})
	}
	return out
}

// TimeZoneChoices returns the built-in IANA time zone list.
func TimeZoneChoices() []model.Choice {
	out := make([]model.Choice, 0, len(timeZones))
	for _, zone := range timeZones {
		out = append(out, model.Choice{Label: zone, Value: zone})
	}
	return out
}

var countries = []struct{ name, code string }{
	{"Afghanistan", "AF"},
	{"Albania", "AL"},
	{"Algeria", "DZ"},
	{"Andorra", "AD"},
	{"Angola", "AO"},
	{"Antigua and Barbuda", "AG"},
	{"Argentina", "AR"},
	{"Armenia", "AM"},
	{"Australia", "AU"},
	{"Austria", "AT"},
	{"Azerbaijan", "AZ"},
	{"Bahamas", "BS"},
	{"Bahrain", "BH"},
	{"Bangladesh", "BD"},
	{"Barbados", "BB"},
	{"Belarus", "BY"},
	{"Belgium", "BE"},
	{"Belize", "BZ"},
	{"Benin", "BJ"},
	{"Bhutan", "BT"},
	{"Bolivia", "BO"},
	{"Bosnia and Herzegovina", "BA"},
	{"Botswana", "BW"},
	{"Brazil", "BR"},
	{"Brunei Darussalam", "BN"},
	{"Bulgaria", "BG"},
	{"Burkina Faso", "BF"},
	{"Burundi", "BI"},
	{"Cabo Verde", "CV"},
	{"Cambodia", "KH"},
	{"Cameroon", "CM"},
	{"Canada", "CA"},
	{"Central African Republic", "CF"},
	{"Chad", "TD"},
	{"Chile", "CL"},
	{"China", "CN"},
	{"Colombia", "CO"},
	{"Comoros", "KM"},
	{"Congo", "CG"},
	{"Congo, Democratic Republic of the", "CD"},
	{"Costa Rica", "CR"},
	{"Croatia", "HR"},
	{"Cuba", "CU"},
	{"Cyprus", "CY"},
	{"Czechia", "CZ"},
	{"Côte d'Ivoire", "CI"},
	{"Denmark", "DK"},
	{"Djibouti", "DJ"},
	{"Dominica", "DM"},
	{"Dominican Republic", "DO"},
	{"Ecuador", "EC"},
	{"Egypt", "EG"},
	{"El Salvador", "SV"},
	{"Equatorial Guinea", "GQ"},
	{"Eritrea", "ER"},
	{"Estonia", "EE"},
	{"Eswatini", "SZ"},
	{"Ethiopia", "ET"},
	{"Fiji", "FJ"},
	{"Finland", "FI"},
	{"France", "FR"},
	{"Gabon", "GA"},
	{"Gambia", "GM"},
	{"Georgia", "GE"},
	{"Germany", "DE"},
	{"Ghana", "GH"},
	{"Greece", "GR"},
	{"Grenada", "GD"},
	{"Guatemala", "GT"},
	{"Guinea", "GN"},
	{"Guinea-Bissau", "GW"},
	{"Guyana", "GY"},
	{"Haiti", "HT"},
	{"Honduras", "HN"},
	{"Hungary", "HU"},
	{"Iceland", "IS"},
	{"India", "IN"},
	{"Indonesia", "ID"},
	{"Iran", "IR"},
	{"Iraq", "IQ"},
	{"Ireland", "IE"},
	{"Israel", "IL"},
	{"Italy", "IT"},
	{"Jamaica", "JM"},
	{"Japan", "JP"},
	{"Jordan", "JO"},
	{"Kazakhstan", "KZ"},
	{"Kenya", "KE"},
	{"Kiribati", "KI"},
	{"Korea, Democratic People's Republic of", "KP"},
	{"Korea, Republic of", "KR"},
	{"Kuwait", "KW"},
	{"Kyrgyzstan", "KG"},
	{"Lao People's Democratic Republic", "LA"},
	{"Latvia", "LV"},
	{"Lebanon", "LB"},
	{"Lesotho", "LS"},
	{"Liberia", "LR"},
	{"Libya", "LY"},
	{"Liechtenstein", "LI"},
	{"Lithuania", "LT"},
	{"Luxembourg", "LU"},
	{"Madagascar", "MG"},
	{"Malawi", "MW"},
	{"Malaysia", "MY"},
	{"Maldives", "MV"},
	{"Mali", "ML"},
	{"Malta", "MT"},
	{"Marshall Islands", "MH"},
	{"Mauritania", "MR"},
	{"Mauritius", "MU"},
	{"Mexico", "MX"},
	{"Micronesia", "FM"},
	{"Moldova", "MD"},
	{"Monaco", "MC"},
	{"Mongolia", "MN"},
	{"Montenegro", "ME"},
	{"Morocco", "MA"},
	{"Mozambique", "MZ"},
	{"Myanmar", "MM"},
	{"Namibia", "NA"},
	{"Nauru", "NR"},
	{"Nepal", "NP"},
	{"Netherlands", "NL"},
	{"New Zealand", "NZ"},
	{"Nicaragua", "NI"},
	{"Niger", "NE"},
	{"Nigeria", "NG"},
	{"North Macedonia", "MK"},
	{"Norway", "NO"},
	{"Oman", "OM"},
	{"Pakistan", "PK"},
	{"Palau", "PW"},
	{"Panama", "PA"},
	{"Papua New Guinea", "PG"},
	{"Paraguay", "PY"},
	{"Peru", "PE"},
	{"Philippines", "PH"},
	{"Poland", "PL"},
	{"Portugal", "PT"},
	{"Qatar", "QA"},
	{"Romania", "RO"},
	{"Russian Federation", "RU"},
	{"Rwanda", "RW"},
	{"Saint Kitts and Nevis", "KN"},
	{"Saint Lucia", "LC"},
	{"Saint Vincent and the Grenadines", "VC"},
	{"Samoa", "WS"},
	{"San Marino", "SM"},
	{"Sao Tome and Principe", "ST"},
	{"Saudi Arabia", "SA"},
	{"Senegal", "SN"},
	{"Serbia", "RS"},
	{"Seychelles", "SC"},
	{"Sierra Leone", "SL"},
	{"Singapore", "SG"},
	{"Slovakia", "SK"},
	{"Slovenia", "SI"},
	{"Solomon Islands", "SB"},
	{"Somalia", "SO"},
	{"South Africa", "ZA"},
	{"South Sudan", "SS"},
	{"Spain", "ES"},
	{"Sri Lanka", "LK"},
	{"Sudan", "SD"},
	{"Suriname", "SR"},
	{"Sweden", "SE"},
	{"Switzerland", "CH"},
	{"Syrian Arab Republic", "SY"},
	{"Taiwan", "TW"},
	{"Tajikistan", "TJ"},
	{"Tanzania", "TZ"},
	{"Thailand", "TH"},
	{"Timor-Leste", "TL"},
	{"Togo", "TG"},
	{"Tonga", "TO"},
	{"Trinidad and Tobago", "TT"},
	{"Tunisia", "TN"},
	{"Turkmenistan", "TM"},
	{"Tuvalu", "TV"},
	{"Türkiye", "TR"},
	{"Uganda", "UG"},
	{"Ukraine", "UA"},
	{"United Arab Emirates", "AE"},
	{"United Kingdom", "GB"},
	{"United States", "US"},
	{"Uruguay", "UY"},
	{"Uzbekistan", "UZ"},
	{"Vanuatu", "VU"},
	{"Venezuela", "VE"},
	{"Viet Nam", "VN"},
	{"Yemen", "YE"},
	{"Zambia", "ZM"},
	{"Zimbabwe", "ZW"},
}

var timeZones = []string{
	"Pacific/Midway",
	"Pacific/Honolulu",
	"America/Anchorage",
	"America/Los_Angeles",
	"America/Tijuana",
	"America/Phoenix",
	"America/Denver",
	"America/Chihuahua",
	"America/Chicago",
	"America/Mexico_City",
	"America/Regina",
	"America/Guatemala",
	"America/New_York",
	"America/Indiana/Indianapolis",
	"America/Bogota",
	"America/Lima",
	"America/Halifax",
	"America/Caracas",
	"America/La_Paz",
	"America/Santiago",
	"America/St_Johns",
	"America/Sao_Paulo",
	"America/Argentina/Buenos_Aires",
	"America/Montevideo",
	"America/Godthab",
	"Atlantic/South_Georgia",
	"Atlantic/Azores",
	"Atlantic/Cape_Verde",
	"Europe/London",
	"Europe/Dublin",
	"Europe/Lisbon",
	"Africa/Casablanca",
	"Africa/Monrovia",
	"Europe/Amsterdam",
	"Europe/Belgrade",
	"Europe/Berlin",
	"Europe/Brussels",
	"Europe/Budapest",
	"Europe/Copenhagen",
	"Europe/Madrid",
	"Europe/Paris",
	"Europe/Prague",
	"Europe/Rome",
	"Europe/Stockholm",
	"Europe/Vienna",
	"Europe/Warsaw",
	"Europe/Zurich",
	"Africa/Algiers",
	"Africa/Lagos",
	"Europe/Athens",
	"Europe/Bucharest",
	"Europe/Helsinki",
	"Europe/Kyiv",
	"Europe/Riga",
	"Europe/Sofia",
	"Europe/Tallinn",
	"Europe/Vilnius",
	"Africa/Cairo",
	"Africa/Johannesburg",
	"Asia/Jerusalem",
	"Europe/Istanbul",
	"Europe/Moscow",
	"Europe/Minsk",
	"Africa/Nairobi",
	"Asia/Baghdad",
	"Asia/Kuwait",
	"Asia/Riyadh",
	"Asia/Tehran",
	"Asia/Baku",
	"Asia/Dubai",
	"Asia/Muscat",
	"Asia/Tbilisi",
	"Asia/Yerevan",
	"Asia/Kabul",
	"Asia/Karachi",
	"Asia/Tashkent",
	"Asia/Kolkata",
	"Asia/Colombo",
	"Asia/Kathmandu",
	"Asia/Almaty",
	"Asia/Dhaka",
	"Asia/Yekaterinburg",
	"Asia/Rangoon",
	"Asia/Bangkok",
	"Asia/Jakarta",
	"Asia/Novosibirsk",
	"Asia/Hong_Kong",
	"Asia/Krasnoyarsk",
	"Asia/Kuala_Lumpur",
	"Asia/Shanghai",
	"Asia/Singapore",
	"Asia/Taipei",
	"Australia/Perth",
	"Asia/Irkutsk",
	"Asia/Seoul",
	"Asia/Tokyo",
	"Asia/Yakutsk",
	"Australia/Adelaide",
	"Australia/Darwin",
	"Australia/Brisbane",
	"Australia/Melbourne",
	"Australia/Sydney",
	"Australia/Hobart",
	"Pacific/Guam",
	"Pacific/Port_Moresby",
	"Asia/Vladivostok",
	"Asia/Magadan",
	"Pacific/Guadalcanal",
	"Pacific/Noumea",
	"Pacific/Auckland",
	"Pacific/Fiji",
	"Asia/Kamchatka",
	"Pacific/Majuro",
	"Pacific/Chatham",
	"Pacific/Tongatapu",
	"Pacific/Apia",
	"Pacific/Fakaofo",
}

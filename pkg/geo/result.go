package geo

// Record is the provider independent geolocation of an IP address.
// Fields the provider did not return are left empty.
type Record struct {
	IP          string
	Country     string
	CountryCode string
	Region      string
	City        string
	ISP         string
	ASN         string
	Timezone    string
	Latitude    *float64
	Longitude   *float64
	Provider    string
}

// Raw is the JSON object as decoded from the provider response.
type Raw map[string]any

package summary

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/qdm12/ipconvert/pkg/geo"
)

const (
	defaultIPWidth    = 12
	asnWidth          = 20
	ispWidth          = 30
	countryWidth      = 20
	regionCityWidth   = 25
	timezoneWidth     = 20
	countryMaxLength  = 16
	regionMaxLength   = 16
	cityMaxLength     = 8
	columnsSeparation = "  "
)

type row struct {
	ip         string
	asn        string
	isp        string
	country    string
	regionCity string
	timezone   string
	// errMessage is set when the geolocation failed.
	errMessage string
}

func newRow(record geo.Record) row {
	return row{
		ip:         record.IP,
		asn:        truncate(record.ASN, asnWidth),
		isp:        truncate(record.ISP, ispWidth),
		country:    truncate(record.Country, countryMaxLength) + " (" + record.CountryCode + ")",
		regionCity: truncate(record.Region, regionMaxLength) + "/" + truncate(record.City, cityMaxLength),
		timezone:   truncate(record.Timezone, timezoneWidth),
	}
}

func writeTable(w io.Writer, rows []row) {
	ipWidth := 0
	for _, row := range rows {
		ipWidth = max(ipWidth, utf8.RuneCountInString(row.ip))
	}
	if ipWidth == 0 {
		ipWidth = defaultIPWidth
	}

	header := strings.Join([]string{
		pad("IP", ipWidth),
		pad("ASN", asnWidth),
		pad("ISP", ispWidth),
		pad("Country (Code)", countryWidth),
		pad("Region/City", regionCityWidth),
		pad("TZ", timezoneWidth),
	}, columnsSeparation)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(header)))

	for _, row := range rows {
		if row.errMessage != "" {
			fmt.Fprintln(w, pad(row.ip, ipWidth)+columnsSeparation+"(error) "+row.errMessage)
			continue
		}
		fmt.Fprintln(w, strings.Join([]string{
			pad(row.ip, ipWidth),
			pad(row.asn, asnWidth),
			pad(row.isp, ispWidth),
			pad(row.country, countryWidth),
			pad(row.regionCity, regionCityWidth),
			pad(row.timezone, timezoneWidth),
		}, columnsSeparation))
	}
}

// pad right pads s with spaces up to width runes.
// Longer strings are left untouched.
func pad(s string, width int) string {
	length := utf8.RuneCountInString(s)
	if length >= width {
		return s
	}
	return s + strings.Repeat(" ", width-length)
}

func truncate(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	return string([]rune(s)[:maxRunes])
}

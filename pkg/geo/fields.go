package geo

import (
	"encoding/json"
	"strconv"
	"strings"
)

type field uint8

const (
	fieldIP field = iota
	fieldCountry
	fieldCountryCode
	fieldRegion
	fieldCity
	fieldISP
	fieldASN
	fieldTimezone
	fieldLatitude
	fieldLongitude
)

// fieldKeys maps each provider to the keys holding each record field
// in its JSON response, in order of preference.
var fieldKeys = map[Provider]map[field][]string{ //nolint:gochecknoglobals
	IPAPI: {
		fieldIP:          {"query"},
		fieldCountry:     {"country"},
		fieldCountryCode: {"countryCode"},
		fieldRegion:      {"regionName", "region"},
		fieldCity:        {"city"},
		fieldISP:         {"isp", "org"},
		fieldASN:         {"as"},
		fieldTimezone:    {"timezone"},
		fieldLatitude:    {"lat"},
		fieldLongitude:   {"lon"},
	},
	IPAPICo: {
		fieldIP:          {"ip"},
		fieldCountry:     {"country_name", "country"},
		fieldCountryCode: {"country_code", "country"},
		fieldRegion:      {"region"},
		fieldCity:        {"city"},
		fieldISP:         {"org"},
		fieldASN:         {"asn"},
		fieldTimezone:    {"timezone"},
		fieldLatitude:    {"latitude"},
		fieldLongitude:   {"longitude"},
	},
}

type failureRule struct {
	key         string
	value       string
	messageKeys []string
}

// failureRules describes how each provider signals it could not
// geolocate an address in an otherwise successful response.
var failureRules = map[Provider]failureRule{ //nolint:gochecknoglobals
	IPAPI: {
		key:         "status",
		value:       "fail",
		messageKeys: []string{"message"},
	},
	IPAPICo: {
		key:         "error",
		value:       "true",
		messageKeys: []string{"reason", "message"},
	},
}

const defaultFailureMessage = "Lookup failed"

// failureMessage returns the failure message reported in raw and
// true if raw matches the failure rule of the provider.
func failureMessage(provider Provider, raw Raw) (message string, failed bool) {
	rule := failureRules[provider]
	value, ok := raw[rule.key]
	if !ok || toString(value) != rule.value {
		return "", false
	}
	for _, key := range rule.messageKeys {
		message = toString(raw[key])
		if message != "" {
			return message, true
		}
	}
	return defaultFailureMessage, true
}

func normalize(provider Provider, raw Raw) (record Record) {
	keys := fieldKeys[provider]
	str := func(f field) string {
		for _, key := range keys[f] {
			s := toString(raw[key])
			if s != "" {
				return s
			}
		}
		return ""
	}
	float := func(f field) *float64 {
		for _, key := range keys[f] {
			value, ok := toFloat(raw[key])
			if ok {
				return &value
			}
		}
		return nil
	}

	return Record{
		IP:          str(fieldIP),
		Country:     str(fieldCountry),
		CountryCode: str(fieldCountryCode),
		Region:      str(fieldRegion),
		City:        str(fieldCity),
		ISP:         str(fieldISP),
		ASN:         str(fieldASN),
		Timezone:    str(fieldTimezone),
		Latitude:    float(fieldLatitude),
		Longitude:   float(fieldLongitude),
		Provider:    string(provider),
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func toFloat(value any) (f float64, ok bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

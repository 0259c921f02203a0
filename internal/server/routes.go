package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/qdm12/ipconvert/internal/service"
	"github.com/qdm12/ipconvert/pkg/geo"
)

const (
	runningMessage        = "IPv4–IPv6 Conversion API is running!"
	invalidAddressMessage = "Invalid IP address"
	maxBodySize           = 1 << 20
)

type ipRequest struct {
	IP string `json:"ip"`
}

// decodeIP returns the ip field of the JSON request body, or the
// empty string if the body cannot be decoded.
func decodeIP(w http.ResponseWriter, r *http.Request) (ip string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	var request ipRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		return ""
	}
	return request.IP
}

func (h *handlers) index(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: runningMessage})
}

func (h *handlers) validate(w http.ResponseWriter, r *http.Request) {
	ip := decodeIP(w, r)
	result := h.service.Validate(ip)
	writeJSON(w, http.StatusOK, result)
}

func (h *handlers) convert(w http.ResponseWriter, r *http.Request) {
	ip := decodeIP(w, r)
	result, err := h.service.Convert(ip)
	if err != nil {
		httpError(w, http.StatusBadRequest, invalidAddressMessage)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handlers) geolocate(w http.ResponseWriter, r *http.Request) {
	ip := decodeIP(w, r)
	result, err := h.service.Geolocate(r.Context(), ip)
	if err != nil {
		var lookupErr *geo.LookupError
		switch {
		case errors.Is(err, service.ErrInvalidAddress):
			httpError(w, http.StatusBadRequest, invalidAddressMessage)
		case errors.As(err, &lookupErr):
			httpError(w, http.StatusBadRequest, lookupErr.Message)
		default:
			httpError(w, http.StatusInternalServerError, "Request failed: "+err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}

package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type warnRecorder struct {
	messages []string
}

func (w *warnRecorder) Warn(s string) { w.messages = append(w.messages, s) }

func Test_LocalURL(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address string
		url     string
	}{
		"port only": {
			address: ":5050",
			url:     "http://127.0.0.1:5050/",
		},
		"all IPv4 interfaces": {
			address: "0.0.0.0:8000",
			url:     "http://127.0.0.1:8000/",
		},
		"all IPv6 interfaces": {
			address: "[::]:8000",
			url:     "http://127.0.0.1:8000/",
		},
		"loopback": {
			address: "127.0.0.1:9999",
			url:     "http://127.0.0.1:9999/",
		},
		"IPv6 host": {
			address: "[::1]:9999",
			url:     "http://[::1]:9999/",
		},
		"malformed": {
			address: "localhost",
			url:     "http://localhost/",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.url, LocalURL(testCase.address))
		})
	}
}

func Test_handler(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		method      string
		path        string
		healthcheck func() error
		status      int
		body        string
	}{
		"healthy": {
			method:      http.MethodGet,
			path:        "/",
			healthcheck: func() error { return nil },
			status:      http.StatusOK,
		},
		"unhealthy": {
			method:      http.MethodGet,
			path:        "/",
			healthcheck: func() error { return errTest },
			status:      http.StatusInternalServerError,
			body:        "test error\n",
		},
		"bad method": {
			method: http.MethodPost,
			path:   "/",
			status: http.StatusNotFound,
			body:   "Not Found\n",
		},
		"bad path": {
			method: http.MethodGet,
			path:   "/other",
			status: http.StatusNotFound,
			body:   "Not Found\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := newHandler(testCase.healthcheck)
			request := httptest.NewRequest(testCase.method, testCase.path, nil)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testCase.status, recorder.Code)
			assert.Equal(t, testCase.body, recorder.Body.String())
		})
	}
}

func Test_MakeIsHealthy(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"message":"running"}`))
	}))
	t.Cleanup(api.Close)
	address := strings.TrimPrefix(api.URL, "http://")

	warner := &warnRecorder{}
	isHealthy := MakeIsHealthy(api.Client(), address, warner)

	err := isHealthy()

	require.NoError(t, err)
	assert.Empty(t, warner.messages)

	api.Close()
	err = isHealthy()

	require.Error(t, err)
	require.Len(t, warner.messages, 1)
	assert.True(t, strings.HasPrefix(warner.messages[0], "unhealthy: querying API: "))
}

func Test_Client_Query(t *testing.T) {
	t.Parallel()

	var unhealthy atomic.Bool
	server := httptest.NewServer(newHandler(func() error {
		if !unhealthy.Load() {
			return nil
		}
		return errors.New("API root route status is not OK: 500")
	}))
	t.Cleanup(server.Close)
	address := strings.TrimPrefix(server.URL, "http://")

	client := NewClient()

	err := client.Query(context.Background(), address)
	require.NoError(t, err)

	unhealthy.Store(true)
	err = client.Query(context.Background(), address)
	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.EqualError(t, err, "program is unhealthy: API root route status is not OK: 500")
}

func Test_CheckHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/down" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(server.Close)

	err := CheckHTTP(context.Background(), server.Client(), server.URL+"/")
	require.NoError(t, err)

	err = CheckHTTP(context.Background(), server.Client(), server.URL+"/down")
	assert.ErrorIs(t, err, ErrHTTPStatusCodeNotOK)
	assert.EqualError(t, err, "status code is not OK: 503")
}

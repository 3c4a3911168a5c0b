package http

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovashkil/netbox-api-scripts/internal/http/mock"
	"go.uber.org/mock/gomock"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		wantBase string
		wantErr  bool
	}{
		{
			name:     "valid URL",
			baseURL:  "https://netbox.example.com",
			wantBase: "https://netbox.example.com",
		},
		{
			name:    "invalid URL",
			baseURL: "://invalid-url",
			wantErr: true,
		},
		{
			name:     "trailing slash trimmed",
			baseURL:  "https://netbox.example.com/",
			wantBase: "https://netbox.example.com",
		},
		{
			name:     "URL with path prefix",
			baseURL:  "https://example.com/netbox/",
			wantBase: "https://example.com/netbox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDoer := mock.NewMockHTTPDoer(ctrl)
			client, err := NewClient(tt.baseURL, mockDoer)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, client)
				assert.Equal(t, tt.wantBase, client.baseURL.String())
			}
		})
	}
}

func TestClient_Do(t *testing.T) {
	tests := []struct {
		name       string
		baseURL    string
		requestURL string
		expectURL  string
	}{
		{
			name:       "path joined onto base",
			baseURL:    "https://netbox.example.com",
			requestURL: "/api/dcim/sites/",
			expectURL:  "https://netbox.example.com/api/dcim/sites/",
		},
		{
			name:       "base path prefix preserved",
			baseURL:    "https://example.com/netbox",
			requestURL: "/api/dcim/sites/",
			expectURL:  "https://example.com/netbox/api/dcim/sites/",
		},
		{
			name:       "query string preserved",
			baseURL:    "https://netbox.example.com",
			requestURL: "/api/dcim/sites/?name=demo-site-1",
			expectURL:  "https://netbox.example.com/api/dcim/sites/?name=demo-site-1",
		},
		{
			name:       "absolute URL passes through",
			baseURL:    "https://netbox.example.com",
			requestURL: "https://netbox.example.com/api/dcim/sites/?limit=50&offset=50",
			expectURL:  "https://netbox.example.com/api/dcim/sites/?limit=50&offset=50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDoer := mock.NewMockHTTPDoer(ctrl)
			mockDoer.EXPECT().Do(gomock.Any()).Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("{}")),
			}, nil).Do(func(req *http.Request) {
				assert.Equal(t, tt.expectURL, req.URL.String())
			})

			client, err := NewClient(tt.baseURL, mockDoer)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodGet, tt.requestURL, nil)
			require.NoError(t, err)

			resp, err := client.Do(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}

func TestTokenClient_Do(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDoer := mock.NewMockHTTPDoer(ctrl)
	mockDoer.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("{}")),
	}, nil).Do(func(req *http.Request) {
		assert.Equal(t, "Token super-secret", req.Header.Get("Authorization"))
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
	})

	client := NewTokenClient("super-secret", mockDoer)

	req, err := http.NewRequest(http.MethodGet, "/api/dcim/sites/", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kitchcrafter/storefront/internal/domain/order"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		ServiceID:  "service_ikudrk5",
		TemplateID: "template_fmbvd15",
		PublicKey:  "pk_test",
		Timeout:    2 * time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing base url", func(c *Config) { c.BaseURL = "" }, "base URL"},
		{"missing service id", func(c *Config) { c.ServiceID = "" }, "service id"},
		{"missing template id", func(c *Config) { c.TemplateID = "" }, "template id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("https://api.emailjs.com")
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestClient_Send(t *testing.T) {
	t.Run("posts envelope and succeeds on 200", func(t *testing.T) {
		var received sendRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte("OK"))
		}))
		defer srv.Close()

		client, err := NewClient(testConfig(srv.URL), zap.NewNop())
		require.NoError(t, err)

		params := order.TemplateParams{"order_id": "KC-1-ABCDE", "order_total": "130.00"}
		require.NoError(t, client.Send(context.Background(), params))

		assert.Equal(t, "service_ikudrk5", received.ServiceID)
		assert.Equal(t, "template_fmbvd15", received.TemplateID)
		assert.Equal(t, "pk_test", received.UserID)
		assert.Equal(t, "KC-1-ABCDE", received.TemplateParams["order_id"])
	})

	t.Run("non-2xx becomes an APIError with the body detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte("The recipients address is empty"))
		}))
		defer srv.Close()

		client, err := NewClient(testConfig(srv.URL), zap.NewNop())
		require.NoError(t, err)

		err = client.Send(context.Background(), order.TemplateParams{})
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
		assert.Equal(t, "The recipients address is empty", apiErr.Detail)
	})

	t.Run("context cancellation surfaces as a plain error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("OK"))
		}))
		defer srv.Close()

		client, err := NewClient(testConfig(srv.URL), zap.NewNop())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err = client.Send(ctx, order.TemplateParams{})
		require.Error(t, err)
		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr))
	})
}

func TestNewClient_RejectsBadConfig(t *testing.T) {
	_, err := NewClient(&Config{}, zap.NewNop())
	assert.Error(t, err)
}

package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kitchcrafter/storefront/internal/domain/order"
)

// maxResponseSize bounds the error detail read from the delivery API
const maxResponseSize = 64 * 1024

// sendPath is the EmailJS transactional send endpoint
const sendPath = "/api/v1.0/email/send"

// Config holds the EmailJS connection settings
type Config struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Timeout    time.Duration
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("mail base URL is required")
	}
	if c.ServiceID == "" {
		return fmt.Errorf("mail service id is required")
	}
	if c.TemplateID == "" {
		return fmt.Errorf("mail template id is required")
	}
	return nil
}

// APIError is the structured rejection returned by the delivery API:
// an HTTP status plus the free-text detail from the response body.
type APIError struct {
	Status int
	Detail string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("delivery rejected (status %d): %s", e.Status, e.Detail)
}

// DeliveryDetail implements order.DeliveryError
func (e *APIError) DeliveryDetail() string {
	return e.Detail
}

// Client sends order notifications through the EmailJS REST API.
// It implements order.DeliverySender.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a delivery client with the given configuration
func NewClient(config *Config, log *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.Named("emailjs"),
	}, nil
}

// sendRequest is the EmailJS send payload envelope
type sendRequest struct {
	ServiceID      string               `json:"service_id"`
	TemplateID     string               `json:"template_id"`
	UserID         string               `json:"user_id"`
	TemplateParams order.TemplateParams `json:"template_params"`
}

// Send transmits the template params through the delivery service.
// A non-2xx response becomes an *APIError carrying the body text so
// the caller can classify the failure.
func (c *Client) Send(ctx context.Context, params order.TemplateParams) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.config.ServiceID,
		TemplateID:     c.config.TemplateID,
		UserID:         c.config.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode delivery request: %w", err)
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + sendPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build delivery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delivery request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	detail, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read delivery response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("delivery rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", string(detail)),
		)
		return &APIError{
			Status: resp.StatusCode,
			Detail: strings.TrimSpace(string(detail)),
		}
	}

	c.logger.Debug("delivery accepted", zap.Int("status", resp.StatusCode))
	return nil
}

package credentials

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tidbcloud/zero-mcp/pkg/apperrors"
)

// Provisioner creates disposable TiDB Cloud Zero instances. One POST
// with no request body and no retry; a failed call surfaces immediately.
type Provisioner struct {
	client *resty.Client
	url    string
}

// NewProvisioner creates a provisioner against the given endpoint.
func NewProvisioner(endpoint string, timeout time.Duration) *Provisioner {
	return &Provisioner{
		client: resty.New().SetTimeout(timeout),
		url:    endpoint,
	}
}

// provisionResponse mirrors the Zero API creation response.
type provisionResponse struct {
	Instance struct {
		Connection struct {
			Host     string `json:"host"`
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"connection"`
		ExpiresAt string `json:"expiresAt"`
	} `json:"instance"`
}

// Provision requests a new instance and returns its descriptor.
// Non-2xx responses become a ProvisioningError carrying the status
// code and raw body.
func (p *Provisioner) Provision(ctx context.Context) (Descriptor, error) {
	var body provisionResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&body).
		Post(p.url)
	if err != nil {
		return Descriptor{}, fmt.Errorf("provisioning request failed: %w", err)
	}

	if resp.IsError() {
		return Descriptor{}, &apperrors.ProvisioningError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	conn := body.Instance.Connection
	d := Descriptor{
		Host:      conn.Host,
		Username:  conn.Username,
		Password:  conn.Password,
		Database:  DefaultDatabase,
		ExpiresAt: body.Instance.ExpiresAt,
	}
	if !d.IsConfigured() {
		return Descriptor{}, &apperrors.ProvisioningError{
			StatusCode: resp.StatusCode(),
			Body:       "response missing connection credentials",
		}
	}
	return d, nil
}

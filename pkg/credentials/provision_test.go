package credentials

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidbcloud/zero-mcp/pkg/apperrors"
)

func TestProvisioner_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"instance": {
				"connection": {
					"host": "gateway01.example.com",
					"username": "zero-user",
					"password": "zero-pass"
				},
				"expiresAt": "2030-01-01T00:00:00Z"
			}
		}`))
	}))
	defer srv.Close()

	p := NewProvisioner(srv.URL, 5*time.Second)
	d, err := p.Provision(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "gateway01.example.com", d.Host)
	assert.Equal(t, "zero-user", d.Username)
	assert.Equal(t, "zero-pass", d.Password)
	assert.Equal(t, "test", d.Database)
	assert.Equal(t, "2030-01-01T00:00:00Z", d.ExpiresAt)
}

func TestProvisioner_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	p := NewProvisioner(srv.URL, 5*time.Second)
	_, err := p.Provision(context.Background())
	require.Error(t, err)

	var provErr *apperrors.ProvisioningError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusTooManyRequests, provErr.StatusCode)
	assert.Contains(t, provErr.Body, "rate limited")
}

func TestProvisioner_MissingCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"instance": {"connection": {}}}`))
	}))
	defer srv.Close()

	p := NewProvisioner(srv.URL, 5*time.Second)
	_, err := p.Provision(context.Background())

	var provErr *apperrors.ProvisioningError
	require.ErrorAs(t, err, &provErr)
}

func TestProvisioner_Unreachable(t *testing.T) {
	p := NewProvisioner("http://127.0.0.1:1", time.Second)
	_, err := p.Provision(context.Background())
	require.Error(t, err)

	var provErr *apperrors.ProvisioningError
	assert.False(t, errors.As(err, &provErr), "transport failures are not provisioning errors")
}

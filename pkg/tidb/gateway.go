package tidb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/tidbcloud/zero-mcp/pkg/apperrors"
	"github.com/tidbcloud/zero-mcp/pkg/credentials"
	"github.com/tidbcloud/zero-mcp/pkg/logging"
)

// Gateway executes statements through the TiDB Serverless HTTP SQL
// gateway: one POST per statement, Basic auth, no persistent session.
//
// Known limitation: the gateway protocol carries the statement as a
// single string and has no bind-parameter support. Callers that need
// parameter binding must use the driver backend.
type Gateway struct {
	resolver *credentials.Resolver
	client   *resty.Client
	logger   *zap.Logger

	// apiURL derives the endpoint from a descriptor; overridable in
	// tests.
	apiURL func(credentials.Descriptor) string
}

// NewGateway creates the stateless HTTP backend. No retry is
// configured: every failure surfaces immediately.
func NewGateway(resolver *credentials.Resolver, timeout time.Duration, logger *zap.Logger) *Gateway {
	return &Gateway{
		resolver: resolver,
		client:   resty.New().SetTimeout(timeout),
		logger:   logger,
		apiURL:   credentials.Descriptor.APIURL,
	}
}

// gatewayRequest is the wire request body.
type gatewayRequest struct {
	Query string `json:"query"`
}

// gatewayResponse mirrors the gateway's response JSON. Missing fields
// default to empty list / nil.
type gatewayResponse struct {
	Types         []Column   `json:"types"`
	Rows          [][]string `json:"rows"`
	RowsAffected  *int64     `json:"rowsAffected"`
	SLastInsertID string     `json:"sLastInsertID"`
}

// gatewayError is the error body shape the gateway returns when the
// statement fails.
type gatewayError struct {
	Message string `json:"message"`
}

// Execute resolves credentials, issues one POST, and normalizes the
// response.
func (g *Gateway) Execute(ctx context.Context, statement string, database string) (*Result, error) {
	desc, err := g.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	db := database
	if db == "" {
		db = desc.DatabaseOrDefault()
	}

	var body gatewayResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", desc.AuthHeader()).
		SetHeader("TiDB-Database", db).
		SetBody(gatewayRequest{Query: statement}).
		SetResult(&body).
		Post(g.apiURL(desc))
	if err != nil {
		return nil, &apperrors.ExecutionError{Message: logging.SanitizeError(err)}
	}

	if resp.IsError() {
		message := string(resp.Body())
		var gwErr gatewayError
		if jsonErr := json.Unmarshal(resp.Body(), &gwErr); jsonErr == nil && gwErr.Message != "" {
			message = gwErr.Message
		}
		return nil, &apperrors.ExecutionError{
			StatusCode: resp.StatusCode(),
			Message:    message,
		}
	}

	g.logger.Debug("gateway statement executed",
		zap.String("statement", logging.TruncateStatement(statement)),
		zap.String("database", db),
		zap.Int("rows", len(body.Rows)))

	return &Result{
		Columns:      body.Types,
		Rows:         body.Rows,
		RowsAffected: body.RowsAffected,
		LastInsertID: body.SLastInsertID,
	}, nil
}

package clients

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"
	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	sharedjwt "github.com/joshuarp/consent-bridge/internal/shared/jwt"
	sharedlog "github.com/joshuarp/consent-bridge/internal/shared/log"
)

const (
	CorrelationIDHeader = sharedlog.CorrelationIDHeader
	HIPIDHeader         = "X-HIP-ID"
	HIUIDHeader         = "X-HIU-ID"

	defaultGatewayTimeout = 10 * time.Second
)

type GatewayOptions struct {
	BaseURL string
	Timeout time.Duration
	// ClientID is the subject of the service token presented to the gateway.
	ClientID string
}

// GatewayClient sends the outbound half of every asynchronous flow. The
// gateway only acknowledges receipt; the answer arrives on a callback.
type GatewayClient struct {
	http     *client.Client
	baseURL  string
	timeout  time.Duration
	clientID string
	signer   sharedjwt.Signer
	logger   *slog.Logger
}

func NewGatewayClient(opts GatewayOptions, signer sharedjwt.Signer, logger *slog.Logger) *GatewayClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GatewayClient{
		http:     client.New(),
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		timeout:  timeout,
		clientID: opts.ClientID,
		signer:   signer,
		logger:   logger,
	}
}

func (g *GatewayClient) DiscoverCareContexts(ctx context.Context, hipID string, request vo.GatewayDiscoveryRequest) error {
	return g.post(ctx, "/v1/care-contexts/discover", HIPIDHeader, hipID, request)
}

func (g *GatewayClient) ConfirmLink(ctx context.Context, hipID string, request vo.GatewayLinkConfirmRequest) error {
	return g.post(ctx, "/v1/links/link/confirm", HIPIDHeader, hipID, request)
}

func (g *GatewayClient) RequestHealthInformation(ctx context.Context, hipID string, request vo.GatewayHealthInformationRequest) error {
	return g.post(ctx, "/v1/health-information/request", HIPIDHeader, hipID, request)
}

// RequestConsent asks the consent manager, through the gateway, to raise a
// consent request with the patient.
func (g *GatewayClient) RequestConsent(ctx context.Context, hiuID string, request vo.GatewayConsentRequest) error {
	return g.post(ctx, "/v1/consent-requests/init", HIUIDHeader, hiuID, request)
}

// post sends body to path; routeHeader names the party the gateway routes to.
func (g *GatewayClient) post(ctx context.Context, path, routeHeader, routeID string, body any) error {
	headers := map[string]string{
		fiber.HeaderContentType: fiber.MIMEApplicationJSON,
		routeHeader:             routeID,
	}
	if correlationID := sharedlog.CorrelationIDFrom(ctx); correlationID != "" {
		headers[CorrelationIDHeader] = correlationID
	}
	if g.signer != nil {
		token, err := g.signer.Sign(ctx, sharedjwt.Claims{Subject: g.clientID})
		if err != nil {
			return fmt.Errorf("%w: sign service token: %w", vo.ErrGatewayUnavailable, err)
		}
		headers[fiber.HeaderAuthorization] = "Bearer " + token
	}

	logger := sharedlog.With(ctx, g.logger).With("path", path, "route_to", routeID)

	resp, err := g.http.Post(g.baseURL+path, client.Config{
		Ctx:     ctx,
		Header:  headers,
		Body:    body,
		Timeout: g.timeout,
	})
	if err != nil {
		logger.Error("gateway request failed", "error", err)
		return fmt.Errorf("%w: %s: %w", vo.ErrGatewayUnavailable, path, err)
	}
	defer resp.Close()

	status := resp.StatusCode()
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		logger.Error("gateway rejected request", "status", status, "body", string(resp.Body()))
		return fmt.Errorf("%w: %s returned status %d", vo.ErrGatewayUnavailable, path, status)
	}

	logger.Debug("gateway accepted request", "status", status)
	return nil
}

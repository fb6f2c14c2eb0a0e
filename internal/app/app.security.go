package app

import (
	"fmt"
	"strings"

	"github.com/joshuarp/consent-bridge/internal/shared/config"
	sharedjwt "github.com/joshuarp/consent-bridge/internal/shared/jwt"
)

type tokenManagers struct {
	patient sharedjwt.Verifier
	gateway sharedjwt.Verifier
	service sharedjwt.Signer
}

// provideTokenManagers builds one manager per trust domain: patient-facing
// routes, gateway callbacks and our own outbound gateway calls.
func provideTokenManagers(cfg config.ConfigProvider) (tokenManagers, error) {
	patient, err := provideJWTTokenManager(cfg, "patient")
	if err != nil {
		return tokenManagers{}, err
	}

	gateway, err := provideJWTTokenManager(cfg, "gateway")
	if err != nil {
		return tokenManagers{}, err
	}

	service, err := provideJWTTokenManager(cfg, "service")
	if err != nil {
		return tokenManagers{}, err
	}

	return tokenManagers{patient: patient, gateway: gateway, service: service}, nil
}

func provideJWTTokenManager(cfg config.ConfigProvider, audience string) (sharedjwt.TokenManager, error) {
	prefix := "security.jwt." + audience
	manager, err := sharedjwt.NewHMAC(sharedjwt.Options{
		Secret:    []byte(cfg.GetString(prefix + ".secret")),
		Algorithm: cfg.GetString(prefix + ".algorithm"),
		Issuer:    cfg.GetString(prefix + ".issuer"),
		Audience:  splitList(cfg.GetString(prefix + ".audience")),
		TTL:       cfg.GetDuration(prefix + ".ttl"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: %s token manager: %w", audience, err)
	}
	return manager, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

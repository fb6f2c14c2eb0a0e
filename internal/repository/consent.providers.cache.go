package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/joshuarp/consent-bridge/internal/domain"
	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	"github.com/joshuarp/consent-bridge/internal/shared/cache"
)

type consentProviderSource interface {
	ProviderForConsent(ctx context.Context, consentID string) (domain.ConsentProvider, error)
}

// ConsentProviderCache reads consent providers through an in-process cache
// loaded from the store on a miss. Only granted artefacts are cached, so a
// revocation is seen at most ttl late.
type ConsentProviderCache struct {
	providers *cache.Local[domain.ConsentProvider]
}

func NewConsentProviderCache(source consentProviderSource, ttl time.Duration, maxEntries int) *ConsentProviderCache {
	return &ConsentProviderCache{
		providers: cache.NewLocal[domain.ConsentProvider](cache.LocalOptions[domain.ConsentProvider]{
			TTL:        ttl,
			MaxEntries: maxEntries,
			Loader: func(ctx context.Context, consentID string) (domain.ConsentProvider, bool, error) {
				provider, err := source.ProviderForConsent(ctx, consentID)
				if errors.Is(err, vo.ErrNotFound) {
					return domain.ConsentProvider{}, false, nil
				}
				if err != nil {
					return domain.ConsentProvider{}, false, err
				}
				return provider, true, nil
			},
		}),
	}
}

func (c *ConsentProviderCache) ProviderForConsent(ctx context.Context, consentID string) (domain.ConsentProvider, error) {
	consentID = strings.TrimSpace(consentID)
	if consentID == "" {
		return domain.ConsentProvider{}, vo.ErrInvalidRequest
	}

	provider, found, err := c.providers.Get(ctx, consentID)
	if err != nil {
		return domain.ConsentProvider{}, err
	}
	if !found {
		return domain.ConsentProvider{}, vo.ErrNotFound
	}
	return provider, nil
}

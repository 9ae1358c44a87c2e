// Package university proxies the public university directory.
package university

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/futig/counsellor-backend/internal/config"
	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/futig/counsellor-backend/internal/integration/common"
	pkghttp "github.com/futig/counsellor-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.UniversityConnectorConfig
	connector *pkghttp.Connector
	cache     *cache.Cache
	logger    *zap.Logger
}

func NewConnector(
	cfg config.UniversityConnectorConfig,
	searchCache *cache.Cache,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		config:    cfg,
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		cache:     searchCache,
		logger:    logger,
	}
}

// Search looks universities up by name. Network failures and 5xx responses
// are retried with backoff; successful results are cached per query.
func (c *Connector) Search(ctx context.Context, query string) ([]entity.University, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if cached, ok := c.cache.Get(key); ok {
		ctxzap.Debug(ctx, "university search served from cache", zap.String("query", key))
		return cloneUniversities(cached.([]entity.University)), nil
	}

	if c.config.Retry.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Retry.Timeout)
		defer cancel()
	}

	params := url.Values{}
	params.Set("name", query)

	var result []entity.University
	err := retry.Do(
		func() error {
			result = nil
			return c.connector.DoRequest(ctx, http.MethodGet, c.config.SearchEndpoint, nil, &result, pkghttp.WithQuery(params))
		},
		append(
			c.config.Retry.ToRetryOptions(ctx, pkghttp.IsTemporary),
			retry.OnRetry(func(n uint, err error) {
				ctxzap.Warn(ctx, "university search failed, retrying", zap.Uint("attempt", n+1), zap.Error(err))
			}),
		)...,
	)
	if err != nil {
		return nil, err
	}

	if result == nil {
		result = []entity.University{}
	}
	c.cache.SetDefault(key, cloneUniversities(result))

	ctxzap.Info(ctx, "universities found", zap.Int("count", len(result)))

	return result, nil
}

// cloneUniversities copies records deeply enough that callers cannot reach
// the cached entry.
func cloneUniversities(in []entity.University) []entity.University {
	out := make([]entity.University, len(in))
	for i, u := range in {
		u.Domains = slices.Clone(u.Domains)
		u.WebPages = slices.Clone(u.WebPages)
		if u.StateProvince != nil {
			state := *u.StateProvince
			u.StateProvince = &state
		}
		out[i] = u
	}
	return out
}

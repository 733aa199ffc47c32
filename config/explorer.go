package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/initia-labs/assetfields/types"
)

// ExplorerConfig describes how to reach the AtomicAssets explorer API.
type ExplorerConfig struct {
	URL          string
	Namespace    string
	QueryTimeout time.Duration
	PageLimit    int
	MaxPages     int
}

// BasePath returns the URL prefix every explorer route hangs off.
func (ec ExplorerConfig) BasePath() string {
	return strings.TrimRight(ec.URL, "/") + "/" + strings.Trim(ec.Namespace, "/")
}

func (ec ExplorerConfig) Validate() error {
	if len(ec.URL) == 0 {
		return types.NewValidationError("EXPLORER_URL", "required field is missing")
	}
	if u, err := url.Parse(ec.URL); err != nil {
		return types.NewInvalidValueError("EXPLORER_URL", ec.URL, fmt.Sprintf("invalid URL: %v", err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return types.NewInvalidValueError("EXPLORER_URL", ec.URL, fmt.Sprintf("must use http or https scheme, got: %s", u.Scheme))
	}

	if len(strings.Trim(ec.Namespace, "/")) == 0 {
		return types.NewValidationError("EXPLORER_NAMESPACE", "required field is missing")
	}

	if ec.QueryTimeout <= 0 {
		return types.NewValidationError("QUERY_TIMEOUT", "must be positive")
	}
	if ec.PageLimit < 1 || ec.PageLimit > MaxPageLimit {
		return types.NewInvalidValueError("PAGE_LIMIT", fmt.Sprintf("%d", ec.PageLimit), fmt.Sprintf("must be between 1 and %d", MaxPageLimit))
	}
	if ec.MaxPages < 1 {
		return types.NewValidationError("MAX_PAGES", "must be at least 1")
	}

	return nil
}

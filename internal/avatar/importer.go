// File: internal/avatar/importer.go

// Package avatar copies a new user's provider profile picture into our own
// object storage so the stored URL never depends on provider URL stability.
package avatar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/wflore19/portfolio-backend/internal/config"
	"github.com/wflore19/portfolio-backend/internal/shared"
	"github.com/wflore19/portfolio-backend/internal/storage"

	"go.uber.org/zap"
)

// maxAvatarBytes caps the size of a source image. Anything larger is a
// skip; a truncated prefix must never be uploaded as the avatar.
const maxAvatarBytes = 10 << 20

// Result reports how an import attempt ended. Exactly one branch is set:
// a URL when the picture landed in storage, or a skip reason when it did
// not. A skipped import is a degraded signup, never a failed one.
type Result struct {
	URL        string
	SkipReason string
}

// Imported reports whether the avatar actually reached storage.
func (r Result) Imported() bool {
	return r.URL != ""
}

func imported(url string) Result {
	return Result{URL: url}
}

func skipped(reason string) Result {
	return Result{SkipReason: reason}
}

// Importer downloads a provider-hosted profile picture and re-uploads it to
// the object store under a deterministic per-user key.
type Importer struct {
	store      storage.ObjectStore
	httpClient *http.Client
	originHost string
	cdnHost    string
	logger     *zap.Logger
}

// NewImporter creates an avatar importer.
func NewImporter(cfg *config.Config, store storage.ObjectStore, logger *zap.Logger) (*Importer, error) {
	endpoint, err := url.Parse(cfg.StorageEndpoint)
	if err != nil {
		return nil, fmt.Errorf("avatar: parsing storage endpoint %q: %w", cfg.StorageEndpoint, err)
	}

	return &Importer{
		store:      store,
		httpClient: &http.Client{Timeout: cfg.AvatarHTTPTimeout},
		originHost: endpoint.Host,
		cdnHost:    cfg.StorageCDNHost,
		logger:     logger.Named("AvatarImporter"),
	}, nil
}

// DestinationKey derives the storage key for a user's avatar. Name casing is
// preserved as-is, so "Ada" + "L" with id 42 yields "Ada-L-42.jpg". The key
// is stable per user: re-imports overwrite rather than accumulate.
func DestinationKey(user *shared.User) string {
	return fmt.Sprintf("%s-%s-%d.jpg", user.FirstName, user.LastName, user.ID)
}

// Import fetches the picture at sourceURL and uploads it for the given user,
// returning the CDN URL of the stored copy. Every failure mode collapses
// into a skipped Result; callers decide nothing beyond "did it land".
func (i *Importer) Import(ctx context.Context, user *shared.User, sourceURL string) Result {
	if sourceURL == "" {
		return skipped("profile has no picture")
	}

	data, err := i.fetch(ctx, sourceURL)
	if err != nil {
		i.logger.Warn("Avatar download failed",
			zap.Int64("userID", user.ID), zap.String("source", sourceURL), zap.Error(err))
		return skipped(fmt.Sprintf("download failed: %v", err))
	}

	key := DestinationKey(user)
	location, err := i.store.Upload(ctx, key, data, "image/jpeg")
	if err != nil {
		i.logger.Warn("Avatar upload failed",
			zap.Int64("userID", user.ID), zap.String("key", key), zap.Error(err))
		return skipped(fmt.Sprintf("upload failed: %v", err))
	}
	if location == "" {
		i.logger.Warn("Object store returned an empty location",
			zap.Int64("userID", user.ID), zap.String("key", key))
		return skipped("store returned no location")
	}

	cdnURL := i.rewriteToCDN(location)
	i.logger.Info("Imported avatar",
		zap.Int64("userID", user.ID), zap.String("key", key), zap.String("url", cdnURL))
	return imported(cdnURL)
}

func (i *Importer) fetch(ctx context.Context, sourceURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if resp.ContentLength > maxAvatarBytes {
		return nil, fmt.Errorf("source is %d bytes, limit is %d", resp.ContentLength, maxAvatarBytes)
	}

	// Read one byte past the cap so an undeclared oversized body is
	// detected instead of truncated.
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAvatarBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty response body")
	}
	if len(data) > maxAvatarBytes {
		return nil, fmt.Errorf("source exceeds the %d byte limit", maxAvatarBytes)
	}
	return data, nil
}

// rewriteToCDN swaps the storage origin host for its CDN alias so browsers
// hit the edge cache instead of the bucket directly.
func (i *Importer) rewriteToCDN(location string) string {
	if i.cdnHost == "" || i.originHost == i.cdnHost {
		return location
	}
	return strings.Replace(location, i.originHost, i.cdnHost, 1)
}

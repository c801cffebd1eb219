package plagiarism

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"unified-backend/pkg/logger"
	"unified-backend/pkg/utils"

	"github.com/redis/go-redis/v9"
)

var ErrEmptyFile = errors.New("file is empty")

// Report is the result returned to the caller.
type Report struct {
	Score           int `json:"score"`
	OriginalContent int `json:"originalContent"`
}

// Service proxies plagiarism checks to the upstream scanner, caching
// scores by content hash so re-submitting the same document does not
// burn upstream quota. Cache failures degrade to a direct call; the
// cache is an optimization, never a dependency.
type Service struct {
	client   *Client
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewService(client *Client, cache *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{client: client, cache: cache, cacheTTL: cacheTTL}
}

func cacheKey(content []byte) string {
	sum := sha256.Sum256(content)
	return "plagiarism:score:" + hex.EncodeToString(sum[:])
}

// Check scans the document content and returns the report.
func (s *Service) Check(ctx context.Context, content []byte) (Report, error) {
	if len(content) == 0 {
		return Report{}, ErrEmptyFile
	}

	key := cacheKey(content)
	if s.cache != nil {
		var cached Report
		err := utils.CacheGetJSON(ctx, s.cache, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, utils.ErrCacheMiss) {
			logger.From(ctx).Warn("plagiarism cache read failed", "err", err)
		}
	}

	score, err := s.client.Check(ctx, string(content))
	if err != nil {
		return Report{}, err
	}

	report := Report{Score: int(score), OriginalContent: 100 - int(score)}
	if s.cache != nil {
		if err := utils.CacheSetJSON(ctx, s.cache, key, report, s.cacheTTL); err != nil {
			logger.From(ctx).Warn("plagiarism cache write failed", "err", err)
		}
	}
	return report, nil
}

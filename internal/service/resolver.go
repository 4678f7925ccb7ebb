package service

import (
	"context"
	"fmt"

	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/adapter"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
	"golang.org/x/sync/errgroup"
)

// resolveConcurrency bounds how many batches are resolved in flight at once.
const resolveConcurrency = 4

type identityResolverService struct {
	directory adapter.IdentityDirectory

	logger *logger.Logger
}

func NewIdentityResolverService(directory adapter.IdentityDirectory, logger *logger.Logger) IdentityResolverService {
	return &identityResolverService{directory: directory, logger: logger}
}

// Resolve canonicalises rawIDs, splits them into batches of
// [adapter.MaxBatchSize], resolves the batches concurrently, and merges the
// per-batch mappings. Batches have disjoint key sets, so the merged result is
// identical to a sequential resolution regardless of completion order. The
// first batch failure cancels the rest and aborts the whole resolution.
func (s *identityResolverService) Resolve(ctx context.Context, rawIDs []string) (map[string]string, error) {
	canonical := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		if raw == "" {
			continue
		}
		canonical = append(canonical, models.CanonicalAccountID(raw))
	}

	batches := chunkIDs(canonical, adapter.MaxBatchSize)
	results := make([]map[string]string, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveConcurrency)
	for i, batch := range batches {
		g.Go(func() error {
			resolved, err := s.directory.ResolveBatch(gctx, batch)
			if err != nil {
				return fmt.Errorf("resolve batch %d of %d: %w", i+1, len(batches), err)
			}

			results[i] = resolved
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]string, len(canonical))
	for _, resolved := range results {
		for id, name := range resolved {
			merged[id] = name
		}
	}

	s.logger.Debug().
		Int("requested", len(canonical)).
		Int("resolved", len(merged)).
		Msg("display names resolved")
	return merged, nil
}

func chunkIDs(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}

	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}

	return chunks
}

package service

import (
	"context"
	"fmt"

	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/adapter"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

// UnknownDisplayName is shown for friends the identity directory could not
// resolve.
const UnknownDisplayName = "<unknown>"

type friendListService struct {
	directory adapter.FriendDirectory
	resolver  IdentityResolverService

	logger *logger.Logger
}

func NewFriendListService(directory adapter.FriendDirectory, resolver IdentityResolverService, logger *logger.Logger) FriendListService {
	return &friendListService{directory: directory, resolver: resolver, logger: logger}
}

// List fetches the raw relationships, resolves every display name up front,
// and returns the merged entries in deterministic display order. Entries are
// keyed by their canonical account id, so selection and removal match what
// the resolver saw.
func (s *friendListService) List(ctx context.Context, accountID string) ([]models.FriendEntry, error) {
	records, err := s.directory.ListRelationships(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list relationships: %w", err)
	}

	rawIDs := make([]string, 0, len(records))
	for _, record := range records {
		if record.AccountID != "" {
			rawIDs = append(rawIDs, record.AccountID)
		}
	}

	names, err := s.resolver.Resolve(ctx, rawIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve display names: %w", err)
	}

	entries := make([]models.FriendEntry, 0, len(records))
	for _, record := range records {
		if record.AccountID == "" {
			continue
		}

		canonical := models.CanonicalAccountID(record.AccountID)
		name, ok := names[canonical]
		if !ok {
			name = UnknownDisplayName
		}

		entries = append(entries, models.FriendEntry{
			AccountID:   canonical,
			DisplayName: name,
			MutualCount: record.Mutual,
			CreatedAt:   record.Created,
		})
	}

	models.SortFriendEntries(entries)

	s.logger.Info().Int("friends", len(entries)).Msg("friend list assembled")
	return entries, nil
}

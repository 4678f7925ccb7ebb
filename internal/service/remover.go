package service

import (
	"context"
	"fmt"

	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/adapter"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

type bulkRemoverService struct {
	directory adapter.FriendDirectory

	logger *logger.Logger
}

func NewBulkRemoverService(directory adapter.FriendDirectory, logger *logger.Logger) BulkRemoverService {
	return &bulkRemoverService{directory: directory, logger: logger}
}

// RemoveSelected removes every target in order, recording one outcome per
// target. A per-item failure is captured in the report and never stops the
// remaining removals; there is no early abort once the batch has started.
// The progress sink is notified after each item.
func (s *bulkRemoverService) RemoveSelected(ctx context.Context, accountID string, targets []string, progress ProgressSink) models.RemovalReport {
	outcomes := make([]models.RemovalOutcome, 0, len(targets))
	for i, target := range targets {
		outcomes = append(outcomes, s.removeOne(ctx, accountID, target))
		if progress != nil {
			progress.Progress(i+1, len(targets))
		}
	}

	return foldOutcomes(outcomes)
}

// RemoveAll clears the whole friend list with the bulk endpoint.
func (s *bulkRemoverService) RemoveAll(ctx context.Context, accountID string) error {
	if err := s.directory.RemoveAllRelationships(ctx, accountID); err != nil {
		return fmt.Errorf("clear friend list: %w", err)
	}

	s.logger.Info().Msg("friend list cleared")
	return nil
}

func (s *bulkRemoverService) removeOne(ctx context.Context, accountID, target string) models.RemovalOutcome {
	result, err := s.directory.RemoveRelationship(ctx, accountID, target)
	if err != nil {
		s.logger.Warn().Err(err).Str("target", target).Msg("remove friend failed")
		return models.RemovalOutcome{
			AccountID: target,
			Status:    models.RemovalFailed,
			Reason:    err.Error(),
		}
	}

	if result == adapter.AlreadyAbsent {
		s.logger.Debug().Str("target", target).Msg("friendship already absent")
		return models.RemovalOutcome{AccountID: target, Status: models.RemovalAlreadyAbsent}
	}

	return models.RemovalOutcome{AccountID: target, Status: models.RemovalSucceeded}
}

// foldOutcomes splits the ordered outcomes into the success and failure
// sequences of the final report. Every outcome lands in exactly one of the
// two, so the report always accounts for the full input.
func foldOutcomes(outcomes []models.RemovalOutcome) models.RemovalReport {
	var report models.RemovalReport
	for _, outcome := range outcomes {
		if outcome.OK() {
			report.Successes = append(report.Successes, outcome.AccountID)
			continue
		}

		report.Failures = append(report.Failures, models.RemovalFailure{
			AccountID: outcome.AccountID,
			Reason:    outcome.Reason,
		})
	}

	return report
}

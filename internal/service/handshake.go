package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/adapter"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/config"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

type authHandshakeService struct {
	provider adapter.AuthProvider

	pollInterval time.Duration
	maxWait      time.Duration

	logger *logger.Logger
}

func NewAuthHandshakeService(provider adapter.AuthProvider, authCfg config.ClientAuth, logger *logger.Logger) AuthHandshakeService {
	return &authHandshakeService{
		provider:     provider,
		pollInterval: authCfg.PollInterval,
		maxWait:      authCfg.MaxWait,
		logger:       logger,
	}
}

// Start obtains a client token with the client-credentials grant and uses it
// to request a device authorization. Both calls are made once; a failure in
// either is terminal for the run.
func (s *authHandshakeService) Start(ctx context.Context) (models.DeviceAuthorization, error) {
	clientGrant, err := s.provider.ClientCredentialsToken(ctx)
	if err != nil {
		return models.DeviceAuthorization{}, fmt.Errorf("%w: client credentials: %v", ErrHandshakeFailed, err)
	}

	device, err := s.provider.IssueDeviceCode(ctx, clientGrant.AccessToken)
	if err != nil {
		return models.DeviceAuthorization{}, fmt.Errorf("%w: device authorization: %v", ErrHandshakeFailed, err)
	}
	if device.DeviceCode == "" || device.VerificationURL == "" {
		return models.DeviceAuthorization{}, fmt.Errorf("%w: device authorization response incomplete", ErrHandshakeFailed)
	}

	s.logger.Debug().Str("user_code", device.UserCode).Msg("device code issued")
	return device, nil
}

// Await polls the device-code exchange with a constant backoff until the
// exchange succeeds or a terminal condition is hit. The constant interval
// guarantees polls never come faster than configured, and the max-duration
// cap guarantees the loop stops at the ceiling: exactly one of an authorized
// session or an error comes back.
func (s *authHandshakeService) Await(ctx context.Context, deviceCode string) (models.AuthSession, error) {
	var grant models.TokenGrant

	backoff := retry.WithMaxDuration(s.maxWait, retry.NewConstant(s.pollInterval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt, err := s.provider.ExchangeDeviceCode(ctx, deviceCode)
		if err != nil {
			if errors.Is(err, adapter.ErrAuthorizationPending) {
				return retry.RetryableError(err)
			}
			return err
		}

		grant = attempt
		return nil
	})
	if err != nil {
		if errors.Is(err, adapter.ErrAuthorizationPending) {
			return models.AuthSession{}, fmt.Errorf("%w: %v", ErrHandshakeExpired, err)
		}
		return models.AuthSession{}, fmt.Errorf("%w: %v", ErrHandshakeFailed, err)
	}

	if grant.AccountID == "" || grant.AccessToken == "" {
		return models.AuthSession{}, ErrIncompleteGrant
	}

	s.logger.Info().Str("account_id", grant.AccountID).Msg("device code handshake authorized")
	return models.AuthSession{
		AccountID:   grant.AccountID,
		BearerToken: grant.AccessToken,
		DisplayName: grant.DisplayName,
		ObtainedAt:  time.Now(),
	}, nil
}

// Invalidate kills the remote session. The error, if any, is logged and
// dropped: teardown must never mask the outcome of the run.
func (s *authHandshakeService) Invalidate(ctx context.Context, session models.AuthSession) {
	if session.BearerToken == "" {
		return
	}

	if err := s.provider.Invalidate(ctx, session.BearerToken); err != nil {
		s.logger.Warn().Err(err).Msg("session invalidation failed")
		return
	}

	s.logger.Debug().Msg("session invalidated")
}

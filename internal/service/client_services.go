package service

import (
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/adapter"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/config"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/logger"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

// ClientServices aggregates the application services consumed by the
// orchestrator and the TUI.
type ClientServices struct {
	Handshake AuthHandshakeService
	Resolver  IdentityResolverService
	Friends   FriendListService
	Remover   BulkRemoverService

	account adapter.AccountAdapter
	friends adapter.FriendDirectory
}

func NewClientServices(account adapter.AccountAdapter, friends adapter.FriendDirectory, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	resolver := NewIdentityResolverService(account, log)

	return &ClientServices{
		Handshake: NewAuthHandshakeService(account, cfg.Auth, log),
		Resolver:  resolver,
		Friends:   NewFriendListService(friends, resolver, log),
		Remover:   NewBulkRemoverService(friends, log),
		account:   account,
		friends:   friends,
	}
}

// BindSession stores the session's bearer token on every adapter that issues
// authenticated requests. The session itself stays read-only; it is the only
// state shared across component boundaries.
func (s *ClientServices) BindSession(session models.AuthSession) {
	s.account.SetToken(session.BearerToken)
	s.friends.SetToken(session.BearerToken)
}

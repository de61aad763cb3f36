package auth

import (
	"context"
	"log/slog"
	"strings"
)

// AdminUseCase gates the admin panel.
type AdminUseCase interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
}

type adminService struct {
	verifier CredentialVerifier
	tokens   TokenGenerator
	log      *slog.Logger
}

func NewAdminService(verifier CredentialVerifier, tokens TokenGenerator, log *slog.Logger) AdminUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &adminService{verifier: verifier, tokens: tokens, log: log}
}

func (s *adminService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	admin, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		s.log.WarnContext(ctx, "admin login rejected", "username", username, "error", err)
		return LoginResult{}, err
	}
	token, err := s.tokens.Generate(ctx, admin)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{
		Admin:     admin,
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
	}, nil
}

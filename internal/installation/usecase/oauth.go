package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/oauth2"

	"buildbridge/internal/installation"
	"buildbridge/internal/model"
)

// OAuthURL returns the GitHub authorization URL to start the connect flow,
// with a fresh random state the frontend must echo back on callback.
func (uc *implUseCase) OAuthURL(ctx context.Context) (installation.OAuthURLOutput, error) {
	if uc.oauthCfg == nil || uc.oauthCfg.ClientID == "" {
		return installation.OAuthURLOutput{}, installation.ErrOAuthNotConfigured
	}

	state, err := randomState()
	if err != nil {
		uc.l.Errorf(ctx, "installation.OAuthURL: %v", err)
		return installation.OAuthURLOutput{}, err
	}

	return installation.OAuthURLOutput{
		URL:   uc.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOnline),
		State: state,
	}, nil
}

// ExchangeOAuth trades an authorization code for a GitHub access token.
func (uc *implUseCase) ExchangeOAuth(ctx context.Context, sc model.Scope, input installation.ExchangeOAuthInput) (installation.ExchangeOAuthOutput, error) {
	if uc.oauthCfg == nil || uc.oauthCfg.ClientID == "" {
		return installation.ExchangeOAuthOutput{}, installation.ErrOAuthNotConfigured
	}

	token, err := uc.oauthCfg.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Errorf(ctx, "installation.ExchangeOAuth: %v", err)
		return installation.ExchangeOAuthOutput{}, installation.ErrOAuthExchangeFailed
	}

	return installation.ExchangeOAuthOutput{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	}, nil
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

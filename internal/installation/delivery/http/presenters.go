package http

import (
	"buildbridge/internal/installation"
	"buildbridge/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	InstallationID int64 `json:"installation_id" binding:"required,gt=0"`
}

func (r registerReq) toInput() installation.RegisterInput {
	return installation.RegisterInput{InstallationID: r.InstallationID}
}

type exchangeReq struct {
	Code string `json:"code" binding:"required,min=1"`
}

func (r exchangeReq) toInput() installation.ExchangeOAuthInput {
	return installation.ExchangeOAuthInput{Code: r.Code}
}

// --- Response DTOs ---

type installationResp struct {
	ID             string            `json:"id"`
	InstallationID int64             `json:"installation_id"`
	AccountLogin   string            `json:"account_login,omitempty"`
	CreatedAt      response.DateTime `json:"created_at"`
	UpdatedAt      response.DateTime `json:"updated_at"`
}

func newInstallationResp(ins installation.Installation) installationResp {
	return installationResp{
		ID:             ins.ID,
		InstallationID: ins.InstallationID,
		AccountLogin:   ins.AccountLogin,
		CreatedAt:      response.DateTime(ins.CreatedAt),
		UpdatedAt:      response.DateTime(ins.UpdatedAt),
	}
}

type registerResp struct {
	Installation installationResp `json:"installation"`
}

func (h *handler) newRegisterResp(out installation.RegisterOutput) registerResp {
	return registerResp{Installation: newInstallationResp(out.Installation)}
}

type listResp struct {
	Installations []installationResp `json:"installations"`
}

func (h *handler) newListResp(out installation.ListOutput) listResp {
	installations := make([]installationResp, len(out.Installations))
	for i, ins := range out.Installations {
		installations[i] = newInstallationResp(ins)
	}
	return listResp{Installations: installations}
}

type repositoryResp struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
}

type listRepositoriesResp struct {
	Repositories []repositoryResp `json:"repositories"`
}

func (h *handler) newListRepositoriesResp(out installation.ListRepositoriesOutput) listRepositoriesResp {
	repos := make([]repositoryResp, len(out.Repositories))
	for i, r := range out.Repositories {
		repos[i] = repositoryResp{
			ID:            r.ID,
			Name:          r.Name,
			FullName:      r.FullName,
			Private:       r.Private,
			DefaultBranch: r.DefaultBranch,
		}
	}
	return listRepositoriesResp{Repositories: repos}
}

type oauthURLResp struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

func (h *handler) newOAuthURLResp(out installation.OAuthURLOutput) oauthURLResp {
	return oauthURLResp{URL: out.URL, State: out.State}
}

type exchangeResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *handler) newExchangeResp(out installation.ExchangeOAuthOutput) exchangeResp {
	return exchangeResp{AccessToken: out.AccessToken, TokenType: out.TokenType}
}

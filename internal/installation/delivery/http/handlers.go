package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"buildbridge/internal/middleware"
	"buildbridge/pkg/response"
)

// Register godoc
// @Summary     Register a GitHub App installation
// @Description Records (or refreshes) an App installation for the caller.
// @Tags        Installation
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Installation data"
// @Success     200  {object} registerResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/installations [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRegisterResp(output))
}

// List godoc
// @Summary     List installations
// @Description Returns the caller's registered App installations.
// @Tags        Installation
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/installations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListRepositories godoc
// @Summary     List installation repositories
// @Description Lists the repositories an installation grants access to, via the GitHub API.
// @Tags        Installation
// @Accept      json
// @Produce     json
// @Param       installationId path int true "GitHub installation ID"
// @Success     200 {object} listRepositoriesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/installations/{installationId}/repositories [GET]
func (h *handler) ListRepositories(c *gin.Context) {
	ctx := c.Request.Context()

	installationID, err := strconv.ParseInt(c.Param("installationId"), 10, 64)
	if err != nil || installationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "installationId must be a positive integer"})
		return
	}

	output, err := h.uc.ListRepositories(ctx, middleware.GetScope(c), installationID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRepositories: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListRepositoriesResp(output))
}

// Delete godoc
// @Summary     Delete an installation
// @Description Removes a registered App installation. Projects linked through it are untouched.
// @Tags        Installation
// @Accept      json
// @Produce     json
// @Param       installationId path int true "GitHub installation ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/installations/{installationId} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	installationID, err := strconv.ParseInt(c.Param("installationId"), 10, 64)
	if err != nil || installationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "installationId must be a positive integer"})
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), installationID); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// OAuthURL godoc
// @Summary     Get GitHub OAuth authorization URL
// @Description Returns the URL to start the GitHub OAuth connect flow.
// @Tags        Installation
// @Accept      json
// @Produce     json
// @Success     200 {object} oauthURLResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/oauth/github/url [GET]
func (h *handler) OAuthURL(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.OAuthURL(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.OAuthURL: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newOAuthURLResp(output))
}

// ExchangeOAuth godoc
// @Summary     Exchange an OAuth authorization code
// @Description Trades a GitHub authorization code for an access token.
// @Tags        Installation
// @Accept      json
// @Produce     json
// @Param       body body exchangeReq true "Authorization code"
// @Success     200 {object} exchangeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/oauth/github/exchange [POST]
func (h *handler) ExchangeOAuth(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExchangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExchangeOAuth(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExchangeOAuth: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExchangeResp(output))
}

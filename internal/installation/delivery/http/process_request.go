package http

import (
	"github.com/gin-gonic/gin"
)

// processRegisterReq binds and validates the register installation request body.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExchangeReq binds and validates the OAuth exchange request body.
func (h *handler) processExchangeReq(c *gin.Context) (exchangeReq, error) {
	var req exchangeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

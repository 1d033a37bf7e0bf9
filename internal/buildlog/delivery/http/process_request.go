package http

import (
	"github.com/gin-gonic/gin"

	"buildbridge/internal/buildlog"
)

// processGetLogsReq binds and validates the get logs query + URI param.
func (h *handler) processGetLogsReq(c *gin.Context) (getLogsReq, error) {
	var req getLogsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, buildlog.ErrInvalidLimit
	}
	req.BuildID = c.Param("buildId")
	if req.BuildID == "" {
		return req, buildlog.ErrBuildIDRequired
	}
	return req, nil
}

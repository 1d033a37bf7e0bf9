package http

import (
	"github.com/gin-gonic/gin"

	"buildbridge/internal/middleware"
	"buildbridge/pkg/response"
)

// GetLogs godoc
// @Summary     Get build logs
// @Description Returns one page of log events for a build.
// @Tags        BuildLog
// @Accept      json
// @Produce     json
// @Param       buildId   path  string true  "Build ID"
// @Param       limit     query int    false "Page size, 1-500 (default: 100)"
// @Param       nextToken query string false "Pagination token from a previous page"
// @Success     200 {object} getLogsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/logs/{buildId} [GET]
func (h *handler) GetLogs(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetLogsReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.GetLogs(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetLogs: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGetLogsResp(output))
}

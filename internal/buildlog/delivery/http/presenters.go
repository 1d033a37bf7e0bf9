package http

import (
	"buildbridge/internal/buildlog"
)

// --- Request DTOs ---

type getLogsReq struct {
	BuildID   string `form:"-"` // populated from URI param
	Limit     int    `form:"limit"`
	NextToken string `form:"nextToken"`
}

func (r getLogsReq) toInput() buildlog.GetLogsInput {
	return buildlog.GetLogsInput{
		BuildID:   r.BuildID,
		Limit:     r.Limit,
		NextToken: r.NextToken,
	}
}

// --- Response DTOs ---

type logEventResp struct {
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

type getLogsResp struct {
	Events    []logEventResp `json:"events"`
	NextToken string         `json:"next_token,omitempty"`
}

func (h *handler) newGetLogsResp(out buildlog.GetLogsOutput) getLogsResp {
	events := make([]logEventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = logEventResp{Timestamp: ev.Timestamp, Message: ev.Message}
	}
	return getLogsResp{
		Events:    events,
		NextToken: out.NextToken,
	}
}

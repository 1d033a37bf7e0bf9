package webhook

import (
	"buildbridge/internal/dispatch"
	pkgLog "buildbridge/pkg/log"
)

type Handler struct {
	dispatchUC dispatch.UseCase
	security   *SecurityValidator
	parser     *GitHubWebhookParser
	l          pkgLog.Logger
}

func NewHandler(
	dispatchUC dispatch.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		dispatchUC: dispatchUC,
		security:   NewSecurityValidator(securityConfig),
		parser:     NewGitHubParser(),
		l:          l,
	}
}

package store

import (
	"go.uber.org/zap"

	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

// Notifier surfaces persistence failures to the operator. Every failed
// mutation produces exactly one notification after its rollback settles.
type Notifier interface {
	Notify(operation string, err error)
}

type logNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Notify(operation string, err error) {
	n.log.Error("Persistence failed, local change reverted", err, zap.String("operation", operation))
}

package api

import (
	logx "github.com/trendify-core/client/pkg/logger"
)

// restyLogger routes resty's internal messages through logx.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	logx.Error().Msgf(format, v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	logx.Warn().Msgf(format, v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	logx.Debug().Msgf(format, v...)
}

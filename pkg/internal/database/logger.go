package database

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// zeroLogger routes gorm logs into zerolog so database noise shares the
// application's log stream and levels.
type zeroLogger struct {
	slowThreshold time.Duration
}

func NewLogger() logger.Interface {
	return &zeroLogger{slowThreshold: 200 * time.Millisecond}
}

func (l *zeroLogger) LogMode(logger.LogLevel) logger.Interface {
	return l
}

func (l *zeroLogger) Info(_ context.Context, msg string, data ...any) {
	log.Info().Msgf(msg, data...)
}

func (l *zeroLogger) Warn(_ context.Context, msg string, data ...any) {
	log.Warn().Msgf(msg, data...)
}

func (l *zeroLogger) Error(_ context.Context, msg string, data ...any) {
	log.Error().Msgf(msg, data...)
}

func (l *zeroLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		log.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Msg(sql)
	case elapsed > l.slowThreshold:
		sql, rows := fc()
		log.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Msg(sql)
	}
}

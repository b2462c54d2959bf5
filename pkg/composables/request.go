package composables

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sendikahq/sendika/pkg/constants"
)

func WithValue(ctx context.Context, key constants.ContextKey, value any) context.Context {
	return context.WithValue(ctx, key, value)
}

func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

func UseLogger(ctx context.Context) logrus.FieldLogger {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger.(logrus.FieldLogger)
}

// WithUser stores the acting user identifier. Authentication happens
// upstream; by the time a request reaches a service the user is a plain id.
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, constants.UserKey, userID)
}

func UseUser(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(constants.UserKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

package constants

type ContextKey string

const (
	PoolKey      ContextKey = "pool"
	TxKey        ContextKey = "tx"
	LoggerKey    ContextKey = "logger"
	UserKey      ContextKey = "user"
	RequestIDKey ContextKey = "request-id"
)

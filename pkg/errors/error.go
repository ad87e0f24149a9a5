package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalError represents a generic internal server error.
	GeneralInternalError ErrorCode = "general_internal_error"

	// ValidationError represents bad input shape or range, e.g. a
	// non-positive price or an out-of-bounds limit. Never retried.
	ValidationError ErrorCode = "validation_error"
	// MissingTimezone represents a custom-day query whose bounds were
	// not timezone-aware.
	MissingTimezone ErrorCode = "missing_timezone"
	// RangeTooLarge represents a bucket query whose span exceeds the
	// granularity-specific maximum.
	RangeTooLarge ErrorCode = "range_too_large"
	// NotFound represents an update or delete targeting a missing
	// (symbol, time) key.
	NotFound ErrorCode = "not_found"

	// RedisConfigError represents an invalid or nil Redis configuration.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_ping_error"
	// RedisSubscribeError represents an error when subscribing to channels in Redis.
	RedisSubscribeError ErrorCode = "redis_subscribe_error"
	// RedisPublishError represents an error when publishing messages to channels in Redis.
	RedisPublishError ErrorCode = "redis_publish_error"

	// TimescaleQueryError represents a failed read against TimescaleDB.
	TimescaleQueryError ErrorCode = "timescale_query_error"
	// TimescaleExecError represents a failed write against TimescaleDB.
	TimescaleExecError ErrorCode = "timescale_exec_error"
)

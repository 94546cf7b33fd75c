package common

const (
	// HeaderUserID carries the authenticated user ID set by the upstream gateway.
	HeaderUserID = "X-User-ID"

	ContextKeyUserID = "user_id"

	RedisLockPrefix = "frugal:lock:"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

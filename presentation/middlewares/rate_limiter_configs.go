package middlewares

import "time"

// ModerateRateLimiterConfig for the record and audit endpoints.
func ModerateRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerWindow: 120,
		Window:            time.Minute,
		BlockDuration:     time.Minute * 5,
	}
}

// StrictRateLimiterConfig for the destructive admin endpoints.
func StrictRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerWindow: 20,
		Window:            time.Minute,
		BlockDuration:     time.Minute * 15,
	}
}

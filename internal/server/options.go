package server

import (
	"github.com/agbru/anybase/internal/logging"
	"github.com/agbru/anybase/internal/service"
)

// Option is a functional option for configuring the Server.
type Option func(*Server)

// WithLogger sets a custom logger for the server.
//
// Parameters:
//   - logger: The logger to use.
//
// Returns:
//   - Option: A functional option that configures the server's logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithServiceFactory sets a custom conversion service factory, used by tests
// to inject fakes.
//
// Parameters:
//   - factory: The factory creating a Service for a pair of tables.
//
// Returns:
//   - Option: A functional option that configures the server's factory.
func WithServiceFactory(factory ServiceFactory) Option {
	return func(s *Server) {
		s.newService = factory
	}
}

// WithRateLimiter sets a custom rate limiter for the server.
//
// Parameters:
//   - rl: The rate limiter to use.
//
// Returns:
//   - Option: A functional option that configures the server's rate limiter.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(s *Server) {
		s.rateLimiter = rl
	}
}

// WithSecurityConfig sets a custom security configuration for the server.
//
// Parameters:
//   - config: The security configuration.
//
// Returns:
//   - Option: A functional option that configures the server's security settings.
func WithSecurityConfig(config SecurityConfig) Option {
	return func(s *Server) {
		s.securityConfig = config
	}
}

// WithMaxInputLen sets the maximum allowed input length in characters.
//
// Parameters:
//   - maxLen: The maximum allowed length (0 for no limit).
//
// Returns:
//   - Option: A functional option that configures the input limit.
func WithMaxInputLen(maxLen int) Option {
	return func(s *Server) {
		s.securityConfig.MaxInputLen = maxLen
	}
}

// ServiceFactory creates a conversion Service for a validated pair of tables
// and an input-length limit.
type ServiceFactory func(srcTable, dstTable string, maxInputLen int) (service.Service, error)

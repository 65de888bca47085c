package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the caller of a usecase operation.
type Scope struct {
	SessionID string // opaque conversation id
	Channel   string // delivery channel: "http" or "telegram"
	UserID    string // channel-specific user id, may be empty
}

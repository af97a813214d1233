package model

// Scope identifies the conversation a request acts on. Tasks are owned
// exclusively by their chat; every operation carries a Scope.
type Scope struct {
	ChatID   int64
	Username string
}

// Environment names used by server wiring.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

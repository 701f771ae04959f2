package model

// Environment is the deployment environment name from config.
type Environment string

const (
	EnvironmentLocal       Environment = "local"
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "VENTUREHUB"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "VENTUREHUB_DB_DSN"
	EnvDBHost = "VENTUREHUB_DB_HOST"
	EnvDBUser = "VENTUREHUB_DB_USER"
	EnvDBName = "VENTUREHUB_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

package config

const (
	EnvPrefix = "STOCKROOM"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvDBDSN  = "STOCKROOM_DB_DSN"
	EnvDBHost = "STOCKROOM_DB_HOST"
	EnvDBUser = "STOCKROOM_DB_USER"
	EnvDBName = "STOCKROOM_DB_NAME"
)

var pieceDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

package config

// EnvPrefix namespaces every variable read by envconfig.
const EnvPrefix = "JOBBOARD"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DefaultCookieName = "access_token"
)

const (
	EnvAppEnv      = "JOBBOARD_APP_ENV"
	EnvPort        = "JOBBOARD_APP_PORT"
	EnvLogLevel    = "JOBBOARD_LOG_LEVEL"
	EnvFrontendURL = "JOBBOARD_FRONTEND_URL"

	EnvDBDSN      = "JOBBOARD_DB_DSN"
	EnvDBHost     = "JOBBOARD_DB_HOST"
	EnvDBPort     = "JOBBOARD_DB_PORT"
	EnvDBUser     = "JOBBOARD_DB_USERNAME"
	EnvDBPassword = "JOBBOARD_DB_PASSWORD"
	EnvDBName     = "JOBBOARD_DB_NAME"

	EnvRedisURL     = "JOBBOARD_REDIS_URL"
	EnvRedisEnabled = "JOBBOARD_REDIS_ENABLED"

	EnvJWTSecret  = "JOBBOARD_JWT_SECRET"
	EnvJWTIssuer  = "JOBBOARD_JWT_ISSUER"
	EnvJWTExpMins = "JOBBOARD_JWT_EXPIRATION_MINUTES"

	EnvAPIKey = "JOBBOARD_API_KEY"

	EnvSeedPassword = "JOBBOARD_SEED_PASSWORD"
	EnvUseSQLite    = "JOBBOARD_USE_SQLITE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

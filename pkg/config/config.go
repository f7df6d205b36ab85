package config

import (
	"github.com/frotawatch/frotawatch/pkg/util"
	"github.com/rs/zerolog/log"
)

const defaultCacheFile = ".cache-fleet.json"

type Config struct {
	Endpoint string
	Login    string
	Password string

	CacheFile string
}

// Load reads the upstream credentials from the environment. The process is
// useless without them so missing keys are fatal.
func Load() Config {
	env := util.GetEnvironmentVariables("FROTAWATCH_")

	for _, key := range []string{"FROTAWATCH_TC_URL", "FROTAWATCH_TC_LOGIN", "FROTAWATCH_TC_PASSWORD"} {
		if env[key] == "" {
			log.Fatal().Msgf("\"%s\" not set in environment", key)
		}
	}

	cacheFile := env["FROTAWATCH_CACHE_FILE"]
	if cacheFile == "" {
		cacheFile = defaultCacheFile
	}

	return Config{
		Endpoint:  env["FROTAWATCH_TC_URL"],
		Login:     env["FROTAWATCH_TC_LOGIN"],
		Password:  env["FROTAWATCH_TC_PASSWORD"],
		CacheFile: cacheFile,
	}
}

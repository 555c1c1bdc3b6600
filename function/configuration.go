package function

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/underbar-go/underbar/config"
)

const DefaultMaxEntries = 1024

// CacheConfiguration describes how many results a BoundedMemoizer keeps and for how long.
type CacheConfiguration struct {
	// MaxEntries is the number of results kept before evicting some.
	MaxEntries int64 `mapstructure:"max_entries"`
	// TTL is how long results are kept. Zero keeps them until evicted.
	TTL time.Duration `mapstructure:"ttl"`
}

// DefaultCacheConfiguration returns a configuration of DefaultMaxEntries entries without expiry.
func DefaultCacheConfiguration() *CacheConfiguration {
	return &CacheConfiguration{
		MaxEntries: DefaultMaxEntries,
	}
}

func (cfg *CacheConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.MaxEntries, validation.Required, validation.Min(int64(1))),
		validation.Field(&cfg.TTL, validation.Min(time.Duration(0))),
	)
}

// LoadCacheConfiguration loads a cache configuration from the environment,
// e.g. <PREFIX>_MAX_ENTRIES and <PREFIX>_TTL, falling back on DefaultCacheConfiguration.
func LoadCacheConfiguration(envVarPrefix string) (cfg *CacheConfiguration, err error) {
	cfg = &CacheConfiguration{}
	err = config.Load(envVarPrefix, cfg, DefaultCacheConfiguration())
	if err != nil {
		cfg = nil
	}
	return
}

package model

import (
	echobasicauth "github.com/etkecc/go-echo-basic-auth"
)

// Config is LID configuration model
type Config struct {
	Address      string              `yaml:"address"`
	Port         string              `yaml:"port"`
	LogLevel     string              `yaml:"loglevel"`
	SentryDSN    string              `yaml:"sentry_dsn"`
	Healthchecks *ConfigHealthchecks `yaml:"healthchecks"`
	Auth         *ConfigAuth         `yaml:"auth"`
	Cron         *ConfigCron         `yaml:"cron"`
	Engine       *ConfigEngine       `yaml:"engine"`
	History      *ConfigHistory      `yaml:"history"`
}

// ConfigHealthchecks - healthchecks.io configuration
type ConfigHealthchecks struct {
	URL  string `yaml:"url"`
	UUID string `yaml:"uuid"`
}

// ConfigAuth - auth-related configuration
type ConfigAuth struct {
	Admin   echobasicauth.Auth `yaml:"admin"`
	Metrics echobasicauth.Auth `yaml:"metrics"`
}

// ConfigCron - cronjobs config
type ConfigCron struct {
	Sweep string `yaml:"sweep"`
}

// ConfigEngine - detection engine knobs.
// Zero values fall back to the engine defaults, so an empty config is valid.
type ConfigEngine struct {
	MinSampleLength int     `yaml:"min_sample_length"`
	MaxSampleLength int     `yaml:"max_sample_length"`
	CacheTTL        string  `yaml:"cache_ttl"`
	CacheMaxEntries int     `yaml:"cache_max_entries"`
	TrendHorizon    string  `yaml:"trend_horizon"`
	WordNoiseFloor  float64 `yaml:"word_noise_floor"`
	FrequencyFloor  float64 `yaml:"frequency_floor"`
}

// ConfigHistory - per-origin history ring configuration
type ConfigHistory struct {
	Size int `yaml:"size"`
}

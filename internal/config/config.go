// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config turns viper settings (config file, environment, flags)
// into a validated types.Config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/pubmed"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// EnvPrefix prefixes every environment override, e.g.
// GET_PAPERS_LIST_PUBMED_EMAIL.
const EnvPrefix = "GET_PAPERS_LIST"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "get-papers-list/0.1"
)

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("pubmed.base_url", pubmed.DefaultBaseURL)
	v.SetDefault("pubmed.timeout", defaultTimeout)
	v.SetDefault("pubmed.user_agent", defaultUserAgent)
	v.SetDefault("pubmed.tool", "")
	v.SetDefault("pubmed.email", "")
	v.SetDefault("archive.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// BindEnv makes every key overridable from GET_PAPERS_LIST_<SECTION>_<KEY>.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals v into a Config and validates it. Callers set defaults
// and read any config file beforehand.
func Load(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints declared on the config structs.
func Validate(cfg types.Config) error {
	if err := validate.Struct(cfg); err != nil {
		var msgs []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
		} else {
			msgs = append(msgs, err.Error())
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return nil
}

/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/underbar-go/underbar/commonerrors"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "underbarprivateflagbindings" // lower case so that viper keys match
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) into configurationToSet.
// Entries not found in the environment take the values defined in defaultConfiguration.
// envVarPrefix is the prefix environment variables use: with prefix "app", entry `max_entries` of section `cache` is read from APP_CACHE_MAX_ENTRIES.
// Fields of configurationToSet must carry mapstructure tags made of `[_0-9a-zA-Z]` characters only.
func Load(envVarPrefix string, configurationToSet, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as Load but reuses the viper session provided.
// Viper's precedence order is maintained:
//  1. values set using explicit calls to Set
//  2. flags bound using BindFlagToEnv
//  3. environment (variables or .env)
//  4. default values from defaultConfiguration, then flag default values.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil {
		return commonerrors.UndefinedParameter("missing viper session")
	}
	if configurationToSet == nil {
		return commonerrors.UndefinedParameter("missing configuration to load")
	}
	if defaultConfiguration != nil {
		var defaults map[string]any
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not decode default configuration")
		}
		err = viperSession.MergeConfigMap(defaults)
		if err != nil {
			return commonerrors.WrapError(commonerrors.ErrInvalid, err, "could not load default configuration")
		}
	}

	// A missing .env file is not an error.
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)
	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "unable to decode configuration into structure")
	}
	err = configurationToSet.Validate()
	if err != nil {
		err = WrapValidationError(&envVarPrefix, err)
	}
	return
}

// BindFlagToEnv binds a flag to an environment variable, with or without envVarPrefix.
// The flag then sets the configuration entry the environment variable corresponds to.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if viperSession == nil {
		return commonerrors.UndefinedParameter("missing viper session")
	}
	if flag == nil {
		return commonerrors.UndefinedParameterf("missing flag to bind to %v", envVar)
	}
	setEnvOptions(viperSession, envVarPrefix)
	flagKey, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(flagKey, flag)
	if err != nil {
		return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not bind flag %v", flag.Name)
	}
	err = viperSession.BindEnv(flagKey, cleansedEnvVar)
	if err != nil {
		err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not bind environment variable %v", cleansedEnvVar)
	}
	return
}

// generateEnvVarConfigKeys normalises an environment variable or configuration key so that
// `cache.max_entries` and `APP_CACHE_MAX_ENTRIES` both map to the same flag key.
func generateEnvVarConfigKeys(envVar, envVarPrefix string) (flagKey string, cleansedEnvVar string) {
	short := strings.ToLower(envVar)
	prefix := strings.ToLower(envVarPrefix)
	if prefix != "" && strings.HasPrefix(short, prefix+EnvVarSeparator) {
		short = strings.TrimPrefix(short, prefix+EnvVarSeparator)
	}
	short = strings.ReplaceAll(short, configKeySeparator, EnvVarSeparator)
	flagKey = fmt.Sprintf("%v%v%v", flagKeyPrefix, configKeySeparator, strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator))
	cleansedEnvVar = strings.ToUpper(short)
	if envVarPrefix != "" {
		cleansedEnvVar = strings.ToUpper(envVarPrefix + EnvVarSeparator + short)
	}
	return
}

func isFlagKey(key string) bool {
	return strings.HasPrefix(key, flagKeyPrefix)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys copies bound flag values onto the structure keys they correspond to.
// Viper aliases and BindEnv do not cope with nested structures, hence the manual linking.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	for _, key := range viperSession.AllKeys() {
		if isFlagKey(key) {
			continue
		}
		flagKey, _ := generateEnvVarConfigKeys(key, envVarPrefix)
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
			continue
		}
		value := viperSession.Get(flagKey)
		if isEmpty(value) {
			continue
		}
		viperSession.SetDefault(key, value)
		if isEmpty(viperSession.Get(key)) {
			viperSession.Set(key, value)
		}
	}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Map, reflect.Slice:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

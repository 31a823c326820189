package env

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/mikeydub/go-pairheap/service/logger"
)

var validators = map[string][]string{}

var v = validator.New()

var validatorsMu = &sync.Mutex{}

func init() {
	viper.AutomaticEnv()
}

// RegisterValidation attaches validator tags to an environment variable; they
// run against its value on every read.
func RegisterValidation(name string, tags ...string) {
	validatorsMu.Lock()
	defer validatorsMu.Unlock()
	validators[name] = dedupe(append(validators[name], tags...))
}

func validate(name string) {
	validatorsMu.Lock()
	defer validatorsMu.Unlock()
	for _, tag := range validators[name] {
		err := v.Var(viper.GetString(name), tag)
		if err != nil {
			logger.For(context.Background()).Errorf("invalid env var: %s, tag: %s, err: %s", name, tag, err.Error())
		}
	}
}

func Get[T any](name string) T {
	validate(name)

	if !viper.IsSet(name) {
		return *new(T)
	}

	it, ok := viper.Get(name).(T)
	if !ok {
		logger.For(context.Background()).Errorf("invalid env var: %s, expected type: %T", name, it)
		return *new(T)
	}

	return it
}

func GetIfExists[T any](name string) (T, bool) {
	validate(name)

	if !viper.IsSet(name) {
		return *new(T), false
	}

	it, ok := viper.Get(name).(T)
	if !ok {
		logger.For(context.Background()).Errorf("invalid env var: %s, expected type: %T", name, it)
		return *new(T), false
	}

	return it, true
}

func GetString(name string) string {
	return Get[string](name)
}

// GetInt reads an integer variable, coercing string values the way viper does.
func GetInt(name string) int {
	validate(name)
	return viper.GetInt(name)
}

// GetIntIfExists is GetInt plus a flag reporting whether the variable is set
// at all, so callers can distinguish an explicit 0 from an absent value.
func GetIntIfExists(name string) (int, bool) {
	if !viper.IsSet(name) {
		return 0, false
	}
	validate(name)
	return viper.GetInt(name), true
}

func dedupe(src []string) []string {
	result := src[:0]

	seen := make(map[string]bool)
	for _, x := range src {
		if !seen[x] {
			result = append(result, x)
			seen[x] = true
		}
	}
	return result
}

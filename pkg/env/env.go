package env

import (
	"fmt"
	"os"

	pkgstrings "github.com/pharmanet/pharmacy-console/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T any](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, fmt.Errorf("env %s not found", key)
	}

	value, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return value, nil
}

func ParseOptional[T any](key string) (*T, error) {
	if _, ok := os.LookupEnv(key); !ok {
		return nil, nil
	}

	value, err := Parse[T](key)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func ParseDefault[T any](key string, def T) (T, error) {
	value, err := ParseOptional[T](key)
	if err != nil {
		return def, err
	}
	if value == nil {
		return def, nil
	}

	return *value, nil
}

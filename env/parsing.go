// Package env contains code for handling environment variables
package env

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gorilla/securecookie"
	"github.com/pkg/errors"
)

func GetBool(varName string) (bool, error) {
	value := os.Getenv(varName)
	if len(value) == 0 {
		return false, nil
	}

	switch value {
	case "TRUE", "true", "True":
		return true, nil
	case "FALSE", "false", "False":
		return false, nil
	}

	return false, errors.Errorf(
		"unknown value %s for boolean environment variable %s", value, varName,
	)
}

func GetBase64(varName string) ([]byte, error) {
	rawValue := os.Getenv(varName)
	if len(rawValue) == 0 {
		return nil, nil
	}

	return base64.StdEncoding.DecodeString(rawValue)
}

// GetKey loads a base64-encoded key from the environment variable, or
// generates a random key of the given length in bytes if the variable is
// unset. Generated keys are not persisted, so cookies minted with them won't
// decode after a restart unless the key is recorded.
func GetKey(varName string, length int) ([]byte, error) {
	key, err := GetBase64(varName)
	if err != nil {
		return nil, err
	}

	if key == nil {
		key = securecookie.GenerateRandomKey(length)
		if key == nil {
			return nil, errors.New("unable to generate a random key")
		}
		// TODO: print to the logger instead?
		fmt.Printf(
			"Record this key for future use as %s: %s\n",
			varName, base64.StdEncoding.EncodeToString(key),
		)
	}
	return key, nil
}

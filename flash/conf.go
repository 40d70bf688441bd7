package flash

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/env"
)

const envPrefix = "FLASH_"

type Config struct {
	AuthKey       []byte
	EncryptionKey []byte
	CookieOptions sessions.Options
	CookieName    string
}

func GetConfig() (c Config, err error) {
	const authKeySize = 32
	c.AuthKey, err = env.GetKey(envPrefix+"AUTH_KEY", authKeySize)
	if err != nil {
		return Config{}, errors.Wrap(err, "couldn't make flash auth key config")
	}

	const encryptionKeySize = 32
	c.EncryptionKey, err = env.GetKey(envPrefix+"ENCRYPTION_KEY", encryptionKeySize)
	if err != nil {
		return Config{}, errors.Wrap(err, "couldn't make flash encryption key config")
	}

	c.CookieOptions, err = getCookieOptions()
	if err != nil {
		return Config{}, errors.Wrap(err, "couldn't make cookie options config")
	}

	if c.CookieOptions.Secure {
		// The __Host- prefix requires Secure, HTTPS, no Domain, and path "/"
		c.CookieName = "__Host-Flash"
	} else {
		c.CookieName = "flash"
	}
	return c, nil
}

func getCookieOptions() (o sessions.Options, err error) {
	noHTTPSOnly, err := env.GetBool(envPrefix + "COOKIE_NOHTTPSONLY")
	if err != nil {
		return sessions.Options{}, errors.Wrap(err, "couldn't make HTTPS-only config")
	}

	return sessions.Options{
		Path:     "/",
		Domain:   "",
		MaxAge:   0,
		Secure:   !noHTTPSOnly,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

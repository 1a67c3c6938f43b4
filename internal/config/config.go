package config

import (
	"errors"
	"net/http"
	"time"
)

type StoreConfig struct {
	URL        string
	AnonKey    string
	ServiceKey string
}

// Validate reports a missing credential. The process must not start without all three.
func (c StoreConfig) Validate() error {
	if c.URL == "" {
		return errors.New("store URL is not set")
	}
	if c.AnonKey == "" {
		return errors.New("store anon key is not set")
	}
	if c.ServiceKey == "" {
		return errors.New("store service role key is not set")
	}
	return nil
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

package edge

import (
	"github.com/gorilla/websocket"
)

type Config struct {
	url string

	dialer *websocket.Dialer
}

type Option func(*Config)

func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

func WithDialer(dialer *websocket.Dialer) Option {
	return func(c *Config) {
		c.dialer = dialer
	}
}

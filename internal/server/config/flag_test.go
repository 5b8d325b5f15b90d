package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", ":9000", "-f", "/var/lib/userbook/users.json", "-t", "10"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "/var/lib/userbook/users.json", cfg.StoreFile)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("keeps defaults when flags absent", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":8000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "users.json", cfg.StoreFile)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("ignores unrelated flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "conf.json", "-a", ":9001"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":9001", cfg.EndpointAddrHTTP)
		assert.Equal(t, "users.json", cfg.StoreFile)
	})
}

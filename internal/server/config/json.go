package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/userbook/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, its fields are copied into
// the runtime Config. The shutdown timeout is carried as whole seconds.
type JsonConfig struct {
	EndpointAddrHTTP string `json:"endpoint_addr_http"`
	StoreFile        string `json:"store_file"`
	ShutdownTimeout  int    `json:"shutdown_timeout"`
}

// parseJson loads configuration values from a JSON file into the
// provided Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. A file that cannot be read or
// contains invalid JSON is a startup error and panics. Only fields
// present in the file override the target Config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.StoreFile != "" {
		config.StoreFile = c.StoreFile
	}
	if c.ShutdownTimeout > 0 {
		config.ShutdownTimeout = time.Duration(c.ShutdownTimeout) * time.Second
	}
}

// Package config loads generator settings from defaults, an optional
// config.yaml and PROXY_* environment variables, in increasing precedence.
package config

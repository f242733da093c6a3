// Package config loads the gt configuration from
// ~/.config/gt/config.toml.
//
// The file is optional; a missing file yields [Default]. A present but
// invalid file yields Default plus an error so the CLI can warn and keep
// working. gt never writes the file.
package config

// Package config loads client settings from config.yml files, .env files,
// and VIKING_-prefixed environment variables, in increasing order of
// precedence. It produces a ready-to-use viking.Config plus logger
// settings, so applications can go from files on disk to an API client in
// two calls:
//
//	settings, err := config.Load()
//	if err != nil {
//	    ...
//	}
//	client, err := settings.NewClient()
package config

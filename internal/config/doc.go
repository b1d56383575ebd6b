// Package config provides configuration structures and utilities for pwstrength.
// It defines detector tuning, wordlist sources and report preferences, and
// loads the optional .pwstrength YAML file.
package config

package config

// Base application details
const AppName = "textdiff"
const DefaultConfigFileName = "config.toml"
const Version = "0.3.0"

// Diff defaults
const DefaultFormat = "json"
const DefaultCleanup = "semantic"
const DefaultTimeoutMS = 1000

// Package config loads runtime settings for the LibShelf CLI.
//
// Values are resolved in three layers, later ones winning:
//
//  1. Built-in defaults (Config.LoadDefaults).
//  2. A JSON file named by the -c/-config flag.
//  3. Command-line flags (-a, -t, -d).
package config

// Package config provides configuration management for audiorganizer.
//
// This package handles:
//   - Default configuration values and placeholder constants
//   - Transfer mode parsing (copy or move)
//   - Validation of a run's settings
//   - Conversion to PathConfig for the model package
//
// There is no configuration file: Settings are filled from command-line
// flags or from the interactive UI.
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Mode: move
//	// Missing tags: "Unknown Artist" / "Unknown Album"
//	// No playlists, no cover art extraction
//
// # Transfer Mode
//
//	mode, err := config.ParseMode("copy")
//	if err != nil {
//	    // not copy or move
//	}
//	settings.Mode = mode
package config

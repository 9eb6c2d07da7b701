// Package config handles loading and parsing the partmart configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/partmart/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/partmart/config.toml
//   - API base: 127.0.0.1:8799
//   - State directory: ~/.local/share/partmart
//   - Default page: home
//   - Locale: en
//
// # TOML Format
//
// Example config.toml:
//
//	api_base = "api.partmart.example:443"
//	state_dir = "~/.local/share/partmart"
//	default_page = "home"
//	locale = "ar"
//
// All fields are optional. Tilde expansion is performed automatically for the
// state directory. The locale is restricted to "ar" and "en"; anything else
// falls back to "en".
//
// # Error Handling
//
// Missing config files are NOT an error - defaults are used instead, so the
// client works out-of-the-box. Unreadable or malformed files do fail Load:
// a config the user wrote but that cannot take effect should be loud.
package config

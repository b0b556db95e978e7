// Package config manages user-level settings stored at ~/.qscaffold/config.yaml.
// Values can be overridden with QSCAFFOLD_* environment variables, e.g.
// QSCAFFOLD_LOG_LEVEL=debug or QSCAFFOLD_MODES_CORDOVA_BIN=/opt/cordova/bin/cordova.
package config

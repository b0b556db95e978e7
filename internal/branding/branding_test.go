package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "qscaffold" {
		t.Errorf("CLIName() = %q, want %q", got, "qscaffold")
	}
	if got := DefaultProductName(); got != "Quasar App" {
		t.Errorf("DefaultProductName() = %q, want %q", got, "Quasar App")
	}
	if got := DefaultAppID(); got != "org.cordova.quasar.app" {
		t.Errorf("DefaultAppID() = %q, want %q", got, "org.cordova.quasar.app")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "QSCAFFOLD_HOME" {
		t.Errorf("EnvVar(home) = %q, want %q", got, "QSCAFFOLD_HOME")
	}
}

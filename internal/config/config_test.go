package config

import "testing"

func TestLoadEnvConfigDefaults(t *testing.T) {
	t.Setenv("FIREBASE_DATABASE_URL", "https://demo-project.firebaseio.com")
	t.Setenv("APP_PORT", "")
	t.Setenv("LOG_FILE_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FIREBASE_CREDENTIALS_FILE", "")
	t.Setenv("REPORT_CONFIG_PATH", "")

	if err := LoadEnvConfig(); err != nil {
		t.Fatalf("Failed to load env config: %v", err)
	}
	if DefaultEnvConfig.APP_PORT != "5000" {
		t.Errorf("Expected default port 5000, got '%s'", DefaultEnvConfig.APP_PORT)
	}
	if DefaultEnvConfig.LOG_LEVEL != "info" {
		t.Errorf("Expected default log level info, got '%s'", DefaultEnvConfig.LOG_LEVEL)
	}
	if DefaultEnvConfig.FIREBASE_CREDENTIALS_FILE != "serviceAccountKey.json" {
		t.Errorf("Expected default credentials file, got '%s'", DefaultEnvConfig.FIREBASE_CREDENTIALS_FILE)
	}
	if DefaultEnvConfig.FIREBASE_DATABASE_URL != "https://demo-project.firebaseio.com" {
		t.Errorf("Unexpected database URL '%s'", DefaultEnvConfig.FIREBASE_DATABASE_URL)
	}
}

func TestLoadEnvConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("FIREBASE_DATABASE_URL", "")

	if err := LoadEnvConfig(); err == nil {
		t.Fatal("Expected an error when FIREBASE_DATABASE_URL is unset")
	}
}

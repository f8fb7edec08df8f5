package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %s", cfg.AppPort)
	}
	if cfg.ParseAllConcurrency != 4 {
		t.Errorf("ParseAllConcurrency = %d", cfg.ParseAllConcurrency)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("PARSE_ALL_CONCURRENCY", "2")
	t.Setenv("RULES_CONFIG", "/etc/rules.yaml")

	cfg := Load()
	if cfg.AppPort != "9000" || cfg.ParseAllConcurrency != 2 || cfg.RulesConfig != "/etc/rules.yaml" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.AppPort = "nope" }},
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"empty blob dir", func(c *Config) { c.BlobDir = "" }},
		{"zero concurrency", func(c *Config) { c.ParseAllConcurrency = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Load()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("want validation error")
			}
		})
	}
}

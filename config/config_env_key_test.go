package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"sqlite": map[string]any{
			"busyTimeout": "5s",
			"foreignKeys": true,
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
		"seed": map[string]any{
			"fixturesPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SQLITE_BUSYTIMEOUT", want: "sqlite.busyTimeout"},
		{envKey: "SQLITE_FOREIGNKEYS", want: "sqlite.foreignKeys"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "SEED_FIXTURESPATH", want: "seed.fixturesPath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

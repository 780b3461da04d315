package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"session": map[string]any{
			"heartbeatInterval": "25s",
			"purgeInterval":     "1h",
		},
		"catalog": map[string]any{
			"featuredLimit": 4,
		},
		"auth": map[string]any{
			"adminEmails": []string{},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SESSION_PURGEINTERVAL", want: "session.purgeInterval"},
		{envKey: "SESSION_HEARTBEATINTERVAL", want: "session.heartbeatInterval"},
		{envKey: "CATALOG_FEATUREDLIMIT", want: "catalog.featuredLimit"},
		{envKey: "AUTH_ADMINEMAILS", want: "auth.adminEmails"},
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

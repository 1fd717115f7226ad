package postgres_test

import (
	"bookit/infras/postgres"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		host        string
		dbName      string
		sslMode     string
		wantSSLMode string
	}{
		{
			name:        "plain credentials",
			username:    "bookit",
			password:    "bookit",
			host:        "localhost",
			dbName:      "bookit",
			sslMode:     "require",
			wantSSLMode: "require",
		},
		{
			name:        "password with reserved characters",
			username:    "svc@bookit",
			password:    "p@ss:w/rd#1?&x=y",
			host:        "db.internal",
			dbName:      "bookit",
			wantSSLMode: "disable",
		},
		{
			name:        "ipv6 host",
			username:    "bookit",
			password:    "secret",
			host:        "::1",
			dbName:      "bookit",
			wantSSLMode: "disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := postgres.DSN(tt.username, tt.password, tt.host, "5432", tt.dbName, tt.sslMode)

			u, err := url.Parse(dsn)
			require.NoError(t, err)

			password, ok := u.User.Password()
			require.True(t, ok)

			assert.Equal(t, "postgres", u.Scheme)
			assert.Equal(t, tt.username, u.User.Username())
			assert.Equal(t, tt.password, password)
			assert.Equal(t, tt.host, u.Hostname())
			assert.Equal(t, "5432", u.Port())
			assert.Equal(t, "/"+tt.dbName, u.Path)
			assert.Equal(t, url.Values{"sslmode": {tt.wantSSLMode}}, u.Query())
		})
	}
}

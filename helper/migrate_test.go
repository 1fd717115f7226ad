package helper_test

import (
	"bookit/config"
	"bookit/helper"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "dev_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Username = "bookit"
	cfg.DB.Postgres.Write.Password = "s3cr&t#pw"
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "bookit"

	u, err := url.Parse(helper.DatabaseURL(cfg))
	require.NoError(t, err)

	password, _ := u.User.Password()
	assert.Equal(t, "s3cr&t#pw", password)
	assert.Equal(t, "/dev_bookit", u.Path)
	assert.Equal(t, "schema_migrations", u.Query().Get("x-migrations-table"))
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}

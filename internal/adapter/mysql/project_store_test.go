package mysql_test

import (
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	"taxi-zebra/internal/adapter/mysql"
)

func TestPrepareDSN(t *testing.T) {
	dsn, err := mysql.PrepareDSN("user:pass@tcp(db:3306)/taxi")
	require.NoError(t, err)

	cfg, err := gomysql.ParseDSN(dsn)
	require.NoError(t, err)
	require.True(t, cfg.ParseTime)
	require.True(t, cfg.MultiStatements)
	require.Equal(t, "taxi", cfg.DBName)
	require.Equal(t, "db:3306", cfg.Addr)

	_, err = mysql.PrepareDSN("")
	require.Error(t, err)
	_, err = mysql.PrepareDSN("not a dsn")
	require.Error(t, err)
}

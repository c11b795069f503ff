package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func embeddedCatalog(t *testing.T) *Catalog {
	t.Helper()
	tables, err := LoadEmbedded()
	require.NoError(t, err)
	c, err := NewCatalog(DefaultReference, tables...)
	require.NoError(t, err)
	return c
}

func embeddedTable(t *testing.T, locale string) *Table {
	t.Helper()
	table, err := embeddedCatalog(t).Lookup(locale)
	require.NoError(t, err)
	return table
}

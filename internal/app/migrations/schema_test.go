package migrations

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Student columns must accept every value form validation lets through:
// names have no upper length and ages span the whole Go int range.
func TestInitSchema_StudentColumns(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)

	table := regexp.MustCompile(`(?is)CREATE TABLE IF NOT EXISTS student \((.*?)\);`).FindSubmatch(content)
	require.Len(t, table, 2)
	columns := string(table[1])

	assert.Regexp(t, `(?i)\bsid\s+VARCHAR\(4\)\s+PRIMARY KEY`, columns)
	assert.Regexp(t, `(?i)\bname\s+TEXT\b`, columns)
	assert.Regexp(t, `(?i)\bage\s+BIGINT\b`, columns)
}

//go:build unit

package policy_test

import (
	"os"
	"path/filepath"
	"testing"

	"parkdesk/internal/pkg/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePolicyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		p, err := policy.Load("")
		require.NoError(t, err)
		assert.Equal(t, policy.Default(), p)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writePolicyFile(t, "lot_name = \"North Garage\"\nmin_slots = 2\nmax_slots = 20\n")

		p, err := policy.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "North Garage", p.LotName)
		assert.Equal(t, 2, p.MinSlots)
		assert.Equal(t, 20, p.MaxSlots)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := writePolicyFile(t, "lot_name = \"South Lot\"\n")

		p, err := policy.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "South Lot", p.LotName)
		assert.Equal(t, 4, p.MinSlots)
		assert.Equal(t, 36, p.MaxSlots)
	})

	t.Run("inverted bounds rejected", func(t *testing.T) {
		path := writePolicyFile(t, "min_slots = 10\nmax_slots = 5\n")

		_, err := policy.Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file rejected", func(t *testing.T) {
		_, err := policy.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestAllowsCount(t *testing.T) {
	p := policy.Default()

	cases := []struct {
		count int
		want  bool
	}{
		{3, false},
		{4, true},
		{12, true},
		{36, true},
		{37, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, p.AllowsCount(c.count), "count %d", c.count)
	}
}

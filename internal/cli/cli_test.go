package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCooldownCmd(t *testing.T) {
	out, err := run(t, "cooldown", "300", "--haste", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "250.00s")
	assert.Contains(t, out, "4m 10s")

	_, err = run(t, "cooldown", "abc")
	assert.Error(t, err)

	_, err = run(t, "cooldown", "10", "--haste", "-5")
	assert.Error(t, err)

	_, err = run(t, "cooldown", "NaN")
	assert.Error(t, err)

	_, err = run(t, "cooldown", "10", "--haste", "NaN")
	assert.Error(t, err)
}

func TestSummonersCmd(t *testing.T) {
	out, err := run(t, "summoners", "--haste", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "SPELL")
	assert.Contains(t, out, "Flash")
	// Flash 300s at 100 haste
	assert.Contains(t, out, "2m 30s")
}

func TestChampionCmd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "champions"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "champions", "Annie.json"), []byte(`{
		"data": {"Annie": {
			"id": "Annie", "name": "Annie", "title": "the Dark Child",
			"passive": {"name": "Pyromania"},
			"spells": [
				{"id": "AnnieQ", "name": "Disintegrate", "cooldown": [4, 4, 4, 4, 4]},
				{"id": "AnnieW", "name": "Incinerate", "cooldown": [8, 8, 8, 8, 8]},
				{"id": "AnnieE", "name": "Molten Shield", "cooldown": [14, 13, 12, 11, 10]},
				{"id": "AnnieR", "name": "Summon: Tibbers", "cooldown": [130, 115, 100]}
			]
		}}
	}`), 0o644))

	out, err := run(t, "champion", "Annie", "--data", dir, "--level", "9", "--haste", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "the Dark Child")
	assert.Contains(t, out, "Pyromania")
	assert.Contains(t, out, "Summon: Tibbers")
	// R clamps to rank 3: 100 * 100/130
	assert.Contains(t, out, "1m 16s")

	_, err = run(t, "champion", "Nobody", "--data", dir)
	assert.Error(t, err)
}

func TestSummonersCmd_ColoredHeaderAligned(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"summoners"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Greater(t, len(lines), 1)
	assert.Contains(t, lines[0], "\x1b[")
	header := ansi.ReplaceAllString(lines[0], "")
	// Barrier is first by name; KEY must start in the same column.
	assert.Equal(t, strings.Index(lines[1], "D"), strings.Index(header, "KEY"))
}

func TestRanks(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ranks(3, 3, 0))
	assert.Equal(t, []int{3}, ranks(5, 3, 7))
	assert.Equal(t, []int{2}, ranks(5, 5, 2))
	assert.Equal(t, []int{1, 2}, ranks(2, 5, 0))
	assert.Nil(t, ranks(0, 5, 0))
}

package dupfinder

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeScanDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestRootReportsDuplicates(t *testing.T) {
	dir := writeScanDir(t, map[string]string{
		"a.txt": "dup\n",
		"b.txt": "dup\n",
	})

	out, err := execute(t, "", dir, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Keeping: "+filepath.Join(dir, "a.txt"))
	assert.Contains(t, out, "duplicate: "+filepath.Join(dir, "b.txt"))
	assert.Contains(t, out, "1 duplicate files identified")

	// Report mode leaves the filesystem untouched
	assert.FileExists(t, filepath.Join(dir, "b.txt"))
}

func TestRootEmptyDirectory(t *testing.T) {
	out, err := execute(t, "", t.TempDir(), "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "No duplicate files found")
}

func TestRootMissingFolder(t *testing.T) {
	_, err := execute(t, "", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOLDER_NOT_FOUND")
}

func TestRootRejectsOutOfRangeSimilarity(t *testing.T) {
	dir := writeScanDir(t, map[string]string{"a.txt": "x\n"})

	_, err := execute(t, "", dir, "--similarity", "1.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "THRESHOLD_RANGE")
}

func TestRootRequiresFolderArg(t *testing.T) {
	_, err := execute(t, "")
	assert.Error(t, err)
}

func TestRootDeleteConfirmed(t *testing.T) {
	dir := writeScanDir(t, map[string]string{
		"a.txt": "dup\n",
		"b.txt": "dup\n",
	})

	out, err := execute(t, "yes\n", dir, "--delete", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted: "+filepath.Join(dir, "b.txt"))
	assert.Contains(t, out, "1 of 1 duplicate files removed")

	assert.FileExists(t, filepath.Join(dir, "a.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "b.txt"))
}

func TestRootDeleteDeclined(t *testing.T) {
	dir := writeScanDir(t, map[string]string{
		"a.txt": "dup\n",
		"b.txt": "dup\n",
	})

	out, err := execute(t, "no\n", dir, "--delete", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborting deletion.")

	// Declined confirmation means nothing was scanned or removed
	assert.NotContains(t, out, "Keeping:")
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
	assert.FileExists(t, filepath.Join(dir, "b.txt"))
}

func TestRootSimilarityGroupsNearDuplicates(t *testing.T) {
	dir := writeScanDir(t, map[string]string{
		"a.txt": "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nl10\n",
		"b.txt": "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nX\n",
	})

	out, err := execute(t, "", dir, "--similarity", "0.85", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Keeping: "+filepath.Join(dir, "a.txt"))
	assert.Contains(t, out, "duplicate: "+filepath.Join(dir, "b.txt"))
}

func TestRootWritesReport(t *testing.T) {
	dir := writeScanDir(t, map[string]string{
		"a.txt": "dup\n",
		"b.txt": "dup\n",
	})
	reportPath := filepath.Join(t.TempDir(), "scan.json")

	_, err := execute(t, "", dir, "--report", reportPath, "--no-color")
	require.NoError(t, err)
	assert.FileExists(t, reportPath)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"identified\": 1")
}

func TestRootConfigFileDefaults(t *testing.T) {
	dir := writeScanDir(t, map[string]string{
		"a.txt": "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nl10\n",
		"b.txt": "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nX\n",
	})
	cfgPath := filepath.Join(t.TempDir(), "dupfinder.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("similarity = 0.85\n"), 0644))

	out, err := execute(t, "", dir, "--config", cfgPath, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "duplicate: "+filepath.Join(dir, "b.txt"))
}

func TestRootFlagOverridesConfig(t *testing.T) {
	dir := writeScanDir(t, map[string]string{
		"a.txt": "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nl10\n",
		"b.txt": "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nX\n",
	})
	cfgPath := filepath.Join(t.TempDir(), "dupfinder.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("similarity = 0.5\n"), 0644))

	// The explicit flag disables the similarity phase entirely
	out, err := execute(t, "", dir, "--config", cfgPath, "--similarity", "1.0", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "No duplicate files found")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dupfinder version")
}

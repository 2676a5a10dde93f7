package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dupfinder/pkg/errors"
	"github.com/arthur-debert/dupfinder/pkg/types"
)

func sampleResult() *types.ScanResult {
	result := types.NewScanResult()
	result.Groups["/scan/a.txt"] = &types.DuplicateGroup{
		Keeper:    "/scan/a.txt",
		Redundant: []string{"/scan/b.txt"},
	}
	return result
}

func TestBuild(t *testing.T) {
	threshold := 0.9
	rep := Build(sampleResult(), "/scan", &threshold, nil)

	assert.Equal(t, "/scan", rep.Folder)
	assert.Equal(t, 1, rep.Identified)
	require.Len(t, rep.Groups, 1)
	assert.Equal(t, "/scan/a.txt", rep.Groups[0].Keeper)
	assert.Nil(t, rep.Removed)
}

func TestBuildWithPurgeCounts(t *testing.T) {
	purge := &types.PurgeResult{
		Identified: 1,
		Removed:    0,
		Failures:   []types.RemovalFailure{{Path: "/scan/b.txt", Reason: "denied"}},
	}
	rep := Build(sampleResult(), "/scan", nil, purge)

	require.NotNil(t, rep.Removed)
	assert.Equal(t, 0, *rep.Removed)
	require.NotNil(t, rep.Failed)
	assert.Equal(t, 1, *rep.Failed)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Write(path, Build(sampleResult(), "/scan", nil, nil)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "/scan", decoded.Folder)
	require.Len(t, decoded.Groups, 1)
	assert.Equal(t, []string{"/scan/b.txt"}, decoded.Groups[0].Redundant)
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Write(path, Build(sampleResult(), "/scan", nil, nil)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.Identified)
}

func TestWriteXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	threshold := 0.8
	require.NoError(t, Write(path, Build(sampleResult(), "/scan", &threshold, nil)))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromFile(path))

	root := doc.SelectElement("report")
	require.NotNil(t, root)
	assert.Equal(t, "/scan", root.SelectAttrValue("folder", ""))
	assert.Equal(t, "0.8", root.SelectAttrValue("threshold", ""))

	groups := root.SelectElement("groups")
	require.NotNil(t, groups)
	require.Len(t, groups.SelectElements("group"), 1)
	keeper := groups.SelectElements("group")[0].SelectElement("keeper")
	require.NotNil(t, keeper)
	assert.Equal(t, "/scan/a.txt", keeper.Text())
}

func TestWriteUnsupportedExtension(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "out.csv"), Build(sampleResult(), "/scan", nil, nil))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestWriteUnwritablePath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing-dir", "out.json"),
		Build(sampleResult(), "/scan", nil, nil))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReportWrite))
}

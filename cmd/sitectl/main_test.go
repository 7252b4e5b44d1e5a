package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goliatone/go-sitecontent/components/sitecontent"
	"github.com/goliatone/go-sitecontent/internal/config"
)

func TestExportThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yml")
	export := &exportCmd{Output: path}
	require.NoError(t, export.Run(config.Default(), zap.NewNop()))

	validate := &validateCmd{Path: path}
	require.NoError(t, validate.Run(config.Default(), zap.NewNop()))

	initial, err := loadInitial(path)
	require.NoError(t, err)
	require.NotNil(t, initial)
	assert.Equal(t, sitecontent.DefaultContent().Hero.Title, initial.Hero.Title)
}

func TestValidateRejectsBrokenDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	content := sitecontent.DefaultContent()
	content.ThreeRoads.Roads = content.ThreeRoads.Roads[:2]
	require.NoError(t, sitecontent.WriteContentFile(path, sitecontent.NewContentDocument(content, 1)))

	err := (&validateCmd{Path: path}).Run(config.Default(), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is invalid")
}

func TestLoadInitialMissingFileUsesDefaults(t *testing.T) {
	initial, err := loadInitial(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Nil(t, initial)
}

func TestEncodeToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeTo(&buf, "json", sitecontent.NewContentDocument(sitecontent.DefaultContent(), 3)))
	assert.Contains(t, buf.String(), `"revision": 3`)
}

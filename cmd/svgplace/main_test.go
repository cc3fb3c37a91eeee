package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/mindera-gaming/svg-placer/geom"
	"github.com/mindera-gaming/svg-placer/layout"
	"github.com/mindera-gaming/svg-placer/svg"
)

const sampleDocument = `<svg xmlns="http://www.w3.org/2000/svg">
  <path id="box" d="M 0 0 H 4 V 6 H 0 Z"/>
  <path id="copy" d="M 0 0 H 4 V 6 H 0 Z"/>
  <path id="bar" d="M 10 10 h 2"/>
</svg>`

const quietConfig = `
[parser]
generate_ids = false

[log]
level = "error"
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	fileName := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fileName, []byte(contents), 0o600))

	return fileName
}

func TestRunAt(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.svg", sampleDocument)
	cfg := writeFile(t, dir, "config.toml", quietConfig)
	out := filepath.Join(dir, "out.svg")
	report := filepath.Join(dir, "report.yaml")

	err := run([]string{"-config", cfg, "-at", "10,10", "-id", "box", "-out", out, "-report", report, input}, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	paths, err := svg.ParsePath(data, svg.DefaultParserOptions())
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, geom.Point{X: 10, Y: 10}, paths[0].Center())
	assert.Equal(t, geom.Point{X: 2, Y: 3}, paths[1].Center())
	assert.Equal(t, geom.Point{X: 11, Y: 10}, paths[2].Center())

	data, err = os.ReadFile(report)
	require.NoError(t, err)
	var results []layout.Result
	require.NoError(t, yaml.Unmarshal(data, &results))
	assert.Equal(t, []layout.Result{{
		ID:     "box",
		From:   layout.Coord{X: 2, Y: 3},
		To:     layout.Coord{X: 10, Y: 10},
		Offset: layout.Coord{X: 8, Y: 7},
		Moved:  true,
	}}, results)
}

func TestRunPlanWithDedupe(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.svg", sampleDocument)
	cfg := writeFile(t, dir, "config.toml", quietConfig)
	plan := writeFile(t, dir, "plan.yaml", "all: {x: 0, y: 0}\n")

	var stdout bytes.Buffer
	err := run([]string{"-config", cfg, "-plan", plan, "-dedupe", input}, &stdout)
	require.NoError(t, err)

	paths, err := svg.ParsePath(stdout.Bytes(), svg.DefaultParserOptions())
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "box", paths[0].ID)
	assert.Equal(t, "bar", paths[1].ID)
	for _, p := range paths {
		assert.Equal(t, geom.Point{}, p.Center())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "in.svg", sampleDocument)
	cfg := writeFile(t, dir, "config.toml", quietConfig)

	tests := map[string][]string{
		"no input":       {"-at", "1,1"},
		"nothing to do":  {"-config", cfg, input},
		"plan and at":    {"-config", cfg, "-plan", "p.yaml", "-at", "1,1", input},
		"bad point":      {"-config", cfg, "-at", "1;1", input},
		"bad x":          {"-config", cfg, "-at", "a,1", input},
		"unknown id":     {"-config", cfg, "-at", "1,1", "-id", "ghost", input},
		"missing input":  {"-config", cfg, "-at", "1,1", filepath.Join(dir, "missing.svg")},
		"missing config": {"-config", filepath.Join(dir, "missing.toml"), "-at", "1,1", input},
		"unknown flag":   {"-rotate", input},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, run(args, &bytes.Buffer{}))
		})
	}
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord(" 1.5, -2 ")
	require.NoError(t, err)
	assert.Equal(t, layout.Coord{X: 1.5, Y: -2}, c)

	_, err = parseCoord("1,2,3")
	assert.Error(t, err)
	_, err = parseCoord("1,y")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	log := zap.New(core)

	assert.Equal(t, 0, exitCode(nil, log))
	assert.Equal(t, 0, logs.Len())

	assert.Equal(t, 1, exitCode(errors.New("expected exactly one input file"), log))
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "svgplace failed", entry.Message)
	assert.Equal(t, "expected exactly one input file", entry.ContextMap()["error"])
}

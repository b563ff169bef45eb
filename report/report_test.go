package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohline/pipeline"
	"github.com/katalvlaran/ohline/report"
	"github.com/katalvlaran/ohline/study"
	"github.com/katalvlaran/ohline/telegraph"
)

func TestSaveProfilePNG(t *testing.T) {
	par, err := pipeline.Calibrated(0.10688+0.5167i, 0.01256+0.00436i)
	require.NoError(t, err)
	profile, err := telegraph.Profile(par, 18.66, 4, telegraph.Grounded, telegraph.DefaultOptions())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "profile.png")
	require.NoError(t, report.SaveProfilePNG(path, "grounded section", profile))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "plot file must not be empty")

	assert.ErrorIs(t, report.SaveProfilePNG(path, "empty", nil), report.ErrEmptyProfile)
}

func TestWriteSectionTable(t *testing.T) {
	res := &study.Result{
		Sections: []study.SectionResult{
			{Length: 1000, Separation: 173.2, EMF: 18.9, Voltage: 18.9},
			{Length: 500, Separation: 300, EMF: 9.1, Voltage: 4.55},
		},
		Total: 23.45,
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteSectionTable(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "Section | Length (m)")
	assert.Contains(t, out, "173.2")
	assert.Contains(t, out, "18.90")
	assert.Contains(t, out, "Total length: 1.50 km")
	assert.Contains(t, out, "LOW")
}
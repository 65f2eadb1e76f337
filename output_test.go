package commah

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	p := planck15(t)
	table := &Table{
		MAH: true,
		COM: true,
		Rows: []Row{
			{Zi: 0, Mi: 1e12, Z: 0, DMdt: 25.5, Mz: 1e12,
				C: 8.1, Sigma: 2.0, Nu: 0.84, Zf: 2.7},
			{Zi: 0, Mi: 1e12, Z: 1, DMdt: 80.2, Mz: 5e11,
				C: -1, Sigma: -1, Nu: -1, Zf: -1, Degenerate: true},
		},
	}

	buf := new(bytes.Buffer)
	require.NoError(t, table.Write(buf, p))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// One cosmology line, four column description lines, two rows.
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "# Cosmology (flat) Om:0.309"))
	for _, line := range lines[1:5] {
		assert.True(t, strings.HasPrefix(line, "#"))
	}
	assert.Equal(t, "0, 1e+12, 0, 25.5, 1e+12, 8.1, 2, 0.84, 2.7", lines[5])
	assert.Contains(t, lines[6], "-1, -1, -1, -1")
}

func TestWriteTableMAHOnly(t *testing.T) {
	p := planck15(t)
	table := &Table{
		MAH:  true,
		Rows: []Row{{Zi: 0, Mi: 1e12, Z: 0, DMdt: 25.5, Mz: 1e12}},
	}

	buf := new(bytes.Buffer)
	require.NoError(t, table.Write(buf, p))

	assert.Contains(t, buf.String(), "Accretion")
	assert.NotContains(t, buf.String(), "concentration")
	assert.Contains(t, buf.String(), "0, 1e+12, 0, 25.5, 1e+12\n")
}

func TestWriteTableCOMOnly(t *testing.T) {
	p := planck15(t)
	table := &Table{
		COM: true,
		Rows: []Row{
			{Zi: 0, Mi: 1e12, Z: 0, C: 8.1, Sigma: 2.0, Nu: 0.84, Zf: 2.7},
		},
	}

	buf := new(bytes.Buffer)
	require.NoError(t, table.Write(buf, p))

	assert.Contains(t, buf.String(), "concentration")
	assert.Contains(t, buf.String(), "0, 1e+12, 0, 8.1, 2, 0.84, 2.7\n")
}

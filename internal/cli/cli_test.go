package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := RootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTravelCmd(t *testing.T) {
	out, err := execute(t, "travel", "Plano Piloto", "Taguatinga")
	require.NoError(t, err)
	assert.Contains(t, out, "40 min (limit 80)")

	out, err = execute(t, "travel", "Plano Piloto", "Formosa (GO)")
	require.NoError(t, err)
	assert.Contains(t, out, "95 min")

	_, err = execute(t, "travel", "Atlantis", "Taguatinga")
	assert.Error(t, err)
}

func TestRegionsCmd(t *testing.T) {
	out, err := execute(t, "regions", "--state", "GO")
	require.NoError(t, err)
	assert.Contains(t, out, "Formosa (GO)")
	assert.NotContains(t, out, "Taguatinga")

	_, err = execute(t, "regions", "--state", "SP")
	assert.Error(t, err)
}

func TestValidateCmd(t *testing.T) {
	out, err := execute(t, "validate", "V2", "P2")
	require.NoError(t, err)
	assert.Contains(t, out, "blocked")
	assert.Contains(t, out, "REGION_NOT_AUTHORIZED")

	out, err = execute(t, "validate", "V3", "P2")
	require.NoError(t, err)
	assert.Contains(t, out, "allowed")
}

func TestRankCmd(t *testing.T) {
	out, err := execute(t, "rank", "F1", "--limit", "3")
	require.NoError(t, err)

	v4 := strings.Index(out, "V4")
	v3 := strings.Index(out, "V3")
	v2 := strings.Index(out, "V2")
	require.True(t, v4 >= 0 && v3 >= 0 && v2 >= 0, out)
	assert.Less(t, v4, v3)
	assert.Less(t, v3, v2)

	_, err = execute(t, "rank", "F404")
	assert.Error(t, err)
}

func TestRosterCmd(t *testing.T) {
	out, err := execute(t, "roster", "--crew", "EVEN")
	require.NoError(t, err)
	assert.Contains(t, out, "V1")
	assert.NotContains(t, out, "V2")
}

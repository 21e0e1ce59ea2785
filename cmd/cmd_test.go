package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate-normalizer/domain"
)

const sampleRates = `[
	{"termMonths": 66, "apr": 5.99, "vehicle_condition": "new", "loan_type": "purchase", "source": "SCCU"},
	{"termMin": 37, "termMax": 60, "apr": 4.29, "vehicle_condition": "new", "source": "NFCU"},
	{"apr": 3.5, "source": "broken"}
]`

// execRoot runs the root command with args and returns stdout and stderr.
func execRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("RATENORM_REDIS_ADDR", "")
	t.Setenv("RATENORM_LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	root := rootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInfo_Text(t *testing.T) {
	stdout, _, err := execRoot(t, "", "info", "48", "66", "75", "84")
	require.NoError(t, err)

	want := "48 months -> 48 months (distance: 0)\n" +
		"66 months -> 60 months (distance: 6)\n" +
		"75 months -> 72 months (distance: 3)\n" +
		"84 months -> 84 months (distance: 0)\n"
	assert.Equal(t, want, stdout)
}

func TestInfo_JSON(t *testing.T) {
	stdout, _, err := execRoot(t, "", "info", "--json", "66")
	require.NoError(t, err)

	var infos []domain.NormalizationInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))
	assert.Equal(t, []domain.NormalizationInfo{{Original: 66, Normalized: 60, Distance: 6, WasModified: true}}, infos)
}

func TestInfo_InvalidTerm(t *testing.T) {
	_, _, err := execRoot(t, "", "info", "sixty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid term")

	_, _, err = execRoot(t, "", "info", "--", "-1")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestNormalize_Stdin(t *testing.T) {
	stdout, _, err := execRoot(t, sampleRates, "normalize", "--compact")
	require.NoError(t, err)

	var result domain.BatchResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Normalized, 2)
	assert.Equal(t, "60 Months", result.Normalized[0]["term_label"])
	assert.Equal(t, "36-60 Months", result.Normalized[1]["term_label"])
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, 2, result.Rejected[0].Index)
}

func TestNormalize_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"termMonths": 75}]`), 0o600))

	stdout, _, err := execRoot(t, "", "normalize", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"term_label": "72 Months"`)
}

func TestNormalize_Strict(t *testing.T) {
	_, _, err := execRoot(t, sampleRates, "normalize", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 records rejected")
}

func TestNormalize_InvalidInput(t *testing.T) {
	_, _, err := execRoot(t, `{"termMonths": 60}`, "normalize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a JSON array")
}

func TestTerms(t *testing.T) {
	stdout, _, err := execRoot(t, "", "terms")
	require.NoError(t, err)
	assert.Equal(t, "36\n48\n60\n72\n84\n", stdout)
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapengine/internal/logging"
)

const sampleCatalogYAML = `version: "test-2024"
rules:
  - name: desc-wages
    signal: description
    direction: income
    effect: countable
    category: WAGES_OR_PAYROLL
    income_type: EARNED_INCOME
    reason: EARNED_INCOME_SOURCE
    confidence: high
    keywords: [payroll, paycheck]
  - name: pfc-medical
    signal: category
    direction: expense
    effect: review
    category: MEDICAL_EXPENSE
    deduction_type: MEDICAL
    reason: MEDICAL_DEDUCTION_ONLY_IF_ELDERLY_OR_DISABLED
    confidence: high
    category_primary: [MEDICAL]
`

func TestStoreLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalogYAML), 0o600))

	mock := &logging.MockLogger{}
	c, err := NewStore(path, mock).Load()
	require.NoError(t, err)

	assert.Equal(t, "test-2024", c.Version())
	assert.Equal(t, 2, c.Len())
	require.Len(t, c.Rules(SignalDescription), 1)
	assert.Equal(t, "desc-wages", c.Rules(SignalDescription)[0].Name)
	assert.Equal(t, EffectReview, c.Rules(SignalCategory)[0].Effect)
}

func TestStoreEmptyPathUsesBuiltins(t *testing.T) {
	c, err := NewStore("", &logging.MockLogger{}).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, c.Version())
}

func TestStoreMissingFileFallsBack(t *testing.T) {
	mock := &logging.MockLogger{}
	c, err := NewStore(filepath.Join(t.TempDir(), "nope.yaml"), mock).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, c.Version())

	// A silent fallback would hide a typo'd path from operators.
	require.NotEmpty(t, mock.Entries)
	assert.Equal(t, "WARN", mock.Entries[0].Level)
}

func TestStoreMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [not: a scalar"), 0o600))

	_, err := NewStore(path, &logging.MockLogger{}).Load()
	assert.Error(t, err)
}

func TestStoreInvalidRulesFail(t *testing.T) {
	bad := `version: "v1"
rules:
  - name: broken
    signal: description
    direction: income
    effect: countable
    category: X
    confidence: high
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o600))

	_, err := NewStore(path, &logging.MockLogger{}).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keywords")
}

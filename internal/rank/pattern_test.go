package rank

import (
	"testing"

	"job-monitor/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePatternSubstring(t *testing.T) {
	p, err := CompilePattern("machine learning")
	require.NoError(t, err)
	assert.True(t, p.Match("senior machine learning engineer"))
	assert.False(t, p.Match("machine operator"))
}

func TestCompilePatternRegex(t *testing.T) {
	p, err := CompilePattern(`ml.engineer|mlops`)
	require.NoError(t, err)
	assert.True(t, p.Match("ml engineer"))
	assert.True(t, p.Match("mlops lead"))
	assert.False(t, p.Match("sales engineer"))
}

func TestCompilePatternRegexCaseInsensitive(t *testing.T) {
	p, err := CompilePattern(`staff.engineer`)
	require.NoError(t, err)
	assert.True(t, p.Match("Staff Engineer"))
}

func TestCompilePatternMalformed(t *testing.T) {
	_, err := CompilePattern(`ml(engineer`)
	require.Error(t, err)
}

func TestCompilePatternEmpty(t *testing.T) {
	_, err := CompilePattern("  ")
	require.Error(t, err)
}

func TestPolicyFromConfigRejectsBadPattern(t *testing.T) {
	var cfg config.Config
	cfg.TitlePatterns.HighPriority = []string{"fine", `broken[`}
	_, err := PolicyFromConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken[")
}

func TestPolicyFromConfigLowersKeywords(t *testing.T) {
	var cfg config.Config
	cfg.RequiredKeywords = []string{"Python", " PyTorch "}
	cfg.Locations.Exclude = []string{"Germany"}
	p, err := PolicyFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "pytorch"}, p.RequiredKeywords)
	assert.Equal(t, []string{"germany"}, p.ExcludedLocations)
}

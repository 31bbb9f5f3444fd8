package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/syskit/pkg/sys"
)

func Test_ParseConfig_Accepts_Comments_And_Trailing_Commas(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig([]byte(`{
		// default destination for --report
		"report_path": "/tmp/sk-report.txt",
		"retry_interrupts": false,
		"max_retry_attempts": 3, // trailing comma below is fine too
	}`))

	require.NoError(t, err)
	require.Equal(t, "/tmp/sk-report.txt", cfg.ReportPath)
	require.NotNil(t, cfg.RetryInterrupts)
	require.False(t, *cfg.RetryInterrupts)
	require.Equal(t, 3, cfg.MaxRetryAttempts)
}

func Test_ParseConfig_Rejects_Negative_Retry_Attempts(t *testing.T) {
	t.Parallel()

	_, err := parseConfig([]byte(`{"max_retry_attempts": -1}`))

	require.Error(t, err)
}

func Test_ParseConfig_Rejects_Malformed_Input(t *testing.T) {
	t.Parallel()

	_, err := parseConfig([]byte(`{"report_path": }`))

	require.Error(t, err)
}

func Test_MergeConfig_Overlay_Wins_Field_By_Field(t *testing.T) {
	t.Parallel()

	no := false
	base := config{ReportPath: "/base/report", MaxRetryAttempts: 5}
	overlay := config{RetryInterrupts: &no}

	merged := mergeConfig(base, overlay)

	require.Equal(t, "/base/report", merged.ReportPath)
	require.Equal(t, 5, merged.MaxRetryAttempts)
	require.NotNil(t, merged.RetryInterrupts)
	require.False(t, *merged.RetryInterrupts)
}

func Test_RetryPolicy_Keeps_Library_Defaults_When_Unset(t *testing.T) {
	t.Parallel()

	require.Equal(t, sys.DefaultRetry, config{}.retryPolicy())
}

func Test_RetryPolicy_Applies_Config_Overrides(t *testing.T) {
	t.Parallel()

	no := false
	cfg := config{RetryInterrupts: &no, MaxRetryAttempts: 7}

	policy := cfg.retryPolicy()

	require.False(t, policy.RetryInterrupts)
	require.Equal(t, 7, policy.MaxAttempts)
}

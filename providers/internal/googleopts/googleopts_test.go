package googleopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms/googleai"
)

func TestParseHarmThreshold(t *testing.T) {
	tests := []struct {
		in      string
		want    googleai.HarmBlockThreshold
		wantErr bool
	}{
		{in: "none", want: googleai.HarmBlockNone},
		{in: "BLOCK_ONLY_HIGH", want: googleai.HarmBlockOnlyHigh},
		{in: " medium_and_above ", want: googleai.HarmBlockMediumAndAbove},
		{in: "low_and_above", want: googleai.HarmBlockLowAndAbove},
		{in: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHarmThreshold(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommonOptions(t *testing.T) {
	opts, err := Common{HarmThreshold: "none", CredentialsFile: "/tmp/sa.json", REST: true}.Options()
	require.NoError(t, err)

	o := Apply(opts)
	assert.Equal(t, googleai.HarmBlockNone, o.HarmThreshold)
	assert.Len(t, o.ClientOptions, 2)

	_, err = Common{HarmThreshold: "bogus"}.Options()
	assert.Error(t, err)

	o = Apply(nil)
	assert.Equal(t, googleai.DefaultOptions().HarmThreshold, o.HarmThreshold)
}

package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TimohUSik/SkidkiSteamBot/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Bot token in path",
			input:  []byte("POST /bot1234567890:AAH_fCh0HamT7dbG5bFcvyTJOfz6jTa81vI/sendMessage HTTP/1.1"),
			output: []byte("POST /bot[MASKED]/sendMessage HTTP/1.1"),
		},
		{
			name:   "Token JSON field",
			input:  []byte(`{"token":"1234567890:abc","chat_id":1}`),
			output: []byte(`{"token":"[MASKED]","chat_id":1}`),
		},
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Nothing sensitive",
			input:  []byte(`{"app_id":730,"discount_percent":50}`),
			output: []byte(`{"app_id":730,"discount_percent":50}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

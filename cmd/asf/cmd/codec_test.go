package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ssargent/asfmeta/pkg/codecs"
	"github.com/ssargent/asfmeta/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCodecGetCommand(t *testing.T) {
	testCases := []struct {
		name string
		arg  string
		want string
	}{
		{name: "hex id", arg: "0x0003", want: "0x0003\tIEEE Float\n"},
		{name: "decimal id", arg: "3", want: "0x0003\tIEEE Float\n"},
		{name: "unregistered marker", arg: "0xFFFF", want: "0xFFFF\tUnregistered\n"},
		{name: "unknown id", arg: "0x05FF", want: "0x05FF\tUnknown\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := executeCommand(t, nil, "codec", "get", tc.arg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}

	t.Run("custom unknown label", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Output.UnknownLabel = "n/a"

		out, _, err := executeCommand(t, cfg, "codec", "get", "0x05FF")
		require.NoError(t, err)
		assert.Equal(t, "0x05FF\tn/a\n", out)
	})

	t.Run("yaml output reports miss", func(t *testing.T) {
		out, _, err := executeCommand(t, nil, "-o", "yaml", "codec", "get", "0x05FF")
		require.NoError(t, err)

		var res codecResult
		require.NoError(t, yaml.Unmarshal([]byte(out), &res))
		assert.Equal(t, codecResult{ID: 0x05FF, Name: "Unknown", Known: false}, res)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, _, err := executeCommand(t, nil, "codec", "get", "0x10000")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid codec id")
	})
}

func TestCodecListCommand(t *testing.T) {
	t.Run("text table", func(t *testing.T) {
		out, _, err := executeCommand(t, nil, "codec", "list")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, codecs.Default().Len()+1)
		assert.True(t, strings.HasPrefix(lines[0], "ID"))
		assert.Contains(t, lines[1], "Unknown Wave Format")
		assert.Contains(t, lines[len(lines)-1], "Unregistered")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := executeCommand(t, nil, "-o", "json", "codec", "list")
		require.NoError(t, err)

		var entries []codecs.Entry
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		assert.Equal(t, codecs.Default().Entries(), entries)
	})
}

func TestCodecSearchCommand(t *testing.T) {
	t.Run("multi word term", func(t *testing.T) {
		out, _, err := executeCommand(t, nil, "codec", "search", "windows", "media", "audio", "9")
		require.NoError(t, err)
		assert.Contains(t, out, "0x0161")
		assert.Contains(t, out, "Windows Media Audio 9 Lossless")
		assert.NotContains(t, out, "0x0001")
	})

	t.Run("no match", func(t *testing.T) {
		out, _, err := executeCommand(t, nil, "codec", "search", "no such codec")
		require.NoError(t, err)
		assert.Equal(t, "No codecs found\n", out)
	})

	t.Run("no match as json", func(t *testing.T) {
		out, _, err := executeCommand(t, nil, "-o", "json", "codec", "search", "no such codec")
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, out)
	})
}

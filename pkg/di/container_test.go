package di

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/ssargent/asfmeta/pkg/codecs"
	"github.com/ssargent/asfmeta/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	c := NewContainer()

	assert.Same(t, codecs.Default(), c.GetCodecTable())
	assert.Equal(t, config.DefaultConfig(), c.GetConfig())
	require.NotNil(t, c.GetLogger())
	assert.Equal(t, logrus.WarnLevel, c.GetLogger().GetLevel())
}

func TestContainer_Overrides(t *testing.T) {
	c := NewContainer()

	table := codecs.NewTable(map[codecs.ID]string{0x0001: "PCM"})
	c.SetCodecTable(table)
	assert.Same(t, table, c.GetCodecTable())

	cfg := config.DefaultConfig()
	cfg.Output.Format = config.FormatJSON
	c.SetConfig(cfg)
	assert.Equal(t, config.FormatJSON, c.GetConfig().Output.Format)
}

func TestContainer_ConfigureLogging(t *testing.T) {
	c := NewContainer()

	var buf bytes.Buffer
	c.SetLogOutput(&buf)

	require.NoError(t, c.ConfigureLogging("debug"))
	assert.Equal(t, logrus.DebugLevel, c.GetLogger().GetLevel())

	c.GetLogger().WithField("id", "0x0003").Debug("codec lookup")
	assert.Contains(t, buf.String(), "codec lookup")
	assert.Contains(t, buf.String(), "id=0x0003")

	err := c.ConfigureLogging("chatty")
	assert.Error(t, err)
	assert.Equal(t, logrus.DebugLevel, c.GetLogger().GetLevel())
}

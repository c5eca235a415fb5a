package android

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationFlagsNames(t *testing.T) {
	flags := FlagDebuggable | FlagAllowBackup | FlagTestOnly

	assert.Equal(t, []string{"ALLOW_BACKUP", "DEBUGGABLE", "TEST_ONLY"}, flags.Names())
	assert.Equal(t, "ALLOW_BACKUP|DEBUGGABLE|TEST_ONLY", flags.String())
	assert.True(t, flags.Has(FlagDebuggable))
	assert.True(t, flags.Has(FlagDebuggable|FlagTestOnly))
	assert.False(t, flags.Has(FlagDebuggable|FlagPersistent))

	assert.Empty(t, ApplicationFlags(0).Names())
	assert.Equal(t, "", ApplicationFlags(0).String())
}

func TestApplicationFlagsDistinct(t *testing.T) {
	var all ApplicationFlags
	for _, af := range applicationFlagAttrs {
		assert.Zero(t, all&af.flag, "%s overlaps another flag", af.name)
		all |= af.flag
	}

	assert.Len(t, all.Names(), 15)
}

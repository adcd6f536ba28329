package log

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetDebug(t *testing.T) {
	req := require.New(t)

	req.False(level.Enabled(zapcore.DebugLevel))
	SetDebug(true)
	req.True(level.Enabled(zapcore.DebugLevel))
	SetDebug(false)
	req.False(level.Enabled(zapcore.DebugLevel))
}

func TestWithFields(t *testing.T) {
	req := require.New(t)

	l := Log().WithField("a", 1).WithFields(Fields{"b": 2})
	req.Len(l.fields, 4)
	// parent is untouched
	req.Len(Log().fields, 0)
}

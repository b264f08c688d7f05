package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("debug")
	assert.Equal(t, zerolog.DebugLevel, Log.GetLevel())

	SetLevel("error")
	assert.Equal(t, zerolog.ErrorLevel, Log.GetLevel())

	SetLevel("verbose")
	assert.Equal(t, zerolog.InfoLevel, Log.GetLevel())
}

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_NivelConfigurado(t *testing.T) {
	cases := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"mayúsculas", "WARN", zerolog.WarnLevel},
		{"con espacios", " error ", zerolog.ErrorLevel},
		{"vacío cae a info", "", zerolog.InfoLevel},
		{"desconocido cae a info", "verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := New(Config{Env: "production", Level: tc.level})
			assert.Equal(t, tc.want, l.Zerolog().GetLevel())
		})
	}
}

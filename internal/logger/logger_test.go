package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "debug", want: DebugLevel},
		{in: "", want: InfoLevel},
		{in: "INFO", want: InfoLevel},
		{in: " warn ", want: WarnLevel},
		{in: "warning", want: WarnLevel},
		{in: "error", want: ErrorLevel},
		{in: "verbose", want: InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, InfoLevel)

	log.Debug("Store", "hidden", nil)
	log.Info("Store", "seeded", map[string]interface{}{"file": "default.json"})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &event))
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "Store", event["component"])
	assert.Equal(t, "seeded", event["message"])
	assert.Equal(t, "default.json", event["file"])
}

func TestZerologAdapter_Error(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, ErrorLevel)

	log.Warning("Loader", "skipped", nil)
	log.Error("Loader", errors.New("boom"), map[string]interface{}{"path": "a.json"})

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &event))
	assert.Equal(t, "error", event["level"])
	assert.Equal(t, "boom", event["error"])
	assert.Equal(t, "boom", event["message"])
	assert.Equal(t, "Loader", event["component"])
	assert.Equal(t, "a.json", event["path"])
}

func TestZerologAdapter_WarningAndFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, WarnLevel)

	log.Info("Controller", "hidden", nil)
	log.Warning("Controller", "unknown dictionary selected", map[string]interface{}{"name": "zz", "dir": "/d"})

	line := bytes.TrimSpace(buf.Bytes())
	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(line, &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, "unknown dictionary selected", event["message"])
	assert.Less(t, bytes.Index(line, []byte(`"dir"`)), bytes.Index(line, []byte(`"name"`)))
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Error("Store", nil, nil)
		log.Debug("Store", "nothing", map[string]interface{}{"k": 1})
	})
}

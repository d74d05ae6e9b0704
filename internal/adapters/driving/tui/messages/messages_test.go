package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToastLevel_String(t *testing.T) {
	tests := []struct {
		level    ToastLevel
		expected string
	}{
		{ToastInfo, "info"},
		{ToastSuccess, "success"},
		{ToastError, "error"},
		{ToastLevel(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestToastInfo_IsZeroValue(t *testing.T) {
	var msg ShowToast

	assert.Equal(t, ToastInfo, msg.Level)
}

package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueDateUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *time.Time
		wantErr bool
	}{
		{
			name: "date only becomes UTC midnight",
			raw:  `"2026-02-19"`,
			want: ptr(time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC)),
		},
		{
			name: "rfc3339",
			raw:  `"2026-02-19T14:30:00Z"`,
			want: ptr(time.Date(2026, time.February, 19, 14, 30, 0, 0, time.UTC)),
		},
		{
			name: "null means absent",
			raw:  `null`,
			want: nil,
		},
		{
			name: "empty string means absent",
			raw:  `""`,
			want: nil,
		},
		{
			name:    "garbage is rejected",
			raw:     `"next tuesday"`,
			wantErr: true,
		},
		{
			name:    "wrong type is rejected",
			raw:     `42`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DueDate
			err := json.Unmarshal([]byte(tt.raw), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, d.Ptr())
				return
			}
			require.NotNil(t, d.Ptr())
			assert.True(t, tt.want.Equal(*d.Ptr()))
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }

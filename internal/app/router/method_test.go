package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memomaker/internal/app/testutil"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    Method
		wantErr bool
	}{
		{input: "auto", want: MethodAuto},
		{input: "inline", want: MethodInline},
		{input: "upload", want: MethodUpload},
		{input: "AUTO", wantErr: true},
		{input: "stream", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMethod(t *testing.T) {
	cfg := DefaultConfig()
	rt, err := NewRouter(testutil.NewMockInferenceClient(), cfg, nil)
	require.NoError(t, err)

	tests := []struct {
		name      string
		sizeBytes int64
		requested Method
		want      Method
	}{
		{
			name:      "auto below threshold picks inline",
			sizeBytes: cfg.InlineThreshold - 1,
			requested: MethodAuto,
			want:      MethodInline,
		},
		{
			name:      "auto exactly at threshold picks upload",
			sizeBytes: cfg.InlineThreshold,
			requested: MethodAuto,
			want:      MethodUpload,
		},
		{
			name:      "auto above threshold picks upload",
			sizeBytes: cfg.InlineThreshold + 1,
			requested: MethodAuto,
			want:      MethodUpload,
		},
		{
			name:      "explicit inline kept for a large file",
			sizeBytes: cfg.InlineThreshold * 2,
			requested: MethodInline,
			want:      MethodInline,
		},
		{
			name:      "explicit upload kept for a small file",
			sizeBytes: 2048,
			requested: MethodUpload,
			want:      MethodUpload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rt.ResolveMethod(tt.sizeBytes, tt.requested))
		})
	}
}

func TestNewRouterConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default config is valid", cfg: DefaultConfig()},
		{
			name:    "zero min size rejected",
			cfg:     Config{MinFileSize: 0, MaxFileSize: 100, InlineThreshold: 10},
			wantErr: true,
		},
		{
			name:    "max not above min rejected",
			cfg:     Config{MinFileSize: 100, MaxFileSize: 100, InlineThreshold: 10},
			wantErr: true,
		},
		{
			name:    "zero threshold rejected",
			cfg:     Config{MinFileSize: 1, MaxFileSize: 100, InlineThreshold: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRouter(testutil.NewMockInferenceClient(), tt.cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewRouterRequiresClient(t *testing.T) {
	_, err := NewRouter(nil, DefaultConfig(), nil)
	assert.Error(t, err)
}

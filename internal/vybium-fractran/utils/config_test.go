package utils

import (
	"testing"
)

// TestDefaultConfig tests the DefaultConfig function
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if config.MaxRegs != 1000 {
		t.Errorf("MaxRegs = %d, want 1000", config.MaxRegs)
	}

	if config.MaxSteps != 0 {
		t.Error("MaxSteps should default to unbounded")
	}

	if config.Representation != ReprBasis {
		t.Errorf("Representation = %s, want %s", config.Representation, ReprBasis)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

// TestConfigValidate tests the Validate method
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name:      "valid default config",
			config:    DefaultConfig(),
			expectErr: false,
		},
		{
			name:      "zero registers",
			config:    DefaultConfig().WithMaxRegs(0),
			expectErr: true,
		},
		{
			name:      "unknown representation",
			config:    DefaultConfig().WithRepresentation("bigint"),
			expectErr: true,
		},
		{
			name:      "native representation",
			config:    DefaultConfig().WithRepresentation(ReprNative),
			expectErr: false,
		},
		{
			name:      "valid sha3",
			config:    DefaultConfig().WithHashFunction(HashSHA3),
			expectErr: false,
		},
		{
			name:      "valid sha256",
			config:    DefaultConfig().WithHashFunction(HashSHA256),
			expectErr: false,
		},
		{
			name:      "unknown hash",
			config:    DefaultConfig().WithHashFunction("md5"),
			expectErr: true,
		},
		{
			name:      "trace without step limit",
			config:    DefaultConfig().WithRecordTrace(true),
			expectErr: true,
		},
		{
			name:      "trace with step limit",
			config:    DefaultConfig().WithRecordTrace(true).WithMaxSteps(100),
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectErr && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

// TestConfigClone tests that Clone is independent of the original
func TestConfigClone(t *testing.T) {
	original := DefaultConfig().WithMaxSteps(10)
	clone := original.Clone()

	clone.WithMaxSteps(20).WithHashFunction(HashSHA3)

	if original.MaxSteps != 10 {
		t.Errorf("original MaxSteps changed to %d", original.MaxSteps)
	}
	if original.HashFunction != HashTip5 {
		t.Errorf("original HashFunction changed to %s", original.HashFunction)
	}
}

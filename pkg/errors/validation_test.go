package errors

import (
	"strings"
	"testing"
)

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single word", "Fruit", false},
		{"multiple words", "Things Found In A Kitchen", false},
		{"unicode", "Pokémon", false},

		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 300), true},
		{"tab", "Car\tBrand", true},
		{"newline", "Car\nBrand", true},
		{"null byte", "Car\x00Brand", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateCategory(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		ext     string
		wantErr bool
	}{
		{"txt", false},
		{".csv", false},
		{"TXT", false},
		{"json", true},
		{"", true},
		{".", true},
	}

	for _, tt := range tests {
		err := ValidateExtension(tt.ext, "txt", "csv")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateExtension(%q) error = %v, wantErr %v", tt.ext, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateExtension(%q) code = %v, want %v", tt.ext, GetCode(err), ErrCodeInvalidFormat)
		}
	}
}

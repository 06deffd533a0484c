package parser

import (
	"errors"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"123", 123},
		{"-100", -100},
		{" 42 ", 42},
		{"1000000", 1000000},
		{"50000.9", 50000},
		{"-2.7", -2},
		{"1.5E6", 1500000},
	}

	for _, tt := range tests {
		result, err := parseInt(tt.input)
		if err != nil {
			t.Errorf("parseInt(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("parseInt(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"3.2", 3.2},
		{"50", 50},
		{"-0.5", -0.5},
		{"1e3", 1000},
	}

	for _, tt := range tests {
		result, err := parseFloat(tt.input)
		if err != nil {
			t.Errorf("parseFloat(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("parseFloat(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"3.2%", 3.2},
		{"3.2", 3.2},
		{"2.5 %", 2.5},
		{"-0.4%", -0.4},
		{"0", 0},
	}

	for _, tt := range tests {
		result, err := parsePercent(tt.input)
		if err != nil {
			t.Errorf("parsePercent(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("parsePercent(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestParsePercentIdempotent(t *testing.T) {
	first, err := parsePercent("3.2%")
	if err != nil {
		t.Fatalf("parsePercent failed: %v", err)
	}
	second, err := parsePercent("3.2")
	if err != nil {
		t.Fatalf("parsePercent failed: %v", err)
	}
	if first != second {
		t.Errorf("text and numeric percentages differ: %v vs %v", first, second)
	}
}

func TestParseInvalidNumbers(t *testing.T) {
	inputs := []string{"n/a", "12abc", "NaN", "Inf", "%", "1,000"}

	for _, in := range inputs {
		if _, err := parseFloat(in); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("parseFloat(%q) error = %v, expected ErrInvalidNumber", in, err)
		}
		if _, err := parseInt(in); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("parseInt(%q) error = %v, expected ErrInvalidNumber", in, err)
		}
	}

	if _, err := parseInt("1e30"); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("parseInt out of range error = %v, expected ErrInvalidNumber", err)
	}
}

package validator

import (
	"strings"
	"testing"
)

type sample struct {
	Name     string  `validate:"required,notblank"`
	Category string  `validate:"required,category"`
	Cashback float64 `validate:"gte=0,lte=1"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{name: "valid", in: sample{Name: "Gold", Category: "fuel", Cashback: 0.1}},
		{name: "blank name", in: sample{Name: "   ", Category: "fuel"}, wantErr: "Name must not be blank"},
		{name: "missing name", in: sample{Category: "fuel"}, wantErr: "Name is required"},
		{name: "unknown category", in: sample{Name: "Gold", Category: "spaceflight"}, wantErr: `unknown category "spaceflight"`},
		{name: "rate out of range", in: sample{Name: "Gold", Category: "fuel", Cashback: 5}, wantErr: "Cashback is out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

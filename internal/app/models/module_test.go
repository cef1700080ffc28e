package models

import "testing"

func TestModuleEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Module
		want bool
	}{
		{
			name: "same code, different display data",
			a:    Module{Code: "CS101", Name: "Intro to Programming", Mandatory: true},
			b:    Module{Code: "CS101", Name: "Introduction to Computer Science", Mandatory: false},
			want: true,
		},
		{
			name: "different code",
			a:    Module{Code: "CS101", Name: "Intro to Programming"},
			b:    Module{Code: "CS102", Name: "Data Structures"},
			want: false,
		},
		{
			name: "same code, different storage ids",
			a:    Module{ID: 1, Code: "CS101"},
			b:    Module{ID: 42, Code: "CS101"},
			want: true,
		},
		{
			name: "codes are case sensitive",
			a:    Module{Code: "CS101"},
			b:    Module{Code: "cs101"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			// Equality is symmetric.
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

package entity

import "testing"

func TestContactEqual(t *testing.T) {
	base := NewContact("John Doe", "john.doe@example.com", "1234567890")

	tests := []struct {
		name  string
		other Contact
		want  bool
	}{
		{"same values", NewContact("John Doe", "john.doe@example.com", "1234567890"), true},
		{"different name", NewContact("Jane Doe", "john.doe@example.com", "1234567890"), false},
		{"different email", NewContact("John Doe", "jd@example.com", "1234567890"), false},
		{"different phone", NewContact("John Doe", "john.doe@example.com", "0987654321"), false},
		{"name case differs", NewContact("john doe", "john.doe@example.com", "1234567890"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

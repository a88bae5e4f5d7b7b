package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
		{"   ", ""},
		{"Mixed.Case@Domain.ORG", "mixed.case@domain.org"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Email(tt.input)
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"John Doe", "John Doe"},
		{"  John Doe  ", "John Doe"},
		{"", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"}, // Name preserves case
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Name(tt.input)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDomainSuffix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"nitk.edu.in", "@nitk.edu.in"},
		{"@nitk.edu.in", "@nitk.edu.in"},
		{"  @College.EDU  ", "@college.edu"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := DomainSuffix(tt.input)
			if got != tt.want {
				t.Errorf("DomainSuffix(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEmailMatchesSuffix(t *testing.T) {
	tests := []struct {
		email  string
		suffix string
		want   bool
	}{
		{"user@nitk.edu.in", "@nitk.edu.in", true},
		{"User@NITK.EDU.IN", "nitk.edu.in", true},
		{"user@gmail.com", "@nitk.edu.in", false},
		{"user@gmail.com", "", true}, // empty suffix matches everything
	}

	for _, tt := range tests {
		got := EmailMatchesSuffix(tt.email, tt.suffix)
		if got != tt.want {
			t.Errorf("EmailMatchesSuffix(%q, %q) = %v, want %v", tt.email, tt.suffix, got, tt.want)
		}
	}
}

func TestLocalPart(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"alice@college.edu", "alice"},
		{"Bob.Smith@College.EDU", "bob.smith"},
		{"nodomain", "nodomain"},
	}

	for _, tt := range tests {
		got := LocalPart(tt.input)
		if got != tt.want {
			t.Errorf("LocalPart(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

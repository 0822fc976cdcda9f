package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/selfie.jpg", want: "user/selfie.jpg"},
		{name: "simple prefix", prefix: "selfies", key: "user/selfie.jpg", want: "selfies/user/selfie.jpg"},
		{name: "prefix trailing slash", prefix: "selfies/", key: "user/selfie.jpg", want: "selfies/user/selfie.jpg"},
		{name: "prefix and key slashes", prefix: "/selfies/", key: "/user/selfie.jpg", want: "selfies/user/selfie.jpg"},
		{name: "nested prefix", prefix: "selfies/prod", key: "user/selfie.jpg", want: "selfies/prod/user/selfie.jpg"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestNormalizePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "selfies", want: "selfies"},
		{in: "/selfies/", want: "selfies"},
		{in: "  selfies/prod  ", want: "selfies/prod"},
	}
	for _, tt := range tests {
		if got := normalizePrefix(tt.in); got != tt.want {
			t.Fatalf("normalizePrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package origin

import "testing"

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://x.com/user/status/123", true},
		{"https://twitter.com/user/status/123", true},
		{"https://mobile.twitter.com/user/status/123", true},
		{"https://www.instagram.com/reel/abc/", true},
		{"https://vm.tiktok.com/ZM123/", true},
		{"https://www.youtube.com/watch?v=abc", true},
		{"https://youtu.be/abc", true},
		{"https://music.youtube.com/watch?v=abc", true},

		// Arbitrary subdomains of allowed hosts
		{"https://foo.instagram.com/p/abc", true},
		{"https://cdn.eu.tiktok.com/v/1", true},

		// Case and port handling
		{"https://WWW.YouTube.com/watch?v=abc", true},
		{"https://x.com:443/user/status/123", true},

		// Unrelated or look-alike hosts
		{"https://evil.com/v", false},
		{"https://notyoutube.com/watch?v=abc", false},
		{"https://youtube.com.evil.com/watch", false},

		// Scheme and shape problems
		{"ftp://youtube.com/watch", false},
		{"youtube.com/watch", false},
		{"https://", false},
		{"://bad url", false},
		{"", false},
	}

	for _, test := range tests {
		result := IsAllowed(test.url)
		if result != test.expected {
			t.Errorf("IsAllowed(%q) = %v, expected %v", test.url, result, test.expected)
		}
	}
}

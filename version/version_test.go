package version

import "testing"

func TestInfoString(t *testing.T) {
	tests := []struct {
		name     string
		info     Info
		expected string
	}{
		{
			name:     "version only",
			info:     Info{Version: "v1.2.3", Commit: unknown, Date: unknown},
			expected: "v1.2.3",
		},
		{
			name:     "short commit ignored",
			info:     Info{Version: "v1.2.3", Commit: "abc", Date: unknown},
			expected: "v1.2.3",
		},
		{
			name:     "commit without date",
			info:     Info{Version: "v1.2.3", Commit: "0123456789abcdef", Date: unknown},
			expected: "v1.2.3 (0123456)",
		},
		{
			name:     "commit and date",
			info:     Info{Version: "v1.2.3", Commit: "0123456789abcdef", Date: "2024-01-01"},
			expected: "v1.2.3 (0123456, built 2024-01-01)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.expected {
				t.Errorf("Info.String() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestCompileTimeValuesWin(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() {
		Version, Commit, Date = oldVersion, oldCommit, oldDate
	})

	Version, Commit, Date = "v9.9.9", "feedfacecafebeef", "2025-06-01"
	info := GetInfo()
	if info.Version != "v9.9.9" || info.Commit != "feedfacecafebeef" || info.Date != "2025-06-01" {
		t.Errorf("GetInfo() = %+v, expected compile-time values", info)
	}
	if info.Package != "shelltree" {
		t.Errorf("Package = %q, expected %q", info.Package, "shelltree")
	}
}

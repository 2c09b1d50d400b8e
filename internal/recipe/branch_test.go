package recipe

import "testing"

func TestDeriveBaseName(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		existing   []string
		want       string
	}{
		{
			name:       "lowercases and truncates at suffix marker",
			identifier: "Firefox.munki.recipe",
			want:       "firefox",
		},
		{
			name:       "replaces spaces with hyphens",
			identifier: "Google Chrome.munki.recipe",
			want:       "google-chrome",
		},
		{
			name:       "mixed case with no marker",
			identifier: "SomeTool",
			want:       "sometool",
		},
		{
			name:       "collision appends -2",
			identifier: "Foo.munki.recipe",
			existing:   []string{"main", "foo"},
			want:       "foo-2",
		},
		{
			name:       "no collision when branch list differs",
			identifier: "Foo.munki.recipe",
			existing:   []string{"main", "bar"},
			want:       "foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveBaseName(tt.identifier, tt.existing)
			if got != tt.want {
				t.Errorf("DeriveBaseName(%q) = %q, want %q", tt.identifier, got, tt.want)
			}
		})
	}
}

func TestDeriveBaseNameIdempotent(t *testing.T) {
	// Re-deriving from an already derived name must not change it.
	first := DeriveBaseName("Google Chrome.munki.recipe", nil)
	second := DeriveBaseName(first, nil)
	if first != second {
		t.Errorf("derivation not idempotent: %q != %q", first, second)
	}
}

func TestQualifyWithVersion(t *testing.T) {
	tests := []struct {
		name         string
		base         string
		version      string
		existing     []string
		want         string
		wantCollided bool
	}{
		{
			name:    "plain qualification",
			base:    "foo",
			version: "1.2",
			want:    "foo-1.2",
		},
		{
			name:         "collision appends -2",
			base:         "foo",
			version:      "1.2",
			existing:     []string{"main", "foo-1.2"},
			want:         "foo-1.2-2",
			wantCollided: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, collided := QualifyWithVersion(tt.base, tt.version, tt.existing)
			if got != tt.want {
				t.Errorf("QualifyWithVersion(%q, %q) = %q, want %q", tt.base, tt.version, got, tt.want)
			}
			if collided != tt.wantCollided {
				t.Errorf("collided = %v, want %v", collided, tt.wantCollided)
			}
		})
	}
}

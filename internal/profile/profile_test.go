package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.OutputPath != "sync_graph.dot" {
		t.Fatalf("OutputPath = %q, want %q", p.OutputPath, "sync_graph.dot")
	}
	if p.DefaultFrames != 1 {
		t.Fatalf("DefaultFrames = %d, want 1", p.DefaultFrames)
	}
	if p.TagCaptures {
		t.Fatal("TagCaptures = true, want false")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Profile
		wantErr bool
	}{
		{
			name: "overrides all fields",
			yaml: "output_path: captures/out.dot\ndefault_frames: 5\ntag_captures: true\n",
			want: Profile{OutputPath: "captures/out.dot", DefaultFrames: 5, TagCaptures: true},
		},
		{
			name: "partial file keeps defaults for the rest",
			yaml: "default_frames: 10\n",
			want: Profile{OutputPath: "sync_graph.dot", DefaultFrames: 10, TagCaptures: false},
		},
		{
			name: "empty file is just the default",
			yaml: "",
			want: Default(),
		},
		{
			name:    "malformed yaml is an error",
			yaml:    "default_frames: [this is not a scalar\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profile.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() error = nil, want non-nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v, want nil", err)
			}
			if got != tt.want {
				t.Fatalf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() error = nil, want non-nil for a missing file")
	}
}

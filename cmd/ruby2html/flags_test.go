package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     buildFlags
		wantArgs []string
		wantErr  bool
	}{
		{
			name: "no arguments",
			args: nil,
			want: buildFlags{},
		},
		{
			name:     "positional input dir",
			args:     []string{"stories"},
			want:     buildFlags{},
			wantArgs: []string{"stories"},
		},
		{
			name: "long flags",
			args: []string{"--out", "public", "--site-title", "My Site", "--style", "default", "--quiet"},
			want: buildFlags{out: "public", siteTitle: "My Site", style: "default", quiet: true},
		},
		{
			name:     "short flags with positional",
			args:     []string{"-o", "public", "-c", "site", "-v", "stories"},
			want:     buildFlags{out: "public", config: "site", verbose: true},
			wantArgs: []string{"stories"},
		},
		{
			name: "version flag",
			args: []string{"--version"},
			want: buildFlags{version: true},
		},
		{
			name: "help flag",
			args: []string{"-h"},
			want: buildFlags{help: true},
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, args, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Error("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags error: %v", err)
			}

			if *got != tt.want {
				t.Errorf("flags = %+v, want %+v", *got, tt.want)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

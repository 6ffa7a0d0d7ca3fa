package config

import (
	"strings"
	"testing"
)

func TestMergeConfigLocalWins(t *testing.T) {
	global := &Config{
		Username:      "global-user",
		DefaultFormat: "table",
		FeaturedRepos: []string{"global-repo"},
	}
	local := &Config{
		Username:      "local-user",
		FeaturedRepos: []string{"local-repo", "other"},
	}

	merged := mergeConfig(global, local)

	if merged.Username != "local-user" {
		t.Errorf("Username = %q, want local value", merged.Username)
	}
	if merged.DefaultFormat != "table" {
		t.Errorf("DefaultFormat = %q, want global value preserved", merged.DefaultFormat)
	}
	if len(merged.FeaturedRepos) != 2 || merged.FeaturedRepos[0] != "local-repo" {
		t.Errorf("FeaturedRepos = %v, want local list", merged.FeaturedRepos)
	}
}

func TestMergeConfigEmptyLocal(t *testing.T) {
	global := &Config{
		Username:            "global-user",
		DefaultFormat:       "json",
		FeaturedRepos:       []string{"repo"},
		PinnedFallbackLimit: 4,
	}

	merged := mergeConfig(global, &Config{})

	if merged.Username != "global-user" {
		t.Errorf("Username = %q", merged.Username)
	}
	if merged.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q", merged.DefaultFormat)
	}
	if len(merged.FeaturedRepos) != 1 {
		t.Errorf("FeaturedRepos = %v", merged.FeaturedRepos)
	}
	if merged.PinnedFallbackLimit != 4 {
		t.Errorf("PinnedFallbackLimit = %d", merged.PinnedFallbackLimit)
	}
}

func TestGetGitHubToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg := &Config{}
	if got := cfg.GetGitHubToken(); got != "env-token" {
		t.Errorf("GetGitHubToken() = %q, want env value", got)
	}
}

func TestGetGitHubTokenUnset(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	cfg := &Config{}
	if got := cfg.GetGitHubToken(); got != "" {
		t.Errorf("GetGitHubToken() = %q, want empty", got)
	}
}

func TestToYAML(t *testing.T) {
	cfg := &Config{
		Username:      "mayen007",
		DefaultFormat: "table",
		FeaturedRepos: []string{"portfolio"},
	}

	out, err := cfg.ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"username: mayen007", "default_format: table", "- portfolio"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML missing %q:\n%s", want, out)
		}
	}
}

func TestMinimalConfigParses(t *testing.T) {
	// The template must stay valid YAML for the config init command.
	path := t.TempDir() + "/config.yaml"
	if err := SaveTo(path, MinimalConfig()); err != nil {
		t.Fatal(err)
	}
}

func TestSaveToCreatesDirectories(t *testing.T) {
	path := t.TempDir() + "/nested/dir/config.yaml"
	if err := SaveTo(path, "default_format: table\n"); err != nil {
		t.Fatal(err)
	}
}

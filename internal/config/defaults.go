package config

// DefaultAssets are glob patterns, relative to AssetsDir, copied into the
// build output.
var DefaultAssets = []string{
	"**/*.{png,jpg,jpeg,svg,webp,ico}",
	"**/*.pdf",
	"CNAME",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Username: "vinnych",
			PageSize: 10,
		},
		Projects: ProjectsConfig{
			Limit:         6,
			StaggerMS:     80,
			RevealDelayMS: 50,
		},
		Profile: ProfileConfig{
			Name:    "Bhushan Chilakapati",
			Title:   "Software Developer",
			Tagline: "I build things for the web and tinker with AI.",
			Skills:  []string{"TypeScript", "JavaScript", "Python", "Go", "HTML", "CSS"},
		},
		Viewport: ViewportConfig{
			NavbarThreshold:  40,
			FadeThreshold:    0.1,
			FadeMarginBottom: -40,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		OutputDir: "public",
		AssetsDir: "static",
		Assets:    append([]string(nil), DefaultAssets...),
	}
}

package config

// Config is the top-level portfolio configuration, corresponding to portfolio.yml.
type Config struct {
	GitHub    GitHubConfig   `yaml:"github" koanf:"github"`
	Projects  ProjectsConfig `yaml:"projects" koanf:"projects"`
	Profile   ProfileConfig  `yaml:"profile" koanf:"profile"`
	Viewport  ViewportConfig `yaml:"viewport" koanf:"viewport"`
	Server    ServerConfig   `yaml:"server" koanf:"server"`
	OutputDir string         `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir string         `yaml:"assets_dir" koanf:"assets_dir"`
	Assets    []string       `yaml:"assets" koanf:"assets"`
}

// GitHubConfig selects the account whose repositories are listed.
type GitHubConfig struct {
	Username string `yaml:"username" koanf:"username"`
	// Token is optional. The listing endpoint is public.
	Token    string `yaml:"token,omitempty" koanf:"token"`
	BaseURL  string `yaml:"base_url,omitempty" koanf:"base_url"`
	PageSize int    `yaml:"page_size" koanf:"page_size"`
}

// ProjectsConfig controls how many cards are shown and how they animate in.
// A delay of 0 turns that animation step off.
type ProjectsConfig struct {
	Limit         int `yaml:"limit" koanf:"limit"`
	StaggerMS     int `yaml:"stagger_ms" koanf:"stagger_ms"`
	RevealDelayMS int `yaml:"reveal_delay_ms" koanf:"reveal_delay_ms"`
}

// ProfileConfig holds the static page content.
type ProfileConfig struct {
	Name      string   `yaml:"name" koanf:"name"`
	Title     string   `yaml:"title" koanf:"title"`
	Tagline   string   `yaml:"tagline" koanf:"tagline"`
	Email     string   `yaml:"email" koanf:"email"`
	AboutFile string   `yaml:"about_file" koanf:"about_file"`
	Skills    []string `yaml:"skills" koanf:"skills"`
}

// ViewportConfig holds the scroll affordance thresholds.
type ViewportConfig struct {
	NavbarThreshold  float64 `yaml:"navbar_threshold" koanf:"navbar_threshold"`
	FadeThreshold    float64 `yaml:"fade_threshold" koanf:"fade_threshold"`
	FadeMarginBottom float64 `yaml:"fade_margin_bottom" koanf:"fade_margin_bottom"`
}

// ServerConfig holds dev server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}

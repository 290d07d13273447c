package spec

// Config is the .dilemma.yml document.
type Config struct {
	Version int          `yaml:"version"`
	Game    GameConfig   `yaml:"game"`
	Payoff  PayoffConfig `yaml:"payoff"`
	LLM     LLMConfig    `yaml:"llm"`
	Agents  AgentsConfig `yaml:"agents"`
	Output  OutputConfig `yaml:"output"`
}

type GameConfig struct {
	Rounds          int   `yaml:"rounds"`
	RememberHistory *bool `yaml:"remember_history"`
}

type PayoffConfig struct {
	Preset string        `yaml:"preset"`
	Custom *CustomPayoff `yaml:"custom,omitempty"`
}

// CustomPayoff holds the four inputs of a custom matrix. The off-diagonal
// values are mirrored for agent B.
type CustomPayoff struct {
	CooperateCooperate int `yaml:"cooperate_cooperate"`
	CooperateDefect    int `yaml:"cooperate_defect"`
	DefectCooperate    int `yaml:"defect_cooperate"`
	DefectDefect       int `yaml:"defect_defect"`
}

type LLMConfig struct {
	Provider    string      `yaml:"provider"`
	Model       string      `yaml:"model"`
	BaseURL     string      `yaml:"base_url,omitempty"`
	Temperature *float64    `yaml:"temperature"`
	MaxTokens   int         `yaml:"max_tokens"`
	Retry       RetryConfig `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
	DelayMs     int `yaml:"delay_ms"`
}

type AgentsConfig struct {
	A AgentConfig `yaml:"a"`
	B AgentConfig `yaml:"b"`
}

// AgentConfig configures one player. Provider and Model override the llm
// section; Moves feeds the static and scripted providers.
type AgentConfig struct {
	Provider      string   `yaml:"provider,omitempty"`
	Model         string   `yaml:"model,omitempty"`
	InitialPrompt string   `yaml:"initial_prompt"`
	Moves         []string `yaml:"moves,omitempty"`
}

type OutputConfig struct {
	Dir  string `yaml:"dir"`
	CSV  bool   `yaml:"csv"`
	JSON bool   `yaml:"json"`
	HTML bool   `yaml:"html"`
}

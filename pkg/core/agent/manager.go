// Package agent selects which LLM provider serves each commentary role,
// driven by the yaml model config.
package agent

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v2"

	"acquisition_calc/pkg/core/llm"
)

// Config maps roles to providers. ActiveProvider is the global default; a
// role entry may override it.
type Config struct {
	ActiveProvider string                `yaml:"active_provider"`
	Roles          map[string]RoleConfig `yaml:"roles"`
}

type RoleConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Description string `yaml:"description"`
}

// LoadConfig reads the yaml model config; a missing file yields the gemini
// default rather than an error so the service starts without one.
func LoadConfig(path string) Config {
	cfg := Config{ActiveProvider: "gemini"}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil || cfg.ActiveProvider == "" {
		cfg.ActiveProvider = "gemini"
	}
	return cfg
}

// Manager resolves providers for roles and executes prompts against them.
type Manager struct {
	mu     sync.RWMutex
	config Config
}

func NewManager(config Config) *Manager {
	if config.ActiveProvider == "" {
		config.ActiveProvider = "gemini"
	}
	return &Manager{config: config}
}

// Provider returns the provider serving the given role.
func (m *Manager) Provider(role string) (llm.Provider, error) {
	m.mu.RLock()
	name := m.config.ActiveProvider
	if rc, ok := m.config.Roles[role]; ok && rc.Provider != "" {
		name = rc.Provider
	}
	m.mu.RUnlock()
	return llm.New(name)
}

// ExecutePrompt runs a prompt through the role's provider, passing the role's
// configured model through options.
func (m *Manager) ExecutePrompt(ctx context.Context, role, prompt, systemPrompt string, options map[string]interface{}) (string, error) {
	provider, err := m.Provider(role)
	if err != nil {
		return "", err
	}
	if options == nil {
		options = map[string]interface{}{}
	}
	m.mu.RLock()
	if rc, ok := m.config.Roles[role]; ok && rc.Model != "" {
		if _, set := options["model"]; !set {
			options["model"] = rc.Model
		}
	}
	m.mu.RUnlock()
	return provider.GenerateResponse(ctx, prompt, systemPrompt, options)
}

// SetGlobalProvider switches the default provider at runtime.
func (m *Manager) SetGlobalProvider(name string) error {
	if _, err := llm.New(name); err != nil {
		return fmt.Errorf("provider %s not available", name)
	}
	m.mu.Lock()
	m.config.ActiveProvider = name
	m.mu.Unlock()
	return nil
}

// ActiveProvider reports the current global default.
func (m *Manager) ActiveProvider() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ActiveProvider
}

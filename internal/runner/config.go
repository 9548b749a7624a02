package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/leetlist"
	fileutil "github.com/projectdiscovery/utils/file"
)

// defaultConfigPath returns $HOME/.config/leetlist/config_<version>.yaml
func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "leetlist", fmt.Sprintf("config_%v.yaml", version)), nil
}

// loadDefaultConfig uses the user generator config as leetlist.DefaultConfig
// and creates it with builtin defaults if it does not exist
func loadDefaultConfig() {
	cfgPath, err := defaultConfigPath()
	if err != nil {
		gologger.Verbose().Msgf("could not locate home directory: %v", err)
		return
	}
	if fileutil.FileExists(cfgPath) {
		cfg, err := leetlist.NewConfig(cfgPath)
		if err != nil {
			gologger.Error().Msgf("failed to read default config %v got: %v", cfgPath, err)
			return
		}
		mergeConfig(cfg)
		return
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0755); err != nil {
		gologger.Error().Msgf("failed to create config dir for %v got: %v", cfgPath, err)
		return
	}
	if err := leetlist.GenerateSample(cfgPath); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", cfgPath, err)
	}
}

// mergeConfig overrides leetlist.DefaultConfig with every field set in cfg
func mergeConfig(cfg *leetlist.Config) {
	if len(cfg.Substitutions) > 0 {
		leetlist.DefaultConfig.Substitutions = cfg.Substitutions
	}
	if len(cfg.Patterns) > 0 {
		leetlist.DefaultConfig.Patterns = cfg.Patterns
	}
	if cfg.YearStart != 0 {
		leetlist.DefaultConfig.YearStart = cfg.YearStart
	}
	if cfg.YearEnd != 0 {
		leetlist.DefaultConfig.YearEnd = cfg.YearEnd
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"ffab/internal/chain"
	"ffab/internal/chainfile"
	"ffab/internal/config"
	"ffab/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// sessionLogger returns the invocation logger tagged with a fresh session id.
// Logger construction failures fall back to a no-op logger.
func (c *commandContext) sessionLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.configValue())
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		ctx := logging.ContextWithSession(context.Background(), logging.NewSessionID())
		c.logger = logging.WithContext(ctx, logger)
	})
	return c.logger
}

// loadChain resolves name against the chain directory and loads it.
func (c *commandContext) loadChain(name string) (*chain.Chain, string, error) {
	path, err := c.resolveChainPath(name)
	if err != nil {
		return nil, "", err
	}
	logger := c.sessionLogger()
	ch, err := chainfile.Load(path, chain.WithLogger(logger))
	if err != nil {
		return nil, path, err
	}
	logger.Debug("chain loaded",
		logging.String("path", path),
		logging.Int("filters", ch.Len()-2),
	)
	return ch, path, nil
}

// resolveChainPath accepts a file path or the bare name of a chain stored
// in the configured chain directory ("vocal" → <chain_dir>/vocal.toml).
func (c *commandContext) resolveChainPath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("chain file is required")
	}
	expanded, err := config.ExpandPath(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(expanded); err == nil {
		return expanded, nil
	}
	if strings.ContainsRune(name, filepath.Separator) {
		return "", fmt.Errorf("chain file %s not found", expanded)
	}
	cfg := c.configValue()
	if cfg == nil || cfg.Paths.ChainDir == "" {
		return "", fmt.Errorf("chain file %s not found", expanded)
	}
	candidate := filepath.Join(cfg.Paths.ChainDir, name)
	if filepath.Ext(candidate) == "" {
		candidate += ".toml"
	}
	if _, err := os.Stat(candidate); err != nil {
		return "", fmt.Errorf("chain %q not found in %s or %s", name, expanded, cfg.Paths.ChainDir)
	}
	return candidate, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

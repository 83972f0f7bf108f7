package driver

import (
	"fmt"

	"github.com/defuture-io/defuture/rewrite"
	"github.com/defuture-io/defuture/subst"
	"gopkg.in/yaml.v3"
)

// Config is the rule file the command layer loads: mechanical renames
// plus the rewrite rule set.
type Config struct {
	Renames  []subst.Rule   `yaml:"renames"`
	Rewrites []rewrite.Rule `yaml:"rewrites"`
}

func LoadConfig(src []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(src, &config); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := rewrite.Validate(config.Rewrites); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Passes returns the pass list for this configuration. Renames run
// first so rewrite rules see the renamed operations.
func (c Config) Passes() []Pass {
	var passes []Pass
	if len(c.Renames) > 0 {
		passes = append(passes, subst.New(c.Renames))
	}
	if len(c.Rewrites) > 0 {
		passes = append(passes, rewrite.NewRewriter(c.Rewrites))
	}

	return passes
}

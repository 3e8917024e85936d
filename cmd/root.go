package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zhongwenanki/annotate"
	"zhongwenanki/config"
	"zhongwenanki/logger"
	"zhongwenanki/render"
	"zhongwenanki/romanize"
	"zhongwenanki/segment"
	"zhongwenanki/tokenize"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

// tracer writes to trace with key 'zhongwenanki.cmd'
func tracer() tracing.Trace {
	return tracing.Select("zhongwenanki.cmd")
}

var rootCmd = &cobra.Command{
	Use:          "zhongwenanki",
	Short:        "Tone-colored pinyin annotation for Chinese sentences",
	Long:         `Segments Chinese sentences into words, attaches pinyin and tones, and renders plain text, pinyin and tone-colored markup.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetupTracing(cfg.Debug)
		return cfg.Validate()
	},
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./.zhongwenanki.yaml or ~/.config/zhongwenanki/config.yaml)")
	pf.StringP("segmenter", "s", "", fmt.Sprintf("word segmenter, one of %v", segment.Names()))
	pf.String("phrases", "", "YAML file of phrase readings overriding the pinyin tables")
	pf.String("glossary", "", "YAML word list answering lookups")
	pf.Bool("debug", false, "enable debug tracing")
	pf.String("log-dir", "", "write one JSON dump per sentence into this directory")
	pf.IntP("workers", "w", 0, "number of concurrent workers for batch input")

	_ = viper.BindPFlag("segmenter", pf.Lookup("segmenter"))
	_ = viper.BindPFlag("phrases", pf.Lookup("phrases"))
	_ = viper.BindPFlag("glossary", pf.Lookup("glossary"))
	_ = viper.BindPFlag("debug", pf.Lookup("debug"))
	_ = viper.BindPFlag("log_dir", pf.Lookup("log-dir"))
	_ = viper.BindPFlag("workers", pf.Lookup("workers"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("segmenter", defaults.Segmenter)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("cache.ttl", defaults.Cache.TTL)
	viper.SetDefault("render.element", defaults.Render.Element)
	viper.SetDefault("render.class_prefix", defaults.Render.ClassPrefix)
	viper.SetDefault("render.char_separator", defaults.Render.CharSeparator)
	viper.SetDefault("render.word_separator", defaults.Render.WordSeparator)
	viper.SetDefault("render.markup_separator", defaults.Render.MarkupSeparator)
	viper.SetDefault("render.collapse", defaults.Render.Collapse)
	viper.SetDefault("workers", defaults.Workers)

	viper.SetEnvPrefix("ZHONGWENANKI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .zhongwenanki.yaml (current directory)
		// 2. ~/.config/zhongwenanki/config.yaml (user config)
		if _, err := os.Stat(".zhongwenanki.yaml"); err == nil {
			viper.SetConfigFile(".zhongwenanki.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "zhongwenanki"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
	// flags left at their zero value must not override defaults
	if cfg.Segmenter == "" {
		cfg.Segmenter = defaults.Segmenter
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
}

// newTokenizer builds the segmenter and oracle stack described by c.
func newTokenizer(c config.Config) (*tokenize.Tokenizer, error) {
	seg, err := segment.New(c.Segmenter)
	if err != nil {
		return nil, err
	}
	oracle, err := newOracle(c)
	if err != nil {
		return nil, err
	}
	return tokenize.New(seg, oracle), nil
}

func newOracle(c config.Config) (tokenize.RomanizationOracle, error) {
	builtin, err := romanize.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("built-in phrases: %w", err)
	}
	var oracle tokenize.RomanizationOracle = builtin
	if c.Phrases != "" {
		f, err := os.Open(c.Phrases)
		if err != nil {
			return nil, fmt.Errorf("opening phrases: %w", err)
		}
		defer f.Close()
		phrases, err := romanize.LoadPhrases(oracle, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Phrases, err)
		}
		oracle = phrases
	}
	if c.Cache.Enabled {
		oracle = romanize.NewCached(oracle, c.Cache.TTL)
	}
	return oracle, nil
}

func markupOptions(r config.RenderConfig) []render.Option {
	return []render.Option{
		render.WithElement(r.Element),
		render.WithClassPrefix(r.ClassPrefix),
	}
}

func annotateOptions(r config.RenderConfig) annotate.Options {
	return annotate.Options{
		CharSeparator:   r.CharSeparator,
		WordSeparator:   r.WordSeparator,
		MarkupSeparator: r.MarkupSeparator,
		Collapse:        r.Collapse,
		Markup:          markupOptions(r),
	}
}

package runner

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/leetlist"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Name               string              // name of the target
	Date               string              // birth year or important date
	Pet                string              // pet name
	Seeds              goflags.StringSlice // additional seeds
	YearStart          int
	YearEnd            int
	Analyze            string // password to analyze
	Output             string
	Config             string
	GeneratorConfig    string
	Estimate           bool
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
	Limit              int
	MaxSize            int
}

func ParseFlags() *Options {
	var maxFileSize string
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Personal password wordlist generator using leetspeak and years.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Name, "name", "n", "", "name to use as seed"),
		flagSet.StringVarP(&opts.Date, "date", "d", "", "birth year or important date to use as seed"),
		flagSet.StringVarP(&opts.Pet, "pet", "pn", "", "pet name to use as seed"),
		flagSet.StringSliceVarP(&opts.Seeds, "seed", "s", nil, "additional seeds (stdin, comma-separated, file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Analyze, "analyze", "a", "", "password to analyze strength of (seeds are used as personal info)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Estimate, "estimate", "es", false, "estimate candidate count without generating wordlist"),
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write wordlist"),
		flagSet.StringVarP(&maxFileSize, "max-size", "ms", "", "Max export data size (kb, mb, gb, tb) (default mb)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display leetlist version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `leetlist cli config file (default '$HOME/.config/leetlist/config.yaml')`),
		flagSet.StringVarP(&opts.GeneratorConfig, "generator-config", "gc", "", `leetlist generator config file with substitutions, patterns and years (default '$HOME/.config/leetlist/config_`+version+`.yaml')`),
		flagSet.IntVarP(&opts.YearStart, "year-start", "ys", 0, "first year to append/prepend (default 2000)"),
		flagSet.IntVarP(&opts.YearEnd, "year-end", "ye", 0, "year to stop at, exclusive (default current year + 1)"),
		flagSet.IntVar(&opts.Limit, "limit", 0, "limit the number of results to return (default 0)"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update leetlist to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic leetlist update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("leetlist")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("leetlist version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current leetlist version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	loadDefaultConfig()
	if opts.GeneratorConfig != "" {
		cfg, err := leetlist.NewConfig(opts.GeneratorConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", opts.GeneratorConfig, err)
		}
		mergeConfig(cfg)
	}

	opts.MaxSize = math.MaxInt
	if len(maxFileSize) > 0 {
		maxSize, err := convertFileSizeToBytes(maxFileSize)
		if err != nil {
			gologger.Fatal().Msgf("Could not parse max-size: %s\n", err)
		}
		opts.MaxSize = maxSize
	}

	// read from stdin, one seed per line
	if fileutil.HasStdin() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			opts.Seeds = append(opts.Seeds, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
	}

	if opts.Analyze == "" && len(opts.AllSeeds()) == 0 {
		gologger.Fatal().Msgf("leetlist: enter at least one input (name, date or pet name)")
	}

	return opts
}

// AllSeeds returns name, date, pet name and additional seeds, skipping blank ones
func (o *Options) AllSeeds() []string {
	var seeds []string
	for _, v := range append([]string{o.Name, o.Date, o.Pet}, o.Seeds...) {
		if strings.TrimSpace(v) == "" {
			continue
		}
		seeds = append(seeds, v)
	}
	return seeds
}

// Years resolves the year range at now, unset bounds come from leetlist.DefaultConfig
func (o *Options) Years(now time.Time) leetlist.YearRange {
	years := leetlist.DefaultYearRange(now)
	if leetlist.DefaultConfig.YearStart != 0 {
		years.Start = leetlist.DefaultConfig.YearStart
	}
	if leetlist.DefaultConfig.YearEnd != 0 {
		years.End = leetlist.DefaultConfig.YearEnd
	}
	if o.YearStart != 0 {
		years.Start = o.YearStart
	}
	if o.YearEnd != 0 {
		years.End = o.YearEnd
	}
	return years
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

func convertFileSizeToBytes(maxFileSize string) (int, error) {
	maxFileSize = strings.ToLower(maxFileSize)
	// default to mb
	if size, err := strconv.Atoi(maxFileSize); err == nil {
		if size < 0 {
			return 0, errorutil.New("max-size cannot be negative")
		}
		return size * 1024 * 1024, nil
	}
	if len(maxFileSize) < 3 {
		return 0, errorutil.New("invalid max-size value")
	}
	sizeUnit := maxFileSize[len(maxFileSize)-2:]
	size, err := strconv.Atoi(maxFileSize[:len(maxFileSize)-2])
	if err != nil {
		return 0, err
	}
	if size < 0 {
		return 0, errorutil.New("max-size cannot be negative")
	}
	switch sizeUnit {
	case "kb":
		return size * 1024, nil
	case "mb":
		return size * 1024 * 1024, nil
	case "gb":
		return size * 1024 * 1024 * 1024, nil
	case "tb":
		return size * 1024 * 1024 * 1024 * 1024, nil
	}
	return 0, errorutil.New("Unsupported max-size unit")
}

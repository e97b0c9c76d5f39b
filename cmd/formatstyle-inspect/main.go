package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"

	formatstyle "github.com/goliatone/go-formatstyle"
)

type inspectConfig struct {
	locale    string
	timeZone  string
	dateStyle string
	timeStyle string
	skeleton  string
	value     float64
	currency  string
	list      []string
	bundles   []string
}

type listFlag struct {
	items []string
}

func (f *listFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *listFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			f.items = append(f.items, part)
		}
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "formatstyle-inspect: %v\n", err)
	os.Exit(1)
}

func parseFlags() (inspectConfig, error) {
	var cfg inspectConfig
	var items listFlag
	var bundles listFlag

	flag.StringVar(&cfg.locale, "locale", "en", "locale identifier")
	flag.StringVar(&cfg.timeZone, "tz", "", "IANA time zone name")
	flag.StringVar(&cfg.dateStyle, "date", "abbreviated", "date style: omitted, numeric, abbreviated, long, complete")
	flag.StringVar(&cfg.timeStyle, "time", "shortened", "time style: omitted, shortened, standard, complete")
	flag.StringVar(&cfg.skeleton, "skeleton", "", "raw date skeleton to resolve instead of the coarse styles")
	flag.Float64Var(&cfg.value, "value", 1234.567, "sample numeric value")
	flag.StringVar(&cfg.currency, "currency", "USD", "ISO 4217 currency code for the currency sample")
	flag.Var(&items, "list", "comma-separated items for the list sample")
	flag.Var(&bundles, "bundle", "calendar bundle overlay file. Repeat flag to add more.")

	flag.Parse()

	if _, err := language.Parse(cfg.locale); err != nil {
		return inspectConfig{}, fmt.Errorf("invalid locale %q: %w", cfg.locale, err)
	}

	cfg.list = items.items
	if len(cfg.list) == 0 {
		cfg.list = []string{"one", "two", "three"}
	}
	cfg.bundles = bundles.items
	return cfg, nil
}

func parseDateStyle(name string) (formatstyle.DateStyle, error) {
	switch name {
	case "omitted":
		return formatstyle.DateStyleOmitted, nil
	case "numeric":
		return formatstyle.DateStyleNumeric, nil
	case "abbreviated":
		return formatstyle.DateStyleAbbreviated, nil
	case "long":
		return formatstyle.DateStyleLong, nil
	case "complete":
		return formatstyle.DateStyleComplete, nil
	default:
		return 0, fmt.Errorf("unknown date style %q", name)
	}
}

func parseTimeStyle(name string) (formatstyle.TimeStyle, error) {
	switch name {
	case "omitted":
		return formatstyle.TimeStyleOmitted, nil
	case "shortened":
		return formatstyle.TimeStyleShortened, nil
	case "standard":
		return formatstyle.TimeStyleStandard, nil
	case "complete":
		return formatstyle.TimeStyleComplete, nil
	default:
		return 0, fmt.Errorf("unknown time style %q", name)
	}
}

func run(cfg inspectConfig) error {
	opts := []formatstyle.Option{formatstyle.WithDefaultLocale(cfg.locale)}
	if len(cfg.bundles) > 0 {
		opts = append(opts, formatstyle.WithBundlePaths(cfg.bundles...))
	}

	conf, err := formatstyle.New(opts...)
	if err != nil {
		return err
	}

	tag := conf.DefaultLocale()
	now := time.Now()

	if cfg.skeleton != "" {
		pattern, status := conf.Engine().BestPattern(cfg.locale, "gregorian", cfg.skeleton)
		if status.Failure() {
			return errors.New("skeleton could not be resolved")
		}
		fmt.Printf("skeleton %-16s -> %s\n", cfg.skeleton, pattern)
	}

	dateStyle, err := parseDateStyle(cfg.dateStyle)
	if err != nil {
		return err
	}
	timeStyle, err := parseTimeStyle(cfg.timeStyle)
	if err != nil {
		return err
	}

	date := conf.DateTimeStyle(dateStyle, timeStyle)
	if cfg.timeZone != "" {
		date = date.TimeZone(cfg.timeZone)
	}

	fmt.Printf("locale:    %s\n", tag)
	fmt.Printf("date:      %s\n", date.Format(now))
	fmt.Printf("iso8601:   %s\n", formatstyle.ISO8601().Format(now.UTC()))
	fmt.Printf("decimal:   %s\n", conf.DecimalStyle().Format(cfg.value))
	fmt.Printf("percent:   %s\n", conf.PercentStyle().Format(cfg.value/10000))
	fmt.Printf("currency:  %s\n", conf.CurrencyStyle(cfg.currency).Format(cfg.value))
	fmt.Printf("compact:   %s\n", conf.DecimalStyle().Notation(formatstyle.NotationCompactName).Format(cfg.value))
	fmt.Printf("list:      %s\n", conf.ListStyle().Format(cfg.list))
	fmt.Printf("relative:  %s\n", conf.RelativeStyle().Format(now.Add(26*time.Hour), now))
	fmt.Printf("duration:  %s\n", formatstyle.DurationHourMinuteSecond().Locale(tag).Format(3661*time.Second))

	attributed := conf.DecimalStyle().AttributedFormat(cfg.value)
	for _, r := range attributed.Runs {
		fmt.Printf("field:     %-18s [%d,%d)\n", r.Field, r.Begin, r.End)
	}
	return nil
}

// seqdemo builds two lists from the command line and prints how they compare.
//
//	seqdemo -a 1,2,3 -b 1,2
//	seqdemo -natural -a img2,img10 -b img2,img9
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"linked_seq/heap/linked_list"

	"github.com/maruel/natural"
	"github.com/rs/zerolog"
)

const SOURCE_LOG_FIELD_NAME = "source"

var errBadValue = errors.New("invalid value")

type config struct {
	a, b    string
	natural bool
	verbose bool
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Timestamp().
		Str(SOURCE_LOG_FIELD_NAME, "seqdemo").
		Logger()

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Send()
		os.Exit(1)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	flags := flag.NewFlagSet("seqdemo", flag.ContinueOnError)
	flags.StringVar(&cfg.a, "a", "", "comma-separated values of the first list")
	flags.StringVar(&cfg.b, "b", "", "comma-separated values of the second list")
	flags.BoolVar(&cfg.natural, "natural", false, "compare values as strings in natural order instead of as integers")
	flags.BoolVar(&cfg.verbose, "v", false, "log list operations")

	err := flags.Parse(args)
	return cfg, err
}

func run(cfg config, out io.Writer, logger zerolog.Logger) error {
	if cfg.natural {
		a, b := build(cfg.a, logger), build(cfg.b, logger)
		return report(out, a, b, func(x, y string) bool { return x == y }, natural.Less)
	}

	a, err := buildInts(cfg.a, logger)
	if err != nil {
		return fmt.Errorf("-a: %w", err)
	}
	b, err := buildInts(cfg.b, logger)
	if err != nil {
		return fmt.Errorf("-b: %w", err)
	}
	return report(out, a, b, func(x, y int) bool { return x == y }, func(x, y int) bool { return x < y })
}

func split(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

func build(s string, logger zerolog.Logger) *linked_list.List[string] {
	l := linked_list.From(split(s)...)
	logger.Debug().Int("len", l.Len()).Stringer("list", l).Msg("built list")
	return l
}

func buildInts(s string, logger zerolog.Logger) (*linked_list.List[int], error) {
	strs := build(s, logger)
	ints := linked_list.New[int]()
	pos := ints.BeforeBegin()
	for v := range strs.All() {
		_, err := ints.InsertAfterFunc(pos, func() (int, error) {
			n, err := strconv.Atoi(v)
			if err != nil {
				return 0, fmt.Errorf("%w %q", errBadValue, v)
			}
			return n, nil
		})
		if err != nil {
			return nil, err
		}
		pos.Next()
	}
	return ints, nil
}

func report[T any](out io.Writer, a, b *linked_list.List[T], eq, less func(T, T) bool) error {
	equal := linked_list.EqualFunc(a, b, eq)
	lt := linked_list.LessFunc(a, b, less)
	gt := linked_list.LessFunc(b, a, less)

	_, err := fmt.Fprintf(out,
		"a = %v (len %d)\nb = %v (len %d)\na == b: %t\na != b: %t\na <  b: %t\na <= b: %t\na >  b: %t\na >= b: %t\n",
		a, a.Len(), b, b.Len(), equal, !equal, lt, !gt, gt, !lt)
	return err
}

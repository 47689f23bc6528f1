// findopen lists the restaurants in a dataset file that are open at a given time.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"restohours/database/repository"
	"restohours/services/hours"
	"restohours/services/restaurant"
	"restohours/utils"

	arg "github.com/alexflint/go-arg"
	"go.uber.org/zap"
)

var version = "<not set>"

type Args struct {
	Data      string `arg:"-d,--data" default:"./data/rest_hours.json" help:"path to a JSON or YAML dataset"`
	At        string `arg:"-a,--at" help:"date and time to check, e.g. 2023-02-10T13:00 (default: now)"`
	Strict    bool   `arg:"-s,--strict" help:"fail on schedule strings that do not parse cleanly"`
	Exclusive bool   `arg:"-x,--exclusive" help:"treat opening and closing minutes as closed"`
	Hours     bool   `arg:"--hours" help:"print parsed hours instead of open restaurants"`
}

func (Args) Version() string {
	return version
}

func main() {
	var args Args
	arg.MustParse(&args)
	logger := utils.GetLogger()

	at := time.Now()
	if args.At != "" {
		var err error
		if at, err = utils.ParseDateTime(args.At); err != nil {
			logger.Fatal("invalid --at", zap.Error(err))
		}
	}

	raw, err := repository.NewFileRestaurantRepo(args.Data).GetAll(context.Background())
	if err != nil {
		logger.Fatal("failed to read dataset", zap.String("path", args.Data), zap.Error(err))
	}

	parser := hours.NewParser()
	if args.Strict {
		parser = hours.NewParser(hours.WithStrict())
	}
	dataset, err := restaurant.LoadDataWith(parser, raw)
	if err != nil {
		logger.Fatal("failed to parse dataset", zap.Error(err))
	}

	if args.Hours {
		for _, r := range dataset {
			fmt.Fprintf(os.Stdout, "%s\n", r.Name)
			for _, h := range r.Hours {
				fmt.Fprintf(os.Stdout, "  %-26s (%d %04d-%04d)\n", hours.Label(h), h.DayIdx, h.Start, h.End)
			}
		}
		return
	}

	matcher := restaurant.Matcher{Inclusive: !args.Exclusive}
	for _, name := range matcher.FindOpen(dataset, at) {
		fmt.Fprintln(os.Stdout, name)
	}
}

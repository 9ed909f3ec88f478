package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pquerna/ffjson/ffjson"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/project-mac/src/config"
	"github.com/project-mac/src/data"
	"github.com/project-mac/src/functions"
	"github.com/project-mac/src/logger"
)

//One line of json output
type renderedInstance struct {
	Weight      float64 `json:"weight"`
	Instance    string  `json:"instance"`
	Masked      []int   `json:"masked"`
	ClassMasked bool    `json:"class_masked"`
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string
	cmd := &cobra.Command{
		Use:          "mask [csv-file]",
		Short:        "Mask attributes and delay labels of a numeric CSV stream",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			logger.Init(&logger.Config{
				Level:      logger.LogLevel(cfg.Log.Level),
				Output:     cmd.ErrOrStderr(),
				JSON:       cfg.Log.JSON,
				TimeFormat: "15:04:05",
			})
			in := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return errors.Wrapf(err, "opening %s", args[0])
				}
				defer file.Close()
				in = file
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = logger.ContextWithLogger(ctx, logger.GetDefault())
			return run(ctx, cfg, in, cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.Int("delay", 0, "instances a label is withheld for")
	flags.Float64("probability", 0, "chance of masking each non class attribute")
	flags.Int64("seed", 1, "seed of the masking random source")
	flags.Bool("replace-missing", false, "fill missing values with means and modes, masked values are kept")
	flags.String("format", "text", "output format: text, sparse or json")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("log-json", false, "log in JSON")
	bindFlags(v, cmd)
	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	keys := map[string]string{
		"delay":           "mask.delay",
		"probability":     "mask.probability",
		"seed":            "mask.seed",
		"replace-missing": "mask.replace_missing",
		"format":          "output.format",
		"log-level":       "log.level",
		"log-json":        "log.json",
	}
	for flag, key := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	log := logger.FromContext(ctx)
	instances, err := readCSV(in)
	if err != nil {
		return err
	}
	log.Info("read instances", "count", len(instances))
	masker := functions.NewMaskAttributes(cfg.Mask.Probability, cfg.Mask.Seed, log)
	delayer := functions.NewDelayedLabels(cfg.Mask.Delay, log)
	filters := []functions.Filter{masker}
	if cfg.Mask.ReplaceMissing {
		filters = append(filters, functions.NewReplaceMissingValues(log))
	}
	filters = append(filters, delayer)
	result := functions.Exec(instances, filters...)
	log.Info("stream done", "emitted", len(result), "masked_attributes", masker.NumMasked(), "masked_labels", delayer.NumMasked())
	return write(cfg.Output.Format, result, out)
}

// readCSV reads a header row of attribute names followed by numeric rows.
// "?" and empty cells are missing values. The last column is the class.
func readCSV(in io.Reader) ([]*data.Instance, error) {
	reader := csv.NewReader(in)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}
	if len(records) == 0 {
		return nil, errors.New("csv has no header row")
	}
	atts := make([]*data.Attribute, len(records[0]))
	for j, name := range records[0] {
		atts[j] = data.NewNumericAttribute(strings.TrimSpace(name))
	}
	header, err := data.NewInstancesHeader("csv", atts)
	if err != nil {
		return nil, err
	}
	header, err = header.WithClassIndex(len(atts) - 1)
	if err != nil {
		return nil, err
	}
	instances := make([]*data.Instance, 0, len(records)-1)
	for row, record := range records[1:] {
		values := make([]float64, len(record))
		for j, cell := range record {
			cell = strings.TrimSpace(cell)
			if cell == "?" || cell == "" {
				values[j] = math.NaN()
				continue
			}
			values[j], err = strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %d", row+2, j+1)
			}
		}
		inst := data.NewDenseInstance(1, values)
		inst.SetHeader(header)
		instances = append(instances, inst)
	}
	return instances, nil
}

func write(format string, instances []*data.Instance, out io.Writer) error {
	if format == "json" {
		encoder := ffjson.NewEncoder(out)
		for _, inst := range instances {
			if err := encoder.Encode(toRendered(inst)); err != nil {
				return errors.Wrap(err, "encoding instance")
			}
		}
		return nil
	}
	for _, inst := range instances {
		line := inst.String()
		if format == "sparse" {
			line = inst.RenderSparse()
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func toRendered(inst *data.Instance) renderedInstance {
	r := renderedInstance{
		Weight:      inst.Weight(),
		Instance:    inst.String(),
		Masked:      []int{},
		ClassMasked: inst.ClassIsMasked(),
	}
	for j := 0; j < inst.NumAttributes(); j++ {
		if inst.IsMasked(j) {
			r.Masked = append(r.Masked, j)
		}
	}
	return r
}

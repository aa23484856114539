// Command apiprobe is the thin runner around the specification-to-test-plan
// compiler: it loads an OpenAPI/Swagger document, normalizes it, generates
// the full battery of test descriptors, dispatches each one over HTTP, and
// prints a summary of what came back vulnerable.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ffuf/apiprobe/pkg/config"
	"github.com/ffuf/apiprobe/pkg/evaluate"
	"github.com/ffuf/apiprobe/pkg/load"
	"github.com/ffuf/apiprobe/pkg/specparse"
	"github.com/ffuf/apiprobe/pkg/testplan"
)

var (
	version = "dev"

	cfgFile string
	conf    config.Config

	rootCmd = &cobra.Command{
		Use:   "apiprobe",
		Short: "Generate and run offensive security test cases against an OpenAPI/Swagger API",
		Long: `apiprobe normalizes an OpenAPI v3 or Swagger v2 document into a flat endpoint
model, generates a battery of probing requests for common API vulnerability
classes (BOLA, BOPLA, SQLi, OS command injection, XSS, SSTI, undocumented
verbs, missing authentication), dispatches each one, and reports what the
target flagged as vulnerable.`,
		RunE: runProbe,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	ctx, cancel := context.WithCancel(context.Background())
	conf = config.NewConfig(ctx, cancel)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .apiprobe.yaml)")
	rootCmd.Flags().StringVarP(&conf.SpecPath, "spec", "s", "", "path to the OpenAPI/Swagger document (required)")
	rootCmd.Flags().StringVarP(&conf.TargetOverride, "target", "t", "", "override the base URL derived from the spec's declared servers")
	rootCmd.Flags().StringSliceVarP(&conf.Checks, "checks", "c", nil, "vulnerability classes to run (default: all)")
	rootCmd.Flags().IntVar(&conf.Threads, "threads", 10, "request workers (not used: descriptors are dispatched one at a time)")
	rootCmd.Flags().IntVar(&conf.Timeout, "timeout", 10, "per-request timeout in seconds")
	rootCmd.Flags().StringVar(&conf.OutputFormat, "output-format", "json", "summary output format: json or text")
	rootCmd.Flags().StringVarP(&conf.OutputFile, "output", "o", "", "write the summary to this file instead of stdout")
	rootCmd.Flags().BoolVarP(&conf.Verbose, "verbose", "v", false, "log request dispatch errors to stderr")

	_ = rootCmd.MarkFlagRequired("spec")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiprobe %s\n", version)
		},
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".apiprobe")
	}
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func runProbe(cmd *cobra.Command, args []string) error {
	if strings.HasSuffix(cfgFile, ".toml") {
		flagged := conf
		if err := config.LoadTOMLOverrides(cfgFile, &conf); err != nil {
			return fmt.Errorf("loading TOML config: %w", err)
		}
		// Flags given explicitly on the command line win over the file.
		if cmd.Flags().Changed("threads") {
			conf.Threads = flagged.Threads
		}
		if cmd.Flags().Changed("timeout") {
			conf.Timeout = flagged.Timeout
		}
		if cmd.Flags().Changed("output-format") {
			conf.OutputFormat = flagged.OutputFormat
		}
	}

	doc, err := load.FromFile(conf.SpecPath)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	spec, err := specparse.Normalize(doc)
	if err != nil {
		return fmt.Errorf("normalizing spec: %w", err)
	}
	if conf.TargetOverride != "" {
		spec.BaseURL = conf.TargetOverride
	}

	generator := testplan.NewGenerator(testplan.ExecutionOptions{Headers: conf.Headers})
	descriptors := generatePlan(generator, spec, conf.Checks)

	executor := newHTTPExecutor(conf.Timeout)
	var findings []evaluate.Finding
	for _, td := range descriptors {
		resp, execErr := executor.Dispatch(cmd.Context(), td)
		if execErr != nil {
			if conf.Verbose {
				fmt.Fprintf(os.Stderr, "warning: %s %s: %v\n", td.Method, td.URL, execErr)
			}
			continue
		}
		findings = append(findings, evaluate.Evaluate(td, resp))
	}

	return writeSummary(findings)
}

// generatePlan runs every requested generator operation (or all ten
// when checks is empty) and concatenates their descriptors.
func generatePlan(g *testplan.Generator, spec *specparse.NormalizedSpec, checks []string) []testplan.TestDescriptor {
	all := map[string]func() []testplan.TestDescriptor{
		"unsupported-method": func() []testplan.TestDescriptor { return g.CheckUnsupportedHTTPMethods(spec, conf.SuccessCodes["unsupported-method"]) },
		"sqli":               func() []testplan.TestDescriptor { return g.SQLiFuzzParamsTest(spec, conf.SuccessCodes["sqli"]) },
		"sqli-path":          func() []testplan.TestDescriptor { return g.SQLiInURIPathTest(spec, conf.SuccessCodes["sqli-path"]) },
		"bola":               func() []testplan.TestDescriptor { return g.BOLAFuzzPathTest(spec, conf.SuccessCodes["bola"]) },
		"bola-trailing-slash": func() []testplan.TestDescriptor {
			return g.BOLAFuzzTrailingSlashTest(spec, conf.SuccessCodes["bola-trailing-slash"])
		},
		"bopla":          func() []testplan.TestDescriptor { return g.BOPLAFuzzTest(spec, conf.SuccessCodes["bopla"]) },
		"os-command":     func() []testplan.TestDescriptor { return g.OSCommandInjectionTest(spec) },
		"xss":            func() []testplan.TestDescriptor { return g.XSSHTMLInjectionTest(spec) },
		"ssti":           func() []testplan.TestDescriptor { return g.SSTIInjectionTest(spec) },
		"missing-auth":   func() []testplan.TestDescriptor { return g.MissingAuthFuzzTest(spec, conf.SuccessCodes["missing-auth"]) },
	}

	names := checks
	if len(names) == 0 {
		for name := range all {
			names = append(names, name)
		}
	}

	var out []testplan.TestDescriptor
	for _, name := range names {
		if fn, ok := all[name]; ok {
			out = append(out, fn()...)
		}
	}
	return out
}

func writeSummary(findings []evaluate.Finding) error {
	var out []byte
	var err error
	if conf.OutputFormat == "text" {
		out = []byte(evaluate.Summarize(findings))
	} else {
		out, err = json.MarshalIndent(findings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling findings: %w", err)
		}
	}

	if conf.OutputFile == "" {
		fmt.Println(string(out))
		return nil
	}
	return os.WriteFile(conf.OutputFile, out, 0o644)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

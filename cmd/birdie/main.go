package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/derekprior/birdie/internal/config"
	"github.com/derekprior/birdie/internal/excel"
	"github.com/derekprior/birdie/internal/schedule"
	"github.com/derekprior/birdie/internal/server"
	"github.com/derekprior/birdie/internal/store"
	"github.com/derekprior/birdie/internal/validator"
)

const defaultConfigFile = "config.yaml"

func resolveConfigPath(configFlag string) (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("no config file found. Either create %s in the current directory or pass --config", defaultConfigFile)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "birdie",
		Short: "Badminton round-robin schedule generator",
	}

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter config.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and validate schedules",
	}

	var configFile string
	scheduleCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: config.yaml in current directory)")

	var outputFile string
	generateCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate a schedule from a config file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runGenerate(configPath, outputFile)
		},
	}
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "schedule.xlsx", "Output Excel file path")

	validateCmd := &cobra.Command{
		Use:          "validate <schedule.xlsx>",
		Short:        "Validate an exported schedule",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}

	var addr string
	serveCmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serve the scheduling API over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	scheduleCmd.AddCommand(generateCmd, validateCmd)
	rootCmd.AddCommand(initCmd, scheduleCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("✓ Created %s\n", outputPath)
	return nil
}

const configTemplate = `# Birdie Session Configuration
# ============================
# This file defines one scheduling session: who is playing, how many
# courts are free, and the match format.

# An optional label for the session, stored in the exported workbook.
session:
  name: "Club night"

# Everyone attending. Duplicate and empty names are dropped; at least
# 5 unique players are required.
players:
  - Alice
  - Bob
  - Carol
  - Dmitri
  - Elena
  - Farid
  - Grace
  - Hana

# Number of courts available at the same time.
courts: 2

# "singles" (1v1) or "doubles" (2v2).
match_type: doubles
`

func runGenerate(configPath, outputPath string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	mt, err := schedule.ParseMatchType(cfg.MatchType)
	if err != nil {
		return err
	}

	roster := schedule.NormalizeRoster(cfg.Players)
	fmt.Printf("Scheduling %d players on %d court(s), %s...\n", len(roster), cfg.Courts, mt)

	res, err := schedule.Generate(cfg.Players, cfg.Courts, mt, schedule.UUIDSource{})
	if err != nil {
		return err
	}

	fmt.Printf("✓ %d rounds generated\n", len(res.Rounds))
	if res.Warning != "" {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", res.Warning)
	}

	rests, maxDiff := schedule.RestStats(res.Rounds, roster)
	runs := schedule.MaxConsecutiveRests(res.Rounds, roster)

	fmt.Println("\nPer Player Metrics:")
	fmt.Printf("  %-15s %6s %6s %12s\n", "Player", "Played", "Rested", "Longest Rest")
	for _, p := range roster {
		fmt.Printf("  %-15s %6d %6d %12d\n", p, len(res.Rounds)-rests[p], rests[p], runs[p])
	}
	fmt.Printf("\nRest spread across players: %d\n", maxDiff)

	f, err := excel.Generate(cfg.Session.Name, res, roster, cfg.Courts)
	if err != nil {
		return fmt.Errorf("generating Excel: %w", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}

	fmt.Printf("✓ Schedule saved to %s\n", outputPath)
	return nil
}

func runValidate(schedulePath string) error {
	violations, err := validator.Validate(schedulePath)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errors := 0
	warnings := 0
	for _, v := range violations {
		switch v.Type {
		case "error":
			errors++
			fmt.Printf("✗ %s\n", v.Message)
		case "warning":
			warnings++
			fmt.Printf("⚠ %s\n", v.Message)
		}
	}

	fmt.Printf("\nValidation complete: %d errors, %d warnings\n", errors, warnings)

	if errors > 0 {
		return fmt.Errorf("%d invariant violations found", errors)
	}
	return nil
}

func runServe(addr string) error {
	log := logrus.New()
	st := store.New()
	router := server.Router(st, schedule.UUIDSource{}, log)

	log.WithField("addr", addr).Info("birdie API listening")
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

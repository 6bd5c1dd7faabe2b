package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"parcel-scheduling-service/internal/adapters/repositories"
	"parcel-scheduling-service/internal/services"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// simulateConfig is the on-disk configuration for a single run: the
// experiment parameters plus the paths of the CSV data files.
type simulateConfig struct {
	services.ExperimentConfig `yaml:",inline"`

	ParcelFile string `json:"parcel_file" yaml:"parcel_file"`
	TruckFile  string `json:"truck_file" yaml:"truck_file"`
	MapFile    string `json:"map_file" yaml:"map_file"`
}

func main() {
	configPath := flag.String("config", "experiment.yaml", "experiment configuration file (YAML or JSON)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	repo := &repositories.FileFleetRepository{
		ParcelPath: cfg.ParcelFile,
		TruckPath:  cfg.TruckFile,
		MapPath:    cfg.MapFile,
	}

	ctx := context.Background()
	exp, err := services.LoadExperiment(ctx, cfg.ExperimentConfig, repo)
	if err != nil {
		return fmt.Errorf("load experiment: %w", err)
	}

	report, err := exp.Run(ctx)
	if err != nil {
		return fmt.Errorf("run experiment: %w", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

func loadConfig(path string) (*simulateConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := &simulateConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("load config: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("load config: parse %s: %w", path, err)
		}
	}

	if cfg.ParcelFile == "" || cfg.TruckFile == "" || cfg.MapFile == "" {
		return nil, fmt.Errorf("load config: parcel_file, truck_file and map_file are required")
	}

	return cfg, nil
}

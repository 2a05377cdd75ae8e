// Command generate runs the offline question generation engine against a
// plain-text file and writes the resulting question set as JSON, for
// batch content preparation without the API server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"quizcraft/internal/config"
	"quizcraft/internal/domain"
	"quizcraft/internal/dto"
	"quizcraft/internal/generator"
	"quizcraft/internal/logger"
	"quizcraft/internal/service"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to the plain-text study material (required)")
		title    = flag.String("title", "", "document title (defaults to the file name)")
		count    = flag.Int("count", 10, "number of questions to generate")
		types    = flag.String("types", "", "comma-separated question types (default: all)")
		seed     = flag.Int64("seed", 0, "RNG seed for reproducible output (0 = system)")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate -file material.txt [-title t] [-count n] [-types fill-in-blank,true-false] [-seed n]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	content, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Get().Fatal("Failed to read input file", zap.String("file", *filePath), zap.Error(err))
	}

	docTitle := *title
	if docTitle == "" {
		docTitle = *filePath
	}

	rng := generator.NewSystemRNG()
	if *seed != 0 {
		rng = generator.NewRNG(*seed)
	}
	engine := generator.NewEngine(cfg.Generation, rng, logger.Get())
	generationService := service.NewGenerationService(engine, nil, cfg)

	req := &dto.GenerateRequest{
		Title:   docTitle,
		Content: string(content),
		Count:   *count,
	}
	if *types != "" {
		for _, t := range strings.Split(*types, ",") {
			if _, err := domain.ParseQuestionType(t); err != nil {
				logger.Get().Fatal("Unknown question type", zap.String("type", t))
			}
			req.QuestionTypes = append(req.QuestionTypes, strings.TrimSpace(t))
		}
	}

	resp, err := generationService.GenerateQuestions(context.Background(), req)
	if err != nil {
		logger.Get().Fatal("Question generation failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		logger.Get().Fatal("Failed to encode output", zap.Error(err))
	}
	logger.Get().Info("Generation complete", zap.Int("questions", resp.Count))
}

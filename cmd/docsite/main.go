package main

import (
	"flag"
	"fmt"
	"os"

	"docsite/config"
	"docsite/docx"
	"docsite/render"
	"docsite/site"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loadConfig resolves the effective configuration: the optional config file
// first, then flag and environment overrides on top. An empty configPath
// means the conventional location, where an absent file is fine.
func loadConfig(configPath, inputPath, outputRoot string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if inputPath != "" {
		cfg.InputPath = inputPath
	}
	if outputRoot != "" {
		cfg.OutputRoot = outputRoot
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", getEnv("DOCSITE_CONFIG", ""), "Path to YAML config file")
	inputPath := flag.String("input", getEnv("DOCSITE_INPUT", ""), "Path to the source .docx document")
	outputRoot := flag.String("output", getEnv("DOCSITE_OUTPUT", ""), "Directory to write the site into")
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := loadConfig(*configPath, *inputPath, *outputRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	doc, err := docx.Open(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open document: %v\n", err)
		os.Exit(1)
	}
	defer doc.Close()

	s, err := site.Build(doc.Paragraphs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read document structure: %v\n", err)
		os.Exit(1)
	}

	summary, err := render.Run(cfg, doc, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write site: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Site written to %s\n", cfg.OutputRoot)
	fmt.Printf("  Sections: %d\n", summary.Sections)
	fmt.Printf("  Entries: %d (%d with detail pages)\n", summary.Items, summary.DetailPages)
	fmt.Printf("  Images: %d\n", summary.Images)
}

func printUsage() {
	fmt.Println("docsite - Convert a .docx document into a Jekyll site")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  docsite [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -config    Path to YAML config file (default: docsite.yaml)")
	fmt.Println("  -input     Path to the source .docx document")
	fmt.Println("  -output    Directory to write the site into")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DOCSITE_CONFIG  Path to YAML config file")
	fmt.Println("  DOCSITE_INPUT   Path to the source .docx document")
	fmt.Println("  DOCSITE_OUTPUT  Directory to write the site into")
}

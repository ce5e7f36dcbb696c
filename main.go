package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

// Build-time variables injected via ldflags.
var (
	Version        = "v0.0.0"
	CommitHash     = "dev"
	BuildTimestamp = "1970-01-01T00:00:00Z"
	Builder        = "unknown"
	GithubRepo     = "Cosmos-0118/Clop-For-Windows"
)

func versionString() string {
	return fmt.Sprintf("clop-icons %s-%s", Version, CommitHash)
}

func versionStringLong() string {
	return fmt.Sprintf("clop-icons %s-%s (built %s using %s)\nhttps://github.com/%s\n",
		Version, CommitHash, BuildTimestamp, Builder, GithubRepo)
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[clop-icons] ")

	showVersion := flag.Bool("version", false, "show version and exit")
	doUpdate := flag.Bool("update", false, "check and update to latest release")
	sourceRoot := flag.String("source-root", "", "root folder for relative task sources (env: CLOP_ICONS_SOURCE_ROOT)")
	outputDir := flag.String("output-dir", "", "output folder for relative task destinations (env: CLOP_ICONS_OUTPUT_DIR)")
	skipAppicon := flag.Bool("skip-appicon", false, "skip converting the AppIcon assets")
	skipClop := flag.Bool("skip-clop", false, "skip converting the clop assets")
	singleSrc := flag.String("src", "", "convert a single asset folder instead of the configured tasks (requires -dest)")
	singleDest := flag.String("dest", "", "destination ICO path for -src")
	flag.Usage = func() {
		fmt.Print(versionStringLong())
		fmt.Fprintf(os.Stderr, "\nUsage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Print(versionStringLong())
		return
	}

	if *doUpdate {
		selfUpdate()
		return
	}

	cfg := loadConfig()
	applyOverrides(&cfg, overrides{
		SourceRoot: *sourceRoot,
		OutputDir:  *outputDir,
	})

	tasks, err := scheduleTasks(cfg, taskSelection{
		SkipAppIcon: *skipAppicon,
		SkipClop:    *skipClop,
		SingleSrc:   *singleSrc,
		SingleDest:  *singleDest,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Task failures are isolated: a bad source aborts only its own
	// conversion, the rest of the batch still runs.
	failed := 0
	for _, task := range tasks {
		if err := convertFolder(task.source, task.dest); err != nil {
			log.Printf("Task %s failed: %v", task.name, err)
			failed++
		}
	}
	if failed > 0 {
		log.Printf("%d of %d tasks failed", failed, len(tasks))
		os.Exit(1)
	}
}

// conversionTask is one scheduled source -> dest run.
type conversionTask struct {
	name   string
	source string
	dest   string
}

// taskSelection holds the CLI switches that decide which tasks run.
type taskSelection struct {
	SkipAppIcon bool
	SkipClop    bool
	SingleSrc   string
	SingleDest  string
}

// scheduleTasks turns config plus CLI selection into the run list.
// -src/-dest define an ad-hoc task that replaces the configured ones.
func scheduleTasks(cfg Config, sel taskSelection) ([]conversionTask, error) {
	if sel.SingleSrc != "" || sel.SingleDest != "" {
		if sel.SingleSrc == "" || sel.SingleDest == "" {
			return nil, errors.New("-src and -dest must be used together")
		}
		return []conversionTask{{name: "adhoc", source: sel.SingleSrc, dest: sel.SingleDest}}, nil
	}

	var tasks []conversionTask
	for _, t := range cfg.Tasks {
		if sel.SkipAppIcon && t.Name == "appicon" {
			continue
		}
		if sel.SkipClop && t.Name == "clop" {
			continue
		}
		source, dest := cfg.resolvedPaths(t)
		tasks = append(tasks, conversionTask{name: t.Name, source: source, dest: dest})
	}
	if len(tasks) == 0 {
		return nil, errors.New("no conversion targets were scheduled")
	}
	return tasks, nil
}

// overrides holds CLI flag values for config overrides.
type overrides struct {
	SourceRoot string
	OutputDir  string
}

// applyStringOverride applies a string override from env var and flag.
func applyStringOverride(target *string, envKey, flagVal string) {
	if v := os.Getenv(envKey); v != "" {
		*target = v
	}
	if flagVal != "" {
		*target = flagVal
	}
}

// applyOverrides applies env vars and flags to config. Priority: flag > env > config file.
func applyOverrides(cfg *Config, o overrides) {
	applyStringOverride(&cfg.SourceRoot, "CLOP_ICONS_SOURCE_ROOT", o.SourceRoot)
	applyStringOverride(&cfg.OutputDir, "CLOP_ICONS_OUTPUT_DIR", o.OutputDir)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/ivxn/timebox/internal/archive"
	"github.com/ivxn/timebox/internal/config"
	"github.com/ivxn/timebox/internal/cron"
	"github.com/ivxn/timebox/internal/git"
	"github.com/ivxn/timebox/internal/planner"
	"github.com/ivxn/timebox/internal/store"
)

const version = "0.1.0"

const dataDirName = ".timebox"

func main() {
	cmd := "plan"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	switch cmd {
	case "plan":
		runPlan(ctx, cfg)

	case "cron":
		runCron(ctx)

	case "archive":
		runArchive(ctx, cfg)

	case "init":
		path, err := config.WriteDefault(cfg.Owner)
		if err != nil {
			fatal("init: %v", err)
		}
		fmt.Printf("config: %s\n", path)

	case "version":
		fmt.Printf("tb v%s (timebox)\n", version)

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func runPlan(ctx context.Context, cfg config.Config) {
	root := mustRepoRoot(ctx)

	st := store.New(filepath.Join(root, dataDirName))
	if err := st.Init(); err != nil {
		fatal("init store: %v", err)
	}

	p := planner.New(cfg, root, st)
	p.In = os.Stdin
	p.Out = os.Stdout

	if err := p.Run(ctx); err != nil {
		fatal("%v", err)
	}
}

func runCron(ctx context.Context) {
	jobs := cron.Jobs(ctx)
	if len(jobs) == 0 {
		fmt.Println("No active cron jobs detected.")
		return
	}

	fmt.Println("Your cron job schedules:")
	for _, j := range jobs {
		if j.Schedule != nil {
			fmt.Printf(" - %v | full line: %s\n", j.Schedule, j.Line)
		} else {
			fmt.Printf(" - Could not parse schedule: %s\n", j.Line)
		}
	}
}

func runArchive(ctx context.Context, cfg config.Config) {
	root := mustRepoRoot(ctx)

	if !cfg.Archive.Compress {
		fmt.Println("archive compression disabled in config")
		return
	}

	st := store.New(filepath.Join(root, dataDirName))
	archiveDir := filepath.Join(root, dataDirName, "archive")

	files := st.Files()
	if len(files) == 0 {
		fmt.Println("nothing to archive")
		return
	}

	for _, f := range files {
		dest, err := archive.Snapshot(f, archiveDir, time.Now())
		if err != nil {
			fatal("archive %s: %v", filepath.Base(f), err)
		}
		fmt.Printf("archived: %s\n", dest)
	}
}

// mustRepoRoot resolves the enclosing git repository root; without one
// the planner has nowhere to store state, which is the only fatal
// startup condition.
func mustRepoRoot(ctx context.Context) string {
	root, err := git.Root(ctx, ".")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Not inside a git repository. Please cd into a git repo folder and rerun.")
		os.Exit(1)
	}
	return root
}

func usage() {
	fmt.Fprintf(os.Stderr, `tb v%s — context-aware timebox planner

Usage:
  tb [plan]     Recommend a session from recent git activity (default)
  tb cron       List crontab schedules
  tb archive    Snapshot session history into .timebox/archive
  tb init       Write a default config file
  tb version    Print version
  tb help       Show this help

Environment:
  GITHUB_OWNER  GitHub account for the remote fallback source
  GITHUB_PAT    Credential for authenticated API calls (optional)

Configuration: ~/.config/timebox/config.toml
State: <repo root>/.timebox/
`, version)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "tb: "+format+"\n", args...)
	os.Exit(1)
}

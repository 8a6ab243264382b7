// Command prc2bin extracts resources from PalmOS PRC files.
//
// Usage:
//
//	prc2bin [flags] input.prc outdir
//
// Every resource is written as <type><id>.bin plus the raw 78-byte header
// as <input>.hdr. With -t, files are grouped into per-category directories.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/palmkit/prc"
	"github.com/palmkit/prc/internal/sink"
)

type config struct {
	byType    bool
	verbose   bool
	manifest  bool
	compress  bool
	overwrite bool
	workers   int
	input     string
	outDir    string
}

func main() {
	log.SetFlags(0)

	cfg := parseFlags()
	if err := run(cfg); err != nil {
		log.Fatalf("prc2bin: %v", err)
	}
}

func parseFlags() config {
	var cfg config
	flag.BoolVar(&cfg.byType, "t", false, "organize extracted files into subdirectories by resource type")
	flag.BoolVar(&cfg.verbose, "v", false, "print detailed header information")
	flag.BoolVar(&cfg.manifest, "manifest", false, "write manifest.json with per-resource digests")
	flag.BoolVar(&cfg.compress, "zstd", false, "compress extracted resources with zstd")
	flag.BoolVar(&cfg.overwrite, "overwrite", false, "overwrite existing files instead of skipping them")
	flag.IntVar(&cfg.workers, "workers", 1, "number of concurrent writers")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: prc2bin [flags] input.prc outdir\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.input = flag.Arg(0)
	cfg.outDir = flag.Arg(1)
	return cfg
}

func run(cfg config) error {
	data, err := os.ReadFile(cfg.input)
	if err != nil {
		return err
	}

	f, err := prc.Parse(data)
	if err != nil {
		return err
	}

	if cfg.verbose {
		printInfo(f.Info())
	}

	opts := []sink.Option{
		sink.WithOverwrite(cfg.overwrite),
		sink.WithByType(cfg.byType),
		sink.WithHeaderName(filepath.Base(cfg.input) + ".hdr"),
	}
	if cfg.compress {
		opts = append(opts, sink.WithZstd(zstd.SpeedDefault))
	}
	s := sink.New(cfg.outDir, opts...)

	proc := sink.NewProcessor(
		sink.WithWorkers(cfg.workers),
		sink.WithProgress(func(entry prc.ResourceEntry, path string) {
			fmt.Printf("writing %s (type=%s id=%d)\n", path, entry.Type, entry.ID)
		}),
	)
	written, err := proc.Process(f, s)
	if err != nil {
		return err
	}

	if cfg.manifest {
		if err := writeManifest(f, filepath.Join(cfg.outDir, "manifest.json")); err != nil {
			return err
		}
	}

	fmt.Printf("%d resources and header written.\n", written)
	return nil
}

func writeManifest(f *prc.File, path string) error {
	out, err := json.MarshalIndent(f.Manifest(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}

func printInfo(info *prc.Info) {
	fmt.Printf("Name:              %s\n", info.Name())
	fmt.Printf("Type:              %s\n", info.Type())
	fmt.Printf("Creator ID:        %s\n", info.Creator())
	fmt.Printf("Flags:             0x%04x (Beamable: %s)\n", info.Flags(), yesNo(info.Beamable()))
	fmt.Printf("Version:           0x%04x\n", info.Version())
	fmt.Printf("Created:           %s\n", timeString(info.Created()))
	fmt.Printf("Modified:          %s\n", timeString(info.Modified()))
	fmt.Printf("Last Backup:       %s\n", timeString(info.LastBackup()))
	fmt.Printf("Number of Records: %d\n", info.NumResources())
	fmt.Printf("Payload Bytes:     %d\n", info.TotalPayloadBytes())

	if findings := info.Findings(); len(findings) != 0 {
		fmt.Println("Warnings:")
		for _, w := range findings {
			fmt.Printf("  - %s\n", w)
		}
	}
	fmt.Println()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func timeString(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("2006-01-02 15:04:05 UTC")
}

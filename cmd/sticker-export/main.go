package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ironsheep/sticker-export/internal/fetch"
	"github.com/ironsheep/sticker-export/internal/pack"
	"github.com/ironsheep/sticker-export/internal/sticker"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("sticker-export %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	packMode := flag.Bool("pack", false, "build a sticker pack archive instead of a single sticker")
	out := flag.String("o", "", "output path (default: sticker.webp or whatsapp-pack.zip)")
	name := flag.String("name", "Sticker Pack", "pack display name")
	author := flag.String("author", "", "pack author")
	cover := flag.Int("cover", 0, "index of the sticker used as pack cover")
	concurrency := flag.Int("concurrency", 1, "how many stickers to process at once in pack mode")
	flag.Parse()

	// Logging goes to stderr so stdout stays clean for future piping
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	debug := os.Getenv("STICKER_EXPORT_LOG_LEVEL") == "debug"

	inputs := flag.Args()
	if len(inputs) == 0 {
		log.Fatal("no inputs: pass image files or http(s) URLs")
	}
	if !*packMode && len(inputs) != 1 {
		log.Fatalf("single-sticker mode takes exactly one input, got %d (use -pack for batches)", len(inputs))
	}

	buffers, err := loadInputs(inputs, debug)
	if err != nil {
		log.Fatalf("Input error: %v", err)
	}

	var outBytes []byte
	outPath := *out

	if *packMode {
		builder := pack.NewBuilder()
		builder.Concurrency = *concurrency
		archive, err := builder.Build(buffers, *name, *author, *cover)
		if err != nil {
			log.Fatalf("Pack build failed: %v", err)
		}
		outBytes = archive.Bytes
		if outPath == "" {
			outPath = archive.Filename
		}
	} else {
		asset, err := sticker.NewBuilder().Build(buffers[0])
		if err != nil {
			log.Fatalf("Sticker build failed: %v", err)
		}
		outBytes = asset.Bytes
		if outPath == "" {
			outPath = asset.Filename
		}
	}

	if err := os.WriteFile(outPath, outBytes, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", outPath, err)
	}
	if debug {
		log.Printf("wrote %s (%d bytes)", outPath, len(outBytes))
	}
}

// loadInputs resolves each argument to a byte buffer: http(s) URLs go
// through the fetch cache, everything else is read from disk.
func loadInputs(args []string, debug bool) ([][]byte, error) {
	cache := fetch.NewCache(fetch.NewClient())
	ctx := context.Background()

	buffers := make([][]byte, 0, len(args))
	for _, arg := range args {
		var (
			data []byte
			err  error
		)
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			data, err = cache.Load(ctx, arg)
		} else {
			data, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, err
		}
		if debug {
			log.Printf("loaded %s (%d bytes)", arg, len(data))
		}
		buffers = append(buffers, data)
	}
	return buffers, nil
}

func printHelp() {
	fmt.Println("sticker-export - convert images into WhatsApp-style sticker assets")
	fmt.Println()
	fmt.Println("Usage: sticker-export [options] <image-or-url>...")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -pack            Build a zip pack from up to 30 inputs")
	fmt.Println("  -o <path>        Output path")
	fmt.Println("  -name <name>     Pack display name (pack mode)")
	fmt.Println("  -author <name>   Pack author (pack mode)")
	fmt.Println("  -cover <index>   Cover sticker index (pack mode)")
	fmt.Println("  -concurrency <n> Parallel sticker builds (pack mode)")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  STICKER_EXPORT_LOG_LEVEL=debug    Enable debug logging")
}

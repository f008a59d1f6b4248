// Command xliffcap is the CLI for the XliffCapsule document engine.
// It detects XLIFF generations, converts documents to and from flat
// .resx resource files, normalizes document serialization and prints
// content digests.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/FocuswithJustin/XliffCapsule/core/digest"
	"github.com/FocuswithJustin/XliffCapsule/core/resx"
	"github.com/FocuswithJustin/XliffCapsule/core/xliff"
	"github.com/FocuswithJustin/XliffCapsule/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for xliffcap.
var CLI struct {
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `name:"log-format" help:"Log output format (json, text)" enum:"json,text" default:"text"`

	Detect  DetectCmd  `cmd:"" help:"Detect the XLIFF generation of a document"`
	Export  ExportCmd  `cmd:"" help:"Flatten an XLIFF document into a resource file"`
	Import  ImportCmd  `cmd:"" help:"Build an XLIFF document from a resource file"`
	Fmt     FmtCmd     `cmd:"" help:"Reserialize a document in canonical form"`
	Digest  DigestCmd  `cmd:"" help:"Print content digests of a document's canonical form"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// runContext returns a context tagged with a fresh run ID so every log
// line of one invocation can be correlated.
func runContext() context.Context {
	return logging.WithRunID(context.Background(), uuid.New().String())
}

// DetectCmd reports which schema generation a document uses.
type DetectCmd struct {
	Path string `arg:"" help:"Path to XLIFF document" type:"existingfile"`
}

func (c *DetectCmd) Run() error {
	gen, err := xliff.DetectVersionFile(c.Path)
	if err != nil {
		return err
	}
	fmt.Println(gen)
	return nil
}

// ExportCmd flattens an XLIFF document into a resource file.
type ExportCmd struct {
	Path                string `arg:"" help:"Path to XLIFF document" type:"existingfile"`
	Out                 string `required:"" help:"Output resource file path" type:"path"`
	UseTarget           bool   `name:"use-target" help:"Use translated text as entry values, falling back to source"`
	IncludeUntranslated bool   `name:"include-untranslated" help:"Keep entries whose target is absent or empty"`
}

func (c *ExportCmd) Run() error {
	ctx := runContext()

	doc, err := xliff.LoadFile(c.Path)
	if err != nil {
		return err
	}
	logging.DocumentLoaded(ctx, c.Path, doc.Generation.String(), fileCount(doc))

	out, err := resx.Export(doc, resx.ExportOptions{
		UseTargetAsValue:    c.UseTarget,
		IncludeUntranslated: c.IncludeUntranslated,
	})
	if err != nil {
		return err
	}
	if err := out.Write(c.Out); err != nil {
		return err
	}
	logging.ConversionEvent(ctx, "export", len(out.Entries), "out", c.Out)

	fmt.Printf("Exported %d entries to %s\n", len(out.Entries), c.Out)
	return nil
}

// ImportCmd builds an XLIFF document from a resource file.
type ImportCmd struct {
	Path    string `arg:"" help:"Path to resource file" type:"existingfile"`
	Out     string `required:"" help:"Output document path" type:"path"`
	SrcLang string `name:"src-lang" required:"" help:"Source language code"`
	TrgLang string `name:"trg-lang" help:"Target language code"`
	Xliff2  bool   `name:"xliff2" help:"Emit a 2.0 document instead of 1.2"`
}

func (c *ImportCmd) Run() error {
	ctx := runContext()

	var doc *xliff.Document
	if c.Xliff2 {
		v, err := resx.ImportV20File(c.Path, c.SrcLang, c.TrgLang)
		if err != nil {
			return err
		}
		doc = xliff.NewV20(v)
	} else {
		v, err := resx.ImportV12File(c.Path, c.SrcLang, c.TrgLang)
		if err != nil {
			return err
		}
		doc = xliff.NewV12(v)
	}

	if err := xliff.Save(doc, c.Out, true); err != nil {
		return err
	}
	logging.ConversionEvent(ctx, "import", unitCount(doc), "out", c.Out)

	fmt.Printf("Imported %s as %s into %s\n", c.Path, doc.Generation, c.Out)
	return nil
}

// FmtCmd loads a document and reserializes it in canonical pretty form.
type FmtCmd struct {
	Path    string `arg:"" help:"Path to XLIFF document" type:"existingfile"`
	Out     string `help:"Output path (defaults to stdout)" type:"path"`
	Compact bool   `help:"Emit compact output instead of indented"`
}

func (c *FmtCmd) Run() error {
	ctx := runContext()

	doc, err := xliff.LoadFile(c.Path)
	if err != nil {
		return err
	}
	logging.DocumentLoaded(ctx, c.Path, doc.Generation.String(), fileCount(doc))

	if c.Out == "" {
		data, err := xliff.Marshal(doc, !c.Compact)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := xliff.Save(doc, c.Out, !c.Compact); err != nil {
		return err
	}
	logging.DocumentSaved(ctx, c.Out, doc.Generation.String(), 0)
	return nil
}

// DigestCmd prints the digests of a document's canonical serialization.
// Hashing the canonical form rather than the stored bytes makes the
// digest stable across compression and indentation differences.
type DigestCmd struct {
	Path string `arg:"" help:"Path to XLIFF document" type:"existingfile"`
}

func (c *DigestCmd) Run() error {
	doc, err := xliff.LoadFile(c.Path)
	if err != nil {
		return err
	}
	data, err := xliff.Marshal(doc, false)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(digest.Sum(data), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("xliffcap version %s\n", version)
	return nil
}

func fileCount(doc *xliff.Document) int {
	switch doc.Generation {
	case xliff.Generation12:
		return len(doc.V12.Files)
	case xliff.Generation20:
		return len(doc.V20.Files)
	default:
		return 0
	}
}

func unitCount(doc *xliff.Document) int {
	n := 0
	switch doc.Generation {
	case xliff.Generation12:
		for i := range doc.V12.Files {
			n += len(doc.V12.Files[i].Body.Units)
		}
	case xliff.Generation20:
		for i := range doc.V20.Files {
			n += len(doc.V20.Files[i].Units)
		}
	}
	return n
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseFormat(s string) logging.Format {
	if s == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("xliffcap"),
		kong.Description("XLIFF document engine and flat-resource converter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(parseLevel(CLI.LogLevel), parseFormat(CLI.LogFormat))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

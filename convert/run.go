package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docstyle/archive"
	"docstyle/config"
	"docstyle/content"
	"docstyle/params"
	"docstyle/state"
)

// StdStream is used on command line in place of SOURCE or DESTINATION to
// read from STDIN or write to STDOUT.
const StdStream = "-"

// source is a parameter document read into memory.
type source struct {
	// name is used for format detection and in messages, it is base file
	// name, path inside archive or "stdin"
	name  string
	stdin bool
	data  []byte
}

// request is everything process needs besides the source.
type request struct {
	format params.Format
	output config.OutputFmt
	// kind is set when source is a bare parameter bag rather than document
	// tree
	kind *content.Kind
	opts Options
}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Named("resolve")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	rc := env.Cfg.Resolver
	if cmd.IsSet("format") {
		rc.InputFormat = cmd.String("format")
	}
	if cmd.IsSet("output") {
		if rc.Output, err = config.ParseOutputFmt(cmd.String("output")); err != nil {
			log.Warn("Unknown output format requested, switching to yaml", zap.Error(err))
			rc.Output = config.OutputFmtYaml
		}
	}
	if cmd.IsSet("font-size") {
		if fs := cmd.Float("font-size"); fs > 0 {
			rc.FontSize = float32(fs)
		} else {
			log.Warn("Font size must be positive, ignoring", zap.Float64("font-size", fs))
		}
	}
	if cmd.IsSet("workers") {
		rc.Workers = max(cmd.Int("workers"), 0)
	}
	if cmd.IsSet("charset") {
		rc.Charset = cmd.String("charset")
	}

	req := request{output: rc.Output, opts: Options{FontSize: rc.FontSize, Workers: rc.Workers}}
	if req.format, err = params.ParseFormat(rc.InputFormat); err != nil {
		return err
	}
	if name := cmd.String("kind"); len(name) > 0 {
		k, err := content.ParseKind(name)
		if err != nil {
			return err
		}
		if !styled(k) {
			return fmt.Errorf("styles could not be resolved for %s, only for table, cell and paragraph", k)
		}
		req.kind = &k
	}

	env.Overwrite = cmd.Bool("overwrite")

	if err := env.SetCodePage(rc.Charset); err != nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", rc.Charset), zap.Error(err))
	} else if env.CodePage != nil {
		log.Debug("Converting input without unicode BOM", zap.String("charset", env.CodePageName()))
	}

	in, err := readSource(ctx, src)
	if err != nil {
		return err
	}

	// when result goes to STDOUT it should not be mixed with progress messages
	progress := log.Info
	if dst == StdStream || (len(dst) == 0 && in.stdin) {
		progress = log.Debug
	}
	progress("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", req.output))
	defer func(start time.Time) {
		if err == nil {
			progress("Processing completed", zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	return process(ctx, in, dst, req, log)
}

// readSource reads parameter document from STDIN, from a file or from a file
// inside zip archive: "[path_to_archive]archive.zip[/path_in_archive]".
func readSource(ctx context.Context, src string) (*source, error) {
	if src == StdStream {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("unable to read STDIN: %w", err)
		}
		return &source{name: "stdin", stdin: true, data: data}, nil
	}

	src, err := filepath.Abs(src)
	if err != nil {
		return nil, err
	}

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}
		rest := strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))

		if fi.Mode().IsDir() {
			if len(rest) == 0 {
				return nil, fmt.Errorf("input source is a directory (%s)", head)
			}
			return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, rest)
		}
		if !fi.Mode().IsRegular() {
			return nil, fmt.Errorf("unexpected path mode for (%s) => (%s)", head, rest)
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return nil, fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			doc, err := archive.ReadDocument(head, filepath.ToSlash(rest), isDocumentName)
			if err != nil {
				return nil, fmt.Errorf("unable to read from archive (%s): %w", head, err)
			}
			return &source{name: doc.Name, data: doc.Data}, nil
		}
		if len(tail) != 0 {
			// regular file cannot have tail
			return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, rest)
		}

		data, err := os.ReadFile(head)
		if err != nil {
			return nil, err
		}
		return &source{name: filepath.Base(head), data: data}, nil
	}
	return nil, fmt.Errorf("input source was not found (%s)", src)
}

// process handles resolution logic independently of CLI framework.
func process(ctx context.Context, in *source, dst string, req request, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	env.Rpt.StoreData(config.EntryName("input", in.name), in.data)

	if err := checkNotBinary(in.data); err != nil {
		return err
	}
	data, err := toUTF8(in.data, env.CodePage)
	if err != nil {
		return fmt.Errorf("unable to convert %s to UTF-8: %w", in.name, err)
	}

	v, err := params.Decode(bytes.NewReader(data), in.name, req.format)
	if err != nil {
		return err
	}

	var (
		tree    *content.Tree
		results []Result
	)
	if req.kind != nil {
		p, ok := params.AsObject(v)
		if !ok {
			return fmt.Errorf("parameters must be an object, got %s", v.Kind())
		}
		results = []Result{ResolveParams(*req.kind, "params", p, req.opts.FontSize)}
	} else {
		if tree, err = content.Build(v, log); err != nil {
			return fmt.Errorf("unable to build document tree (%s): %w", in.name, err)
		}
		env.Rpt.StoreData("content/tree.txt", []byte(tree.String()))
		if results, err = ResolveTree(ctx, tree, req.opts, log); err != nil {
			return err
		}
	}

	var out bytes.Buffer
	if err := Render(&out, req.output, tree, results); err != nil {
		return err
	}

	outputName := buildOutputPath(in, dst, req.output)
	if err := writeOutput(outputName, out.Bytes(), env.Overwrite, log); err != nil {
		return err
	}
	if len(outputName) == 0 {
		outputName = "styles" + req.output.Ext()
	}
	env.Rpt.StoreData(config.EntryName("output", outputName), out.Bytes())
	return nil
}

// buildOutputPath returns empty string when output should go to STDOUT. When
// destination is absent or is a directory output name is derived from source
// name, transliterated and lower cased.
func buildOutputPath(in *source, dst string, format config.OutputFmt) string {
	if dst == StdStream || (len(dst) == 0 && in.stdin) {
		return ""
	}
	base := filepath.Base(in.name)
	stem := slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))
	if len(stem) == 0 {
		stem = "document"
	}
	name := stem + ".styles" + format.Ext()
	if len(dst) == 0 {
		return name
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		return filepath.Join(dst, name)
	}
	return dst
}

func writeOutput(name string, data []byte, overwrite bool, log *zap.Logger) error {
	if len(name) == 0 {
		_, err := os.Stdout.Write(data)
		return err
	}

	if _, err := os.Stat(name); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	log.Debug("Styles written", zap.String("file", name), zap.Int("size", len(data)))
	return nil
}

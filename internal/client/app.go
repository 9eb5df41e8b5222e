package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-qr-redirect/internal/adapter"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/qrcode"
	"github.com/MKhiriev/go-qr-redirect/models"
)

const usage = `usage: qr-client <command> [flags]

commands:
  generate -user ID -data URL [-png FILE]   create a QR code redirect
  list     -user ID                         list a user's QR codes
  update   -id QR -user ID -data URL        change the redirect target
  delete   -id QR -user ID                  delete a QR code
  resolve  -id QR                           print the redirect target
  image    -id QR -out FILE                 download the QR code PNG
  version                                   print client and server versions
`

type App struct {
	adapter   adapter.QRCodeAdapter
	buildInfo models.AppBuildInfo

	out io.Writer

	logger *logger.Logger
}

func NewApp(qrAdapter adapter.QRCodeAdapter, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	if qrAdapter == nil {
		return nil, ErrNilAdapter
	}
	if out == nil {
		out = os.Stdout
	}

	return &App{
		adapter:   qrAdapter,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running client command")

	switch command {
	case "generate":
		return a.generate(ctx, rest)
	case "list":
		return a.list(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "resolve":
		return a.resolve(ctx, rest)
	case "image":
		return a.image(ctx, rest)
	case "version":
		return a.version(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *App) generate(ctx context.Context, args []string) error {
	fs := newFlagSet("generate")
	userID := fs.String("user", "", "owner user id")
	data := fs.String("data", "", "redirect target")
	pngPath := fs.String("png", "", "write the rendered PNG to this file")
	if err := parseFlags(fs, args, map[string]*string{"user": userID, "data": data}); err != nil {
		return err
	}

	view, err := a.adapter.Generate(ctx, models.GenerateRequest{UserID: *userID, Data: *data})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if *pngPath != "" {
		png, err := qrcode.DecodeDataURL(view.QRCodeImage)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if err = os.WriteFile(*pngPath, png, 0o644); err != nil {
			return fmt.Errorf("generate: write png: %w", err)
		}
	}

	return a.printJSON(view)
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	userID := fs.String("user", "", "owner user id")
	if err := parseFlags(fs, args, map[string]*string{"user": userID}); err != nil {
		return err
	}

	qrCodes, err := a.adapter.List(ctx, *userID)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	return a.printJSON(qrCodes)
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := newFlagSet("update")
	qrCodeID := fs.String("id", "", "qr code id")
	userID := fs.String("user", "", "owner user id")
	data := fs.String("data", "", "new redirect target")
	if err := parseFlags(fs, args, map[string]*string{"id": qrCodeID, "user": userID, "data": data}); err != nil {
		return err
	}

	view, err := a.adapter.Update(ctx, models.UpdateRequest{QRCodeID: *qrCodeID, UserID: *userID, Data: *data})
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	return a.printJSON(view)
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	qrCodeID := fs.String("id", "", "qr code id")
	userID := fs.String("user", "", "owner user id")
	if err := parseFlags(fs, args, map[string]*string{"id": qrCodeID, "user": userID}); err != nil {
		return err
	}

	if err := a.adapter.Delete(ctx, models.DeleteRequest{QRCodeID: *qrCodeID, UserID: *userID}); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	fmt.Fprintf(a.out, "deleted %s\n", *qrCodeID)
	return nil
}

func (a *App) resolve(ctx context.Context, args []string) error {
	fs := newFlagSet("resolve")
	qrCodeID := fs.String("id", "", "qr code id")
	if err := parseFlags(fs, args, map[string]*string{"id": qrCodeID}); err != nil {
		return err
	}

	target, err := a.adapter.Resolve(ctx, *qrCodeID)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	fmt.Fprintln(a.out, target)
	return nil
}

func (a *App) image(ctx context.Context, args []string) error {
	fs := newFlagSet("image")
	qrCodeID := fs.String("id", "", "qr code id")
	out := fs.String("out", "", "destination file")
	if err := parseFlags(fs, args, map[string]*string{"id": qrCodeID, "out": out}); err != nil {
		return err
	}

	png, err := a.adapter.Image(ctx, *qrCodeID)
	if err != nil {
		return fmt.Errorf("image: %w", err)
	}
	if err = os.WriteFile(*out, png, 0o644); err != nil {
		return fmt.Errorf("image: write file: %w", err)
	}

	fmt.Fprintf(a.out, "wrote %d bytes to %s\n", len(png), *out)
	return nil
}

func (a *App) version(ctx context.Context) error {
	fmt.Fprintf(a.out, "client: %s (built %s, commit %s)\n",
		orNA(a.buildInfo.BuildVersion()), orNA(a.buildInfo.BuildDate()), orNA(a.buildInfo.BuildCommit()))

	serverVersion, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}

	fmt.Fprintf(a.out, "server: %s\n", serverVersion)
	return nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFlags parses args and checks that every flag in required is non-blank.
func parseFlags(fs *flag.FlagSet, args []string, required map[string]*string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}

	var missing []string
	fs.VisitAll(func(f *flag.Flag) {
		if v, ok := required[f.Name]; ok && strings.TrimSpace(*v) == "" {
			missing = append(missing, "-"+f.Name)
		}
	})
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", fs.Name(), ErrMissingFlag, strings.Join(missing, ", "))
	}

	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

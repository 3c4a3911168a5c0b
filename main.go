package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"
	"github.com/vovashkil/netbox-api-scripts/internal/build"
	"github.com/vovashkil/netbox-api-scripts/internal/cmd"
	"github.com/vovashkil/netbox-api-scripts/internal/common"
	nbhttp "github.com/vovashkil/netbox-api-scripts/internal/http"
	"github.com/vovashkil/netbox-api-scripts/internal/nbctl"
	"github.com/vovashkil/netbox-api-scripts/internal/trace"
	"github.com/vovashkil/netbox-api-scripts/internal/update"
)

func main() {
	// ensure the pterm info width matches the other printers
	pterm.Info.Prefix.Text = " INFO  "
	printUpdateMsg := checkForNewerNbctlVersion()
	handleErr(run())
	printUpdateMsg()
}

func run() error {
	ctx, cancel := cliContext()
	defer cancel()

	shutdowns, err := trace.Init(ctx)
	if err != nil {
		pterm.Debug.Printfln("trace init: %s", err)
	}
	defer func() {
		for _, shutdown := range shutdowns {
			shutdown()
		}
	}()

	var root cmd.Cmd
	parser, err := kong.New(
		&root,
		kong.Name(common.AppName),
		kong.Description("NetBox command line tool for idempotent site management."),
		kong.UsageOnError(),
		kong.Vars{
			"default_status": common.DefaultStatus,
			"default_tag":    common.DefaultTag,
		},
	)
	if err != nil {
		return err
	}
	parsed, err := parser.Parse(os.Args[1:])
	if err != nil {
		return err
	}
	parsed.BindToProvider(bindCtx(ctx))
	return parsed.Run()
}

func handleErr(err error) {
	if err == nil {
		return
	}

	pterm.Error.Println(err)

	var errParse *kong.ParseError
	if errors.As(err, &errParse) {
		_ = kong.DefaultHelpPrinter(kong.HelpOptions{}, errParse.Context)
	}

	var e *nbctl.Error
	if errors.As(err, &e) {
		pterm.Println()
		pterm.Info.Println(e.Help())
	}

	os.Exit(nbctl.ExitCode(err))
}

// checks for a newer version of nbctl.
// returns a function that, when called, will print the message about the new version.
func checkForNewerNbctlVersion() func() {
	c := make(chan string)
	go func() {
		defer close(c)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		ver, err := update.Check(ctx, nbhttp.DefaultClient, build.Version)
		if err != nil {
			pterm.Debug.Printfln("update check: %s", err)
		} else {
			c <- ver
		}
	}()

	return func() {
		ver := <-c
		if ver != "" {
			pterm.Info.Printfln("A new release of nbctl is available: %s -> %s\nUpdating to the latest version is highly recommended", build.Version, ver)
		}
	}
}

// get a context that listens for interrupt/shutdown signals.
func cliContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	// listen for shutdown signals
	go func() {
		signalCh := make(chan os.Signal, 1)
		signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
		<-signalCh

		cancel()
	}()
	return ctx, cancel
}

// bindCtx exists to allow kong to correctly inject a context.Context into the Run methods on the commands.
func bindCtx(ctx context.Context) func() (context.Context, error) {
	return func() (context.Context, error) {
		return ctx, nil
	}
}

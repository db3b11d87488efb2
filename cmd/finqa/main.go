// Command finqa inspects the fixture environment and runs a quick smoke pass
// against the Finances API.
//
//	finqa [--config path] [--base-url url] env
//	finqa resolve <root> <profiles>...
//	finqa token [profiles]...
//	finqa smoke
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"

	"github.com/bobmcallan/finqa/internal/app"
	"github.com/bobmcallan/finqa/internal/common"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cli := kingpin.New("finqa", "Fixture and smoke tooling for the Finances API").
		UsageWriter(stderr).
		ErrorWriter(stderr).
		Terminate(nil)
	cli.Version(common.GetFullVersion())

	configPath := cli.Flag("config", "config file (default $FINQA_CONFIG or config/finqa.toml)").String()
	baseURL := cli.Flag("base-url", "override the environment base URL").String()
	timeout := cli.Flag("timeout", "overall deadline").Default("2m").Duration()

	envCmd := cli.Command("env", "show the active environment")

	resolveCmd := cli.Command("resolve", "print one matching fixture as YAML")
	resolveRoot := resolveCmd.Arg("root", "fixture root key").Required().String()
	resolveProfiles := resolveCmd.Arg("profiles", "profile tags").Required().Strings()

	tokenCmd := cli.Command("token", "log in as a users fixture")
	tokenProfiles := tokenCmd.Arg("profiles", "profile tags (default valid)").Strings()

	smokeCmd := cli.Command("smoke", "run the happy path against the API")

	cmd, err := cli.Parse(args)
	if err != nil {
		cli.Errorf("%s, try --help", err)
		return 2
	}

	opts := []app.Option{app.WithLogger(common.NewLogger("warn"))}
	if *baseURL != "" {
		opts = append(opts, app.WithBaseURL(*baseURL))
	}
	a, err := app.NewApp(*configPath, opts...)
	if err != nil {
		printError(stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch cmd {
	case envCmd.FullCommand():
		return cmdEnv(a, stdout)
	case resolveCmd.FullCommand():
		return cmdResolve(a, *resolveRoot, strings.Join(*resolveProfiles, " "), stdout, stderr)
	case tokenCmd.FullCommand():
		profiles := "valid"
		if len(*tokenProfiles) > 0 {
			profiles = strings.Join(*tokenProfiles, " ")
		}
		return cmdToken(ctx, a, profiles, stdout, stderr)
	case smokeCmd.FullCommand():
		if failed := runSmoke(ctx, a, stdout); failed > 0 {
			return 1
		}
		return 0
	}
	return 2
}

func cmdEnv(a *app.App, w io.Writer) int {
	header(w, "finqa "+common.GetVersion())
	fmt.Fprintf(w, "  %-12s %s\n", "Environment", a.Config.Environment)
	fmt.Fprintf(w, "  %-12s %s\n", "Base URL", a.BaseURL)
	fmt.Fprintf(w, "  %-12s %s\n", "Fixtures", a.Config.Fixtures.Path)
	for _, root := range a.Fixtures.Roots() {
		fmt.Fprintf(w, "  %-12s %d\n", root, len(a.Fixtures.Records(root)))
	}
	return 0
}

func cmdResolve(a *app.App, root, profiles string, stdout, stderr io.Writer) int {
	rec, err := a.Fixtures.Resolve(root, profiles)
	if err != nil {
		printError(stderr, err)
		return 1
	}
	doc := rec.Fields()
	doc["profiles"] = rec.Profiles

	out, err := yaml.Marshal(doc)
	if err != nil {
		printError(stderr, err)
		return 1
	}
	stdout.Write(out)
	return 0
}

func cmdToken(ctx context.Context, a *app.App, profiles string, stdout, stderr io.Writer) int {
	token, err := a.Token(ctx, profiles)
	if err != nil {
		printError(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, token)
	return 0
}

// Command learngl runs a Learn OpenGL lesson by chapter number.
//
//	learngl list
//	learngl 4.2 --watch
package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paperboard/learnopengl/internal/config"
	"github.com/paperboard/learnopengl/internal/logging"
	_ "github.com/paperboard/learnopengl/lessons" // register lessons
	"github.com/paperboard/learnopengl/tutorial"
)

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

type options struct {
	configPath string
	shaders    string
	assets     string
	debug      bool
	watch      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	var opts options

	root := &cobra.Command{
		Use:           "learngl <lesson>",
		Short:         "Run a Learn OpenGL lesson",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLesson(cmd, opts, args[0])
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "settings file (default ./"+config.DefaultFile+" if present)")
	flags.StringVar(&opts.shaders, "shaders", "", "shader directory")
	flags.StringVar(&opts.assets, "assets", "", "asset directory")
	flags.BoolVar(&opts.debug, "debug", false, "debug logging")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "reload shaders when their files change")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available lessons",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range tutorial.All() {
				fmt.Fprintf(w, "%s\t%s\n", t.ID, t.Title)
			}
			w.Flush()
		},
	})

	return root

}

func loadConfig(opts options) (config.Config, error) {

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	// flags win over the settings file
	if opts.shaders != "" {
		cfg.Paths.Shaders = opts.shaders
	}
	if opts.assets != "" {
		cfg.Paths.Assets = opts.assets
	}
	if opts.watch {
		cfg.Paths.Watch = true
	}
	if opts.debug {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}

	return cfg, nil

}

func runLesson(cmd *cobra.Command, opts options, id string) error {

	t, err := tutorial.Lookup(id)
	if err != nil {
		return fmt.Errorf("%w (run %q for the list)", err, cmd.Root().Name()+" list")
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting lesson", zap.String("id", t.ID), zap.String("title", t.Title))

	return t.Run(tutorial.Env{Config: cfg, Log: log})

}

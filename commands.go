package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `Serves the single-page portfolio with its contact form, or exports the
rendered page as static files.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		gin.SetMode(cfg.GinMode)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		openCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		store, err := OpenStore(openCtx, cfg.Store.Driver, cfg.Store.DataSource())
		cancel()
		if err != nil {
			return err
		}
		defer store.Close()
		log.Printf("Contact messages stored in %s (%s)", ContactCollection, store.dialect.name)

		s, err := newServer(cfg, store)
		if err != nil {
			return err
		}
		return s.serve(ctx)
	},
}

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the page and copy assets into a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		tmpl, err := loadTemplates(cfg.TemplatesDir)
		if err != nil {
			return err
		}
		about, err := renderMarkdown(AboutMe)
		if err != nil {
			return err
		}
		s := &server{cfg: cfg, tmpl: tmpl, about: about, now: time.Now}
		if err := s.exportSite(exportOut, "static", "images"); err != nil {
			return err
		}
		log.Printf("Export written to %s", exportOut)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "public", "output directory")
	rootCmd.AddCommand(serveCmd, exportCmd)
}

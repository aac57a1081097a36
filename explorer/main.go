package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"bikeshare/browser"
	"bikeshare/console"
	"bikeshare/explorer/config"
	"bikeshare/loader"
	"bikeshare/report"
	"bikeshare/session"
	"bikeshare/utils"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetOutput(os.Stderr)
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFlag := flag.String("config", config.DefaultConfigFilepath, "path to the YAML config file")
	dataDirFlag := flag.String("data-dir", "", "directory with the city .csv files (or set BIKESHARE_DATA_DIR env var)")
	pageSizeFlag := flag.Int("page-size", 0, "amount of raw rows shown per page")
	logLevelFlag := flag.String("log-level", "", "logrus level: debug, info, warn, error (or set LOG_LEVEL env var)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	explorerConfig, err := config.LoadConfig(*configFlag)
	if err != nil {
		return err
	}
	if *dataDirFlag != "" {
		explorerConfig.DataDir = *dataDirFlag
	}
	if *pageSizeFlag > 0 {
		explorerConfig.PageSize = *pageSizeFlag
	}
	if *logLevelFlag != "" {
		explorerConfig.LogLevel = *logLevelFlag
	}

	if err := InitLogger(explorerConfig.LogLevel); err != nil {
		return err
	}

	signalChannel := utils.GetSignalChannel()
	go func() {
		sig := <-signalChannel
		log.Infof("[method: main] %s received, bye!", sig)
		os.Exit(0)
	}()

	c := console.NewConsole(os.Stdin, os.Stdout)
	printer := report.NewPrinter(os.Stdout, clockwork.NewRealClock())
	explorerSession := session.NewSession(
		c,
		printer,
		loader.NewLoader(explorerConfig.DataDir),
		browser.NewBrowser(c, printer, explorerConfig.PageSize),
		explorerConfig.TripDistances,
	)

	log.Debugf("[method: main] data dir: %s, page size: %v", explorerConfig.DataDir, explorerConfig.PageSize)
	if err := explorerSession.Run(); err != nil {
		return err
	}

	log.Debug("Finish main.go")
	return nil
}

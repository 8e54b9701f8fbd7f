package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/handiism/tune/internal/audio"
	"github.com/handiism/tune/internal/config"
	"github.com/handiism/tune/internal/logging"
	"github.com/handiism/tune/internal/tui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type Params struct {
	Dir     string `short:"d" optional:"true" help:"Music directory to scan. Defaults to $XDG_MUSIC_DIR, then ~/Music."`
	State   string `optional:"true" help:"Session state file. Defaults to <config dir>/tune/state.json."`
	LogFile string `optional:"true" help:"Log file. Defaults to <config dir>/tune/tune.log."`
	Verbose bool   `short:"v" optional:"true" help:"Log debug messages and show verbose scan output."`
}

func main() {
	boa.CmdT[Params]{
		Use:     "tune",
		Short:   "Terminal music player",
		Long:    "Scan a directory for audio files and play them with shuffle, repeat, seeking and synchronized lyrics.",
		Version: appVersion(),
		ParamEnrich: boa.ParamEnricherCombine(
			boa.ParamEnricherBool,
			boa.ParamEnricherName,
			boa.ParamEnricherShort,
		),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			os.Exit(Run(params, os.Stderr))
		},
	}.Run()
}

// Run opens the audio output and runs the player until the user quits.
// It returns the process exit code.
func Run(params *Params, stderr io.Writer) int {
	musicDir := cmp.Or(params.Dir, config.DefaultMusicDir())
	statePath := cmp.Or(params.State, config.DefaultStatePath())
	logPath := cmp.Or(params.LogFile, config.DefaultLogPath())

	closer, err := logging.Setup(logPath, params.Verbose)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closer.Close()

	device, err := audio.OpenDevice()
	if err != nil {
		log.Error().Err(err).Msg("Opening audio output failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log.Info().Str("dir", musicDir).Str("state", statePath).Msg("Starting")

	err = tui.Run(tui.Options{
		MusicDir:  musicDir,
		StatePath: statePath,
		Device:    device,
		Verbose:   params.Verbose,
	})
	if err != nil {
		log.Error().Err(err).Msg("TUI failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}

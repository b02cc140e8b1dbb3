package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/console"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/transcript"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// playFlags are shared by the root command and `play`.
type playFlags struct {
	daily    bool
	answer   string
	noReveal bool
	color    string
}

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}
	pf := &playFlags{}

	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the five-letter word in six tries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			*cfg = c
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, cfg, pf)
		},
	}
	addPlayFlags(root, pf)

	play := &cobra.Command{
		Use:   "play",
		Short: "Play one game in the terminal (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, cfg, pf)
		},
	}
	addPlayFlags(play, pf)

	var port string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = cfg.Port
			}
			return runServe(cmd.Context(), cfg, port)
		},
	}
	serve.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 5175)")

	root.AddCommand(play, serve)
	return root
}

func addPlayFlags(cmd *cobra.Command, pf *playFlags) {
	cmd.Flags().BoolVar(&pf.daily, "daily", false, "play today's word instead of a random one")
	cmd.Flags().StringVar(&pf.answer, "answer", "", "fix the secret word (testing)")
	cmd.Flags().BoolVar(&pf.noReveal, "no-reveal", false, "do not show the word when quitting")
	cmd.Flags().StringVar(&pf.color, "color", "", "auto, always or never (default $COLOR or auto)")
}

func runPlay(cmd *cobra.Command, cfg *config.Config, pf *playFlags) error {
	lists, err := loadLists(cfg)
	if err != nil {
		return err
	}

	answer, err := pickAnswer(lists, cfg.DailySalt, pf, time.Now())
	if err != nil {
		return err
	}
	s, err := game.New(answer, game.DefaultMaxAttempts, lists)
	if err != nil {
		return err
	}

	mode := pf.color
	if mode == "" {
		mode = cfg.Color
	}
	color, err := resolveColor(mode, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	p := transcript.New(cmd.OutOrStdout(), transcript.Options{
		RevealOnQuit: cfg.RevealOnQuit && !pf.noReveal,
		Color:        color,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log.Debug().Str("session", s.ID()).Bool("daily", pf.daily).Msg("starting game")
	_, err = console.Run(ctx, cmd.InOrStdin(), s, p)
	return err
}

func runServe(ctx context.Context, cfg *config.Config, port string) error {
	lists, err := loadLists(cfg)
	if err != nil {
		return err
	}
	srv := httpserver.New(lists, store.NewSlot(), httpserver.Options{
		ClientOrigin: cfg.ClientOrigin,
		DailySalt:    cfg.DailySalt,
		RevealOnQuit: cfg.RevealOnQuit,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	log.Info().Str("port", port).Msg("starting wordle server")
	return srv.Start(ctx, ":"+port)
}

func loadLists(cfg *config.Config) (*words.Lists, error) {
	lists, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	a, g := lists.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Msg("word lists loaded")
	return lists, nil
}

// pickAnswer resolves the secret: --answer, then --daily, then a random index.
func pickAnswer(lists *words.Lists, salt string, pf *playFlags, now time.Time) (string, error) {
	if pf.answer != "" {
		answer := strings.ToLower(strings.TrimSpace(pf.answer))
		if !lists.IsAnswer(answer) {
			return "", fmt.Errorf("--answer %q is not in the answer list", pf.answer)
		}
		return answer, nil
	}
	if pf.daily {
		return daily.Answer(now, salt, lists)
	}
	idx, err := words.RandomIndex(lists.Len())
	if err != nil {
		return "", err
	}
	return lists.Answer(idx)
}

// resolveColor turns auto/always/never into a decision for the writer the
// transcript goes to. Auto only colours a terminal; anything that is not an
// *os.File is treated as a pipe.
func resolveColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	default:
		return false, fmt.Errorf("color (--color or COLOR) must be auto, always or never, got %q", mode)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"brightbuddy/internal/bootstrap"
	breathingdto "brightbuddy/internal/modules/breathing/dto"
	parentdto "brightbuddy/internal/modules/parent/dto"
	routinedto "brightbuddy/internal/modules/routine/dto"
	"brightbuddy/internal/platform/config"
	apperrors "brightbuddy/internal/platform/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "brightbuddy",
		Short:         "Feelings check-in, calm breathing and a morning routine for kids",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "directory holding .brightbuddy state")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newFeelCmd(&dataDir))
	root.AddCommand(newTodayCmd(&dataDir))
	root.AddCommand(newReportCmd(&dataDir))
	root.AddCommand(newBreatheCmd(&dataDir))
	root.AddCommand(newRoutineCmd(&dataDir))
	root.AddCommand(newParentCmd(&dataDir))
	return root
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// withApp builds the app for one command and always closes it afterwards.
func withApp(dataDir string, fn func(app *bootstrap.App) error) (err error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(app)
}

// requirePIN gates parent-only commands.
func requirePIN(ctx context.Context, app *bootstrap.App, pin string) error {
	if strings.TrimSpace(pin) == "" {
		return fmt.Errorf("--pin is required for parent settings")
	}
	if err := app.ParentCLI.VerifyPIN(ctx, pin); err != nil {
		if errors.Is(err, apperrors.ErrNoPIN) {
			return fmt.Errorf("no parent PIN yet, run `brightbuddy parent pin set` first: %w", err)
		}
		return err
	}
	return nil
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the BrightBuddy terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*dataDir, bootstrap.RunTUI)
		},
	}
}

func newFeelCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "feel <happy|okay|sad|angry|overwhelmed>",
		Short: "Record how the child feels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.CheckinCLI.Record(context.Background(), args[0])
				if out.Recorded {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", out.Emoji, out.Feeling)
					if out.Theme.Message != "" {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Theme.Message)
					}
				}
				return err
			})
		},
	}
}

func newTodayCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's feeling and routine progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				s, err := app.SummaryCLI.Today(context.Background())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				feeling := s.Feeling
				if feeling == "" {
					feeling = "(not checked in)"
				}
				_, _ = fmt.Fprintf(w, "date: %s\nfeeling: %s\nroutine: %d/%d %s\n%s\n", s.Date, feeling, s.Completed, s.Total, s.State, s.Message)
				for i, t := range s.Tasks {
					_, _ = fmt.Fprintf(w, "  %s %d. %s\n", checkbox(t.Done), i+1, t.Label)
				}
				return nil
			})
		},
	}
}

func newReportCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Write today's markdown report under <data>/reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.SummaryCLI.WriteReport(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report written: %s\n", out.Path)
				return nil
			})
		},
	}
}

func newBreatheCmd(dataDir *string) *cobra.Command {
	var mode string
	var cycles int
	breathe := &cobra.Command{
		Use:   "breathe",
		Short: "Run a guided breathing session in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cycles < 1 {
				return fmt.Errorf("--cycles must be at least 1")
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return withApp(*dataDir, func(app *bootstrap.App) error {
				sess, err := app.BreathingCLI.Open(ctx, mode)
				if err != nil {
					return err
				}
				defer sess.Stop()

				w := cmd.OutOrStdout()
				info := sess.Info()
				_, _ = fmt.Fprintf(w, "session %s mode=%s\n", info.SessionID, info.Mode)
				state := sess.State()
				printBreath(w, state)
				completed := 0
				for {
					select {
					case <-ctx.Done():
						return nil
					case next, ok := <-sess.Updates():
						if !ok {
							return nil
						}
						if next.Phase == "in" && state.Phase != "in" {
							completed++
							if completed >= cycles {
								_, _ = fmt.Fprintln(w, "all done, great breathing!")
								return nil
							}
						}
						state = next
						printBreath(w, state)
					}
				}
			})
		},
	}
	breathe.Flags().StringVar(&mode, "mode", "", "calm|deep|reset (default: derived from the last feeling)")
	breathe.Flags().IntVar(&cycles, "cycles", 3, "number of full breaths")
	return breathe
}

func printBreath(w io.Writer, s breathingdto.StateOutput) {
	_, _ = fmt.Fprintf(w, "%-5s %2d  %s\n", s.Phase, s.Countdown, s.Cue)
}

func newRoutineCmd(dataDir *string) *cobra.Command {
	routine := &cobra.Command{Use: "routine", Short: "Morning routine checklist"}

	routine.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show today's checklist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.RoutineCLI.List(context.Background())
				if err != nil {
					return err
				}
				printRoutine(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})

	status := func(use, short string, done bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <task number>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := taskIndex(args[0])
				if err != nil {
					return err
				}
				return withApp(*dataDir, func(app *bootstrap.App) error {
					out, err := app.RoutineCLI.SetDone(context.Background(), index, done)
					printRoutine(cmd.OutOrStdout(), out)
					return err
				})
			},
		}
	}
	routine.AddCommand(status("done", "Tick a task", true))
	routine.AddCommand(status("undo", "Untick a task", false))

	var pin string
	add := &cobra.Command{
		Use:   "add <label>",
		Short: "Append a task (parent only, resets today's progress)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				ctx := context.Background()
				if err := requirePIN(ctx, app, pin); err != nil {
					return err
				}
				out, err := app.RoutineCLI.Add(ctx, strings.Join(args, " "))
				printRoutine(cmd.OutOrStdout(), out)
				return err
			})
		},
	}
	add.Flags().StringVar(&pin, "pin", "", "parent PIN")
	routine.AddCommand(add)

	edit := func(use, short string, op routinedto.EditOp) *cobra.Command {
		var pin string
		c := &cobra.Command{
			Use:   use + " <task number>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, err := taskIndex(args[0])
				if err != nil {
					return err
				}
				return withApp(*dataDir, func(app *bootstrap.App) error {
					ctx := context.Background()
					if err := requirePIN(ctx, app, pin); err != nil {
						return err
					}
					out, err := app.RoutineCLI.Edit(ctx, op, index)
					printRoutine(cmd.OutOrStdout(), out)
					return err
				})
			},
		}
		c.Flags().StringVar(&pin, "pin", "", "parent PIN")
		return c
	}
	routine.AddCommand(edit("remove", "Delete a task (parent only)", routinedto.EditRemove))
	routine.AddCommand(edit("up", "Move a task up (parent only)", routinedto.EditMoveUp))
	routine.AddCommand(edit("down", "Move a task down (parent only)", routinedto.EditMoveDown))

	var exportPin, exportFile string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the routine definition as YAML (parent only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				ctx := context.Background()
				if err := requirePIN(ctx, app, exportPin); err != nil {
					return err
				}
				data, err := app.RoutineCLI.Export(ctx)
				if err != nil {
					return err
				}
				if exportFile == "" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}
				if err := os.WriteFile(exportFile, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", exportFile, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", exportFile)
				return nil
			})
		},
	}
	export.Flags().StringVar(&exportPin, "pin", "", "parent PIN")
	export.Flags().StringVar(&exportFile, "file", "", "output file (default stdout)")
	routine.AddCommand(export)

	var importPin string
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the routine definition from YAML (parent only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				ctx := context.Background()
				if err := requirePIN(ctx, app, importPin); err != nil {
					return err
				}
				out, err := app.RoutineCLI.Import(ctx, data)
				printRoutine(cmd.OutOrStdout(), out)
				return err
			})
		},
	}
	importCmd.Flags().StringVar(&importPin, "pin", "", "parent PIN")
	routine.AddCommand(importCmd)

	return routine
}

// taskIndex turns a 1-based task number into an index.
func taskIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("task number must be a positive integer, got %q", arg)
	}
	return n - 1, nil
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func printRoutine(w io.Writer, r routinedto.RoutineOutput) {
	if r.Date == "" && len(r.Tasks) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "%s  %d/%d done\n", r.Date, r.CompletedCount, r.Total)
	for _, t := range r.Tasks {
		_, _ = fmt.Fprintf(w, "  %s %d. %s\n", checkbox(t.Done), t.Index+1, t.Label)
	}
}

func newParentCmd(dataDir *string) *cobra.Command {
	parent := &cobra.Command{Use: "parent", Short: "Parent PIN and child profile"}

	pinCmd := &cobra.Command{Use: "pin", Short: "Parent PIN"}
	var current string
	set := &cobra.Command{
		Use:   "set <pin> <confirm>",
		Short: "Create or change the 4-digit parent PIN",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				ctx := context.Background()
				has, err := app.ParentCLI.HasPIN(ctx)
				if err != nil {
					return err
				}
				if has {
					if err := requirePIN(ctx, app, current); err != nil {
						return fmt.Errorf("changing the PIN needs --current: %w", err)
					}
				}
				if err := app.ParentCLI.SetupPIN(ctx, args[0], args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "parent PIN saved")
				return nil
			})
		},
	}
	set.Flags().StringVar(&current, "current", "", "current PIN when one is already set")

	check := &cobra.Command{
		Use:   "check <pin>",
		Short: "Verify a parent PIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				if err := app.ParentCLI.VerifyPIN(context.Background(), args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "PIN ok")
				return nil
			})
		},
	}
	pinCmd.AddCommand(set, check)

	profile := &cobra.Command{Use: "profile", Short: "Child profile"}
	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the child profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				p, err := app.ParentCLI.LoadProfile(context.Background())
				if err != nil {
					return err
				}
				printProfile(cmd.OutOrStdout(), p)
				return nil
			})
		},
	})

	var pin string
	var input parentdto.ProfileInput
	profileSet := &cobra.Command{
		Use:   "set",
		Short: "Update the child profile (parent only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				ctx := context.Background()
				if err := requirePIN(ctx, app, pin); err != nil {
					return err
				}
				existing, err := app.ParentCLI.LoadProfile(ctx)
				if err != nil {
					return err
				}
				merged := parentdto.ProfileInput{
					Name:       pick(cmd, "name", input.Name, existing.Name),
					Age:        pick(cmd, "age", input.Age, existing.Age),
					Sex:        pick(cmd, "sex", input.Sex, existing.Sex),
					ThemeColor: pick(cmd, "theme", input.ThemeColor, existing.ThemeColor),
					Birthday:   pick(cmd, "birthday", input.Birthday, existing.Birthday),
				}
				out, err := app.ParentCLI.SaveProfile(ctx, merged)
				if err != nil {
					return err
				}
				printProfile(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	profileSet.Flags().StringVar(&pin, "pin", "", "parent PIN")
	profileSet.Flags().StringVar(&input.Name, "name", "", "child's name")
	profileSet.Flags().StringVar(&input.Age, "age", "", "child's age")
	profileSet.Flags().StringVar(&input.Sex, "sex", "", "Boy|Girl")
	profileSet.Flags().StringVar(&input.ThemeColor, "theme", "", "blue|green|neutral|pink|purple|yellow")
	profileSet.Flags().StringVar(&input.Birthday, "birthday", "", "YYYY-MM-DD, empty to clear")
	profile.AddCommand(profileSet)

	parent.AddCommand(pinCmd, profile)
	return parent
}

// pick keeps the stored value unless the flag was given.
func pick(cmd *cobra.Command, flag, given, stored string) string {
	if cmd.Flags().Changed(flag) {
		return given
	}
	return stored
}

func printProfile(w io.Writer, p parentdto.ProfileOutput) {
	_, _ = fmt.Fprintf(w, "name: %s\nage: %s\nsex: %s\ntheme: %s\nbirthday: %s\n", p.Name, p.Age, p.Sex, p.ThemeColor, p.Birthday)
}

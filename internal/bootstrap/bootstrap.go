package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	breathinginadapter "brightbuddy/internal/modules/breathing/adapter/in"
	breathingoutadapter "brightbuddy/internal/modules/breathing/adapter/out"
	breathingservice "brightbuddy/internal/modules/breathing/service"
	breathingusecase "brightbuddy/internal/modules/breathing/usecase"
	checkininadapter "brightbuddy/internal/modules/checkin/adapter/in"
	checkinoutadapter "brightbuddy/internal/modules/checkin/adapter/out"
	checkinservice "brightbuddy/internal/modules/checkin/service"
	checkinusecase "brightbuddy/internal/modules/checkin/usecase"
	parentinadapter "brightbuddy/internal/modules/parent/adapter/in"
	parentoutadapter "brightbuddy/internal/modules/parent/adapter/out"
	parentservice "brightbuddy/internal/modules/parent/service"
	parentusecase "brightbuddy/internal/modules/parent/usecase"
	routineinadapter "brightbuddy/internal/modules/routine/adapter/in"
	routineoutadapter "brightbuddy/internal/modules/routine/adapter/out"
	routineservice "brightbuddy/internal/modules/routine/service"
	routineusecase "brightbuddy/internal/modules/routine/usecase"
	speechoutadapter "brightbuddy/internal/modules/speech/adapter/out"
	speechin "brightbuddy/internal/modules/speech/port/in"
	speechout "brightbuddy/internal/modules/speech/port/out"
	speechservice "brightbuddy/internal/modules/speech/service"
	speechusecase "brightbuddy/internal/modules/speech/usecase"
	summaryinadapter "brightbuddy/internal/modules/summary/adapter/in"
	summaryoutadapter "brightbuddy/internal/modules/summary/adapter/out"
	summaryservice "brightbuddy/internal/modules/summary/service"
	summaryusecase "brightbuddy/internal/modules/summary/usecase"
	"brightbuddy/internal/platform/clock"
	"brightbuddy/internal/platform/config"
	"brightbuddy/internal/platform/id"
	"brightbuddy/internal/platform/kv"
	"brightbuddy/internal/platform/logging"
	"brightbuddy/internal/platform/schedule"
	uiapp "brightbuddy/internal/ui/app"
)

type App struct {
	CheckinCLI   checkininadapter.CLIHandler
	BreathingCLI breathinginadapter.CLIHandler
	RoutineCLI   routineinadapter.CLIHandler
	ParentCLI    parentinadapter.CLIHandler
	SummaryCLI   summaryinadapter.CLIHandler

	Logger   hclog.Logger
	Location *time.Location

	store     *kv.SQLiteStore
	speech    speechin.Usecase
	logCloser io.Closer
}

func New(cfg config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	logger, logCloser, err := logging.New(cfg.LogPath, cfg.Settings.LogLevel)
	if err != nil {
		return nil, err
	}
	store, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	clk := clock.SystemClock{Location: loc}

	var voice speechout.Voice
	if cfg.Settings.Voice && cfg.Settings.SpeechPlugin != "" {
		voice = speechoutadapter.NewPluginVoice(cfg.Settings.SpeechPlugin, logger)
	} else {
		voice = speechoutadapter.NewLogVoice(logger)
	}
	speechUC := speechusecase.NewInteractor(
		speechservice.NewSpeechService(voice, cfg.Settings.Voice, logger.Named("speech")),
	)

	checkinUC := checkinusecase.NewInteractor(checkinservice.NewCheckinService(
		checkinoutadapter.NewKVFeelingStore(store, logger.Named("checkin")),
		checkinoutadapter.NewSpeechSpeaker(speechUC),
		logger.Named("checkin"),
	))

	breathingUC := breathingusecase.NewInteractor(
		breathingservice.NewSessionService(
			clk,
			clock.NewSystemTicker,
			id.UUID{},
			breathingoutadapter.NewSpeechSpeaker(speechUC),
			logger.Named("breathing"),
		),
		breathingoutadapter.NewCheckinFeelingSource(checkinUC),
	)

	routineUC := routineusecase.NewInteractor(routineservice.NewTracker(
		routineoutadapter.NewKVDefinitionStore(store, logger.Named("routine")),
		routineoutadapter.NewKVProgressStore(store, logger.Named("routine")),
		routineoutadapter.NewYAMLCodec(),
		store,
		clk,
		logger.Named("routine"),
	))

	parentUC := parentusecase.NewInteractor(parentservice.NewParentService(
		parentoutadapter.NewKVPINStore(store),
		parentoutadapter.NewKVProfileStore(store, logger.Named("parent")),
		parentoutadapter.NewBcryptHasher(0),
		logger.Named("parent"),
	))

	summaryUC := summaryusecase.NewInteractor(summaryservice.NewSummaryService(
		summaryoutadapter.NewCheckinFeelingSource(checkinUC),
		summaryoutadapter.NewRoutineTaskSource(routineUC),
		summaryoutadapter.NewMarkdownReportStore(cfg.DataDir),
		logger.Named("summary"),
	))

	return &App{
		CheckinCLI:   checkininadapter.NewCLIHandler(checkinUC),
		BreathingCLI: breathinginadapter.NewCLIHandler(breathingUC),
		RoutineCLI:   routineinadapter.NewCLIHandler(routineUC),
		ParentCLI:    parentinadapter.NewCLIHandler(parentUC),
		SummaryCLI:   summaryinadapter.NewCLIHandler(summaryUC),
		Logger:       logger,
		Location:     loc,
		store:        store,
		speech:       speechUC,
		logCloser:    logCloser,
	}, nil
}

// Close stops the speech plugin and releases the store and the log file.
func (a *App) Close() error {
	var errs []error
	if err := a.speech.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close speech: %w", err))
	}
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	if err := a.logCloser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close log: %w", err))
	}
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CheckinCLI, app.SummaryCLI, app.BreathingCLI, app.RoutineCLI, app.ParentCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())

	midnight := schedule.NewMidnight(app.Location)
	if err := midnight.Start(func() { program.Send(uiapp.DayChangedMsg{}) }); err != nil {
		return err
	}
	defer midnight.Stop()
	app.Logger.Debug("tui started", "next_rollover", midnight.NextRun())

	_, err := program.Run()
	return err
}

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dumpman/internal/logger"
	"github.com/MKhiriev/dumpman/models"
)

// TUI prompts for groups with Bubble Tea forms.
type TUI struct {
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption
	logger    *logger.Logger
}

// New creates a TUI. Extra program options are passed to every form, which
// tests use to replace the terminal.
func New(buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{
		buildInfo: buildInfo,
		options:   opts,
		logger:    logger,
	}
}

func (t *TUI) PromptOps(ctx context.Context, summary models.DumpSummary) ([]models.MapOp, error) {
	model := NewGroupFormModel(ctx, summary, renderTitle(t.buildInfo, "NEW GROUPS"))

	finalModel, err := t.run(ctx, model)
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(*GroupFormModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		return nil, ErrUserQuit
	}

	t.logger.Debug().Int("ops", len(result.Ops())).Msg("groups entered")
	return result.Ops(), nil
}

func (t *TUI) PromptDays(ctx context.Context, days []models.DayBucket, types []models.MapOpType) ([]models.DayChoice, error) {
	if len(days) == 0 {
		return nil, nil
	}

	model := NewDayFormModel(ctx, days, types, renderTitle(t.buildInfo, "AUTOGROUP BY DAY"))

	finalModel, err := t.run(ctx, model)
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(*DayFormModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		return nil, ErrUserQuit
	}

	return result.Choices(), nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	return tea.NewProgram(model, opts...).Run()
}

package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/dumpman/internal/validators"
	"github.com/MKhiriev/dumpman/models"
)

// Line prompts used by [PlainPrompter].
const (
	promptGroupName = "Enter group name (empty = done): "
	promptDayName   = "Enter group name (empty = date only): "
	promptOpType    = "Enter map operation: "
	promptStart     = "Enter start range (incl.): "
	promptEnd       = "Enter end range (excl.): "
)

// PlainPrompter asks for groups with one line prompt per value. It is used
// when stdin is not a terminal or the terminal UI is disabled. Invalid values
// are reported and asked for again.
type PlainPrompter struct {
	in        *bufio.Reader
	out       io.Writer
	validator validators.Validator
}

// NewPlainPrompter creates a PlainPrompter reading answers from in and
// writing prompts to out.
func NewPlainPrompter(in io.Reader, out io.Writer) *PlainPrompter {
	return &PlainPrompter{
		in:        bufio.NewReader(in),
		out:       out,
		validator: validators.NewMapOpValidator(),
	}
}

// PromptOps asks for groups until an empty name is entered. End of input on
// the name prompt also ends the loop.
func (p *PlainPrompter) PromptOps(ctx context.Context, summary models.DumpSummary) ([]models.MapOp, error) {
	var ops []models.MapOp

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name, err := p.askGroupName(ctx, ops)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if name == "" {
			break
		}

		opType, err := p.askOpType(ctx, summary.OpTypes)
		if err != nil {
			return nil, err
		}
		op, err := p.askRange(ctx, ops, models.MapOp{Type: opType, Name: name})
		if err != nil {
			return nil, err
		}

		ops = append(ops, op)
	}

	return ops, nil
}

func (p *PlainPrompter) PromptDays(ctx context.Context, days []models.DayBucket, types []models.MapOpType) ([]models.DayChoice, error) {
	choices := make([]models.DayChoice, 0, len(days))

	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprintf(p.out, "» %s: %d files (%d..%d)\n", day.Day(), day.Count, day.Start, day.End)
		name, err := p.askDayName(ctx)
		if err != nil {
			return nil, err
		}

		opType, err := p.askOpType(ctx, types)
		if err != nil {
			return nil, err
		}

		choices = append(choices, models.DayChoice{Name: name, Type: opType})
	}

	return choices, nil
}

// askGroupName returns "" when the user is done. A name that cannot be a
// directory or is already used by one of ops is asked for again.
func (p *PlainPrompter) askGroupName(ctx context.Context, ops []models.MapOp) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		name, err := p.ask(promptGroupName)
		if err != nil || name == "" {
			return "", err
		}

		op := models.MapOp{Name: name}
		err = p.validator.Validate(ctx, op, validators.FieldName)
		if err == nil {
			err = p.validator.Validate(ctx, append(slices.Clone(ops), op), validators.FieldNames)
		}
		if err != nil {
			p.complain(err)
			continue
		}
		return name, nil
	}
}

// askDayName accepts an empty answer, which keeps the bare date.
func (p *PlainPrompter) askDayName(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		name, err := p.ask(promptDayName)
		if err != nil {
			return "", unexpectedEOF(err)
		}
		if name == "" {
			return "", nil
		}

		if err = p.validator.Validate(ctx, models.MapOp{Name: name}, validators.FieldName); err != nil {
			p.complain(err)
			continue
		}
		return name, nil
	}
}

// askRange fills Start and End of op. Both are asked for again when the range
// is empty or overlaps one of ops.
func (p *PlainPrompter) askRange(ctx context.Context, ops []models.MapOp, op models.MapOp) (models.MapOp, error) {
	for {
		start, err := p.askFileNumber(ctx, promptStart)
		if err != nil {
			return models.MapOp{}, err
		}
		end, err := p.askFileNumber(ctx, promptEnd)
		if err != nil {
			return models.MapOp{}, err
		}
		op.Start, op.End = start, end

		err = p.validator.Validate(ctx, op, validators.FieldRange)
		if err == nil {
			err = p.validator.Validate(ctx, append(slices.Clone(ops), op), validators.FieldOverlaps)
		}
		if err != nil {
			p.complain(err)
			continue
		}
		return op, nil
	}
}

// askOpType asks for an op type only when there is more than one.
func (p *PlainPrompter) askOpType(ctx context.Context, types []models.MapOpType) (models.MapOpType, error) {
	if len(types) == 0 {
		return models.OpCopy, nil
	}
	if len(types) == 1 {
		return types[0], nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		answer, err := p.ask(promptOpType)
		if err != nil {
			return "", unexpectedEOF(err)
		}

		opType, err := models.ParseMapOpType(answer)
		if err == nil && !slices.Contains(types, opType) {
			err = fmt.Errorf("map operation %q is not available (available: %s)", opType, models.JoinOpTypes(types))
		}
		if err != nil {
			p.complain(err)
			continue
		}
		return opType, nil
	}
}

func (p *PlainPrompter) askFileNumber(ctx context.Context, prompt string) (uint32, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		answer, err := p.ask(prompt)
		if err != nil {
			return 0, unexpectedEOF(err)
		}

		n, err := parseFileNumber(answer)
		if err != nil {
			p.complain(err)
			continue
		}
		return n, nil
	}
}

// ask writes prompt and returns the trimmed answer line. A last line without
// a newline is still returned; io.EOF is returned only when nothing was read.
func (p *PlainPrompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(p.out)
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (p *PlainPrompter) complain(err error) {
	fmt.Fprintf(p.out, "» %s, try again\n", err)
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

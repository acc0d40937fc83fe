package calculation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rpgo/accfmt/internal/domain"
	"github.com/rpgo/accfmt/pkg/acc"
	"github.com/rpgo/accfmt/pkg/cnmoney"
	"github.com/rpgo/accfmt/pkg/dateutil"
	"github.com/rpgo/accfmt/pkg/decimal"
	"github.com/rpgo/accfmt/pkg/textutil"
)

// Options carries the settings shared by every job of a run
type Options struct {
	English    bool
	DateLayout string
	Location   *time.Location
}

// Engine evaluates batch jobs against the helper packages
type Engine struct {
	Logger Logger
	Now    func() time.Time
}

// NewEngine creates a new engine with a no-op logger
func NewEngine() *Engine {
	return &Engine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// OptionsFor resolves the shared options of a configuration
func OptionsFor(config *domain.Configuration) (Options, error) {
	opts := Options{English: config.English, DateLayout: config.DateLayout, Location: time.Local}
	if config.Timezone != "" {
		loc, err := time.LoadLocation(config.Timezone)
		if err != nil {
			return Options{}, fmt.Errorf("load timezone %q: %w", config.Timezone, err)
		}
		opts.Location = loc
	}
	return opts, nil
}

// Run evaluates every job of config. A failing job is recorded on its result
// and does not stop the run; only cancellation of ctx aborts it.
func (e *Engine) Run(ctx context.Context, config *domain.Configuration) (*domain.BatchResult, error) {
	opts, err := OptionsFor(config)
	if err != nil {
		return nil, err
	}

	result := &domain.BatchResult{
		GeneratedAt: e.Now(),
		Results:     make([]domain.JobResult, 0, len(config.Jobs)),
	}
	for _, job := range config.Jobs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch interrupted before job %q: %w", job.Name, err)
		}
		jr := domain.JobResult{Name: job.Name, Op: job.Op, Args: job.Args}
		out, err := e.Evaluate(job, opts)
		if err != nil {
			e.Logger.Warnf("job %s failed: %v", job.Name, err)
			jr.Error = err.Error()
			result.Failed++
		} else {
			e.Logger.Debugf("job %s: %s(%v) = %s", job.Name, job.Op, job.Args, out)
			jr.Output = out
		}
		result.Results = append(result.Results, jr)
	}
	e.Logger.Infof("evaluated %d jobs, %d failed", len(result.Results), result.Failed)
	return result, nil
}

// Evaluate runs a single job and returns its rendered output
func (e *Engine) Evaluate(job domain.Job, opts Options) (string, error) {
	arity, ok := job.Op.Arity()
	if !ok {
		return "", fmt.Errorf("unknown operation %q", job.Op)
	}
	if len(job.Args) != arity {
		return "", fmt.Errorf("operation %s takes %d argument(s), got %d", job.Op, arity, len(job.Args))
	}
	arg := job.Args[0]

	switch job.Op {
	case domain.OpAdd:
		return formatFloat(acc.Add(acc.String(arg), acc.String(job.Args[1]))), nil
	case domain.OpSub:
		return acc.Sub(acc.String(arg), acc.String(job.Args[1])), nil
	case domain.OpMul:
		return formatFloat(acc.Mul(acc.String(arg), acc.String(job.Args[1]))), nil
	case domain.OpDiv:
		return formatFloat(acc.Div(acc.String(arg), acc.String(job.Args[1]))), nil
	case domain.OpDate:
		return e.formatDate(job, opts)
	case domain.OpUpper:
		return cnmoney.ToUpper(arg)
	case domain.OpThousands:
		return textutil.Thousands(arg), nil
	case domain.OpThousands2:
		return textutil.Thousands2(arg)
	case domain.OpEscape:
		return textutil.EscapeHTML(arg), nil
	case domain.OpWidth:
		return strconv.Itoa(textutil.DisplayWidth(arg)), nil
	case domain.OpCard:
		return textutil.FormatCardNumber(arg), nil
	case domain.OpHumanize:
		sec, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid seconds %q: %w", arg, err)
		}
		return dateutil.HumanizeSeconds(sec), nil
	case domain.OpHash:
		return strconv.FormatInt(int64(textutil.TokenHash(arg)), 10), nil
	case domain.OpMoney:
		m, err := decimal.NewMoneyFromString(strings.ReplaceAll(arg, ",", ""))
		if err != nil {
			return "", fmt.Errorf("invalid amount %q: %w", arg, err)
		}
		return m.Format(), nil
	case domain.OpRoute:
		return routeDocument(arg, job.Args[1])
	case domain.OpMerge:
		return mergeDocuments(arg, job.Args[1])
	}
	return "", fmt.Errorf("operation %q is not implemented", job.Op)
}

func (e *Engine) formatDate(job domain.Job, opts Options) (string, error) {
	layout := opts.DateLayout
	if job.Layout != "" {
		layout = job.Layout
	}
	if layout == "" {
		layout = dateutil.DefaultLayout
	}
	english := opts.English
	if job.English != nil {
		english = *job.English
	}
	if job.Args[0] == "" {
		return "", nil
	}
	t, ok := dateutil.ParseTime(job.Args[0], opts.Location)
	if !ok {
		return "", fmt.Errorf("unrecognized time %q", job.Args[0])
	}
	return dateutil.Format(t, layout, english), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// =================================
// File: internal/wizard/controller.go
// =================================
package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/rovshanmuradov/tokenforge/internal/tokenomics"
	"go.uber.org/zap"
)

// Controller owns the wizard session: current step, the accumulated launch
// configuration and pending notifications. It is not safe for concurrent use;
// the UI drives it from a single goroutine.
type Controller struct {
	logger *zap.Logger

	cfg      tokenomics.LaunchConfig
	step     Step
	reached  Step
	launched bool
	pending  []Notification
}

// New starts a session from cfg.
func New(cfg tokenomics.LaunchConfig, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		logger: logger.Named("wizard"),
		cfg:    clone(cfg),
	}
}

// NewDefault starts a session from the stock configuration.
func NewDefault(now time.Time, launchDelay time.Duration, logger *zap.Logger) *Controller {
	return New(tokenomics.Default(now, launchDelay), logger)
}

// Current returns the active step.
func (c *Controller) Current() Step {
	return c.step
}

// Reached returns the furthest step visited so far.
func (c *Controller) Reached() Step {
	return c.reached
}

// Config returns a copy of the accumulated configuration.
func (c *Controller) Config() tokenomics.LaunchConfig {
	return clone(c.cfg)
}

// Launched reports whether Launch succeeded in this session.
func (c *Controller) Launched() bool {
	return c.launched
}

// ValidateStep runs the validator of the given step's section.
func (c *Controller) ValidateStep(s Step) error {
	switch s {
	case StepToken:
		return c.cfg.Token.Validate()
	case StepCurve:
		return c.cfg.Curve.Validate()
	case StepAllocation:
		// a total other than 100% is a warning, not a blocker
		return c.cfg.Alloc.Validate()
	case StepVesting:
		var errs []error
		for _, v := range c.cfg.Vesting {
			errs = append(errs, v.Validate())
		}
		return errors.Join(errs...)
	case StepLaunchpad:
		return c.cfg.Launchpad.Validate()
	case StepLiquidity:
		return c.cfg.Liquidity.Validate()
	default:
		return nil
	}
}

// Next validates the current step and advances. On failure the step is
// unchanged and the validation error is returned.
func (c *Controller) Next() error {
	if err := c.ValidateStep(c.step); err != nil {
		c.logger.Debug("Step validation failed",
			zap.String("step", c.step.String()),
			zap.Error(err))
		return err
	}
	if c.step < StepPreview {
		c.step++
		if c.step > c.reached {
			c.reached = c.step
		}
	}
	return nil
}

// Back moves to the previous step. It returns false on the first step.
func (c *Controller) Back() bool {
	if c.step == StepToken {
		return false
	}
	c.step--
	return true
}

// Goto jumps to an already reached step.
func (c *Controller) Goto(s Step) error {
	if s < StepToken || s > StepPreview {
		return fmt.Errorf("unknown step %d", int(s))
	}
	if s > c.reached {
		return fmt.Errorf("step %s not reached yet", s)
	}
	c.step = s
	return nil
}

// SetToken replaces the token section.
func (c *Controller) SetToken(t tokenomics.TokenConfig) {
	c.cfg.Token = t
}

// SetCurve replaces the bonding-curve section.
func (c *Controller) SetCurve(cc tokenomics.CurveConfig) {
	c.cfg.Curve = cc
}

// SetAllocation replaces the allocation. A total other than 100% raises a warning toast.
func (c *Controller) SetAllocation(a tokenomics.Allocation) {
	c.cfg.Alloc = a.Clone()
	if !a.Valid() {
		c.Notify(Notification{
			Kind:        NotifyWarning,
			Title:       "Allocation mismatch",
			Description: fmt.Sprintf("Total allocation must equal 100%%. Current total: %s%%", a.Total().String()),
		})
	}
}

// SetVesting replaces the vesting schedules.
func (c *Controller) SetVesting(v []tokenomics.VestingSchedule) {
	c.cfg.Vesting = append([]tokenomics.VestingSchedule(nil), v...)
}

// SetLaunchpad replaces the sale terms.
func (c *Controller) SetLaunchpad(l tokenomics.LaunchpadConfig) {
	c.cfg.Launchpad = l
}

// SetLiquidity replaces the listing settings and announces a DEX change.
func (c *Controller) SetLiquidity(l tokenomics.LiquidityConfig) {
	changed := l.Dex != c.cfg.Liquidity.Dex
	c.cfg.Liquidity = l
	if changed {
		name := l.DexName()
		c.Notify(Notification{
			Kind:        NotifyInfo,
			Title:       fmt.Sprintf("%s Selected", name),
			Description: fmt.Sprintf("Your token will be available on %s after launch.", name),
		})
	}
}

// Notify queues a toast.
func (c *Controller) Notify(n Notification) {
	c.pending = append(c.pending, n)
	if len(c.pending) > maxPending {
		c.pending = c.pending[len(c.pending)-maxPending:]
	}
}

// Drain returns and clears the pending toasts.
func (c *Controller) Drain() []Notification {
	out := c.pending
	c.pending = nil
	return out
}

// Preview derives the preview numbers for the current configuration.
func (c *Controller) Preview(resolution int) tokenomics.Preview {
	return c.cfg.BuildPreview(resolution)
}

// Launch simulates the token launch. Nothing is deployed; it only checks the
// launch gate and announces the start.
func (c *Controller) Launch() error {
	if !c.cfg.Complete() {
		c.Notify(Notification{
			Kind:        NotifyError,
			Title:       "Launch blocked",
			Description: "Name, symbol, supply and a valid soft/hard cap are required.",
		})
		return fmt.Errorf("launch %q: %w", c.cfg.Token.Symbol, tokenomics.ErrIncomplete)
	}

	c.launched = true
	c.logger.Info("Token launch initiated",
		zap.String("name", c.cfg.Token.Name),
		zap.String("symbol", c.cfg.Token.Symbol),
		zap.Float64("total_supply", c.cfg.Token.TotalSupply),
		zap.String("curve", c.cfg.Curve.Shape.String()),
		zap.String("dex", c.cfg.Liquidity.DexName()))

	c.Notify(Notification{
		Kind:        NotifySuccess,
		Title:       "Token Launch Initiated",
		Description: "Your token launch process has been started. You'll receive updates on the progress.",
	})
	return nil
}

func clone(cfg tokenomics.LaunchConfig) tokenomics.LaunchConfig {
	out := cfg
	out.Alloc = cfg.Alloc.Clone()
	out.Vesting = append([]tokenomics.VestingSchedule(nil), cfg.Vesting...)
	return out
}

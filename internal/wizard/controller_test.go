package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/rovshanmuradov/tokenforge/internal/tokenomics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newController(t *testing.T) *Controller {
	t.Helper()
	return NewDefault(testNow, tokenomics.DefaultLaunchDelay, zap.NewNop())
}

func nameToken(c *Controller) {
	tok := c.Config().Token
	tok.Name = "Solana Forge Token"
	tok.Symbol = "SFT"
	c.SetToken(tok)
}

func TestNextBlockedByValidation(t *testing.T) {
	c := newController(t)

	err := c.Next()
	require.Error(t, err)
	assert.Equal(t, StepToken, c.Current())

	var ve *tokenomics.ValidationError
	assert.True(t, errors.As(err, &ve))

	nameToken(c)
	require.NoError(t, c.Next())
	assert.Equal(t, StepCurve, c.Current())
	assert.Equal(t, StepCurve, c.Reached())
}

func TestWalkToPreview(t *testing.T) {
	c := newController(t)
	nameToken(c)

	for c.Current() != StepPreview {
		require.NoError(t, c.Next(), "step %s", c.Current())
	}
	assert.Equal(t, StepPreview, c.Reached())

	// preview is terminal
	require.NoError(t, c.Next())
	assert.Equal(t, StepPreview, c.Current())
}

func TestAllocationMismatchDoesNotBlock(t *testing.T) {
	c := newController(t)
	nameToken(c)
	require.NoError(t, c.Next())
	require.NoError(t, c.Next())
	require.Equal(t, StepAllocation, c.Current())

	alloc := c.Config().Alloc
	alloc[tokenomics.Team] = 25
	c.SetAllocation(alloc)

	toasts := c.Drain()
	require.Len(t, toasts, 1)
	assert.Equal(t, NotifyWarning, toasts[0].Kind)
	assert.Contains(t, toasts[0].Description, "Current total: 110%")

	require.NoError(t, c.Next())
	assert.Equal(t, StepVesting, c.Current())
	assert.False(t, c.Preview(10).AllocationValid)
}

func TestBackAndGoto(t *testing.T) {
	c := newController(t)
	assert.False(t, c.Back())

	nameToken(c)
	require.NoError(t, c.Next())
	require.NoError(t, c.Next())

	assert.Error(t, c.Goto(StepLiquidity))
	assert.Error(t, c.Goto(Step(42)))

	require.NoError(t, c.Goto(StepToken))
	assert.Equal(t, StepToken, c.Current())
	assert.Equal(t, StepAllocation, c.Reached())

	require.NoError(t, c.Goto(StepAllocation))
	assert.True(t, c.Back())
	assert.Equal(t, StepCurve, c.Current())
}

func TestDexChangeNotifies(t *testing.T) {
	c := newController(t)

	liq := c.Config().Liquidity
	liq.LockingPeriodDays = 90
	c.SetLiquidity(liq)
	assert.Empty(t, c.Drain())

	liq.Dex = tokenomics.Raydium
	c.SetLiquidity(liq)

	toasts := c.Drain()
	require.Len(t, toasts, 1)
	assert.Equal(t, "raydium Selected", toasts[0].Title)
	assert.Equal(t, "Your token will be available on raydium after launch.", toasts[0].Description)
	assert.Empty(t, c.Drain())
}

func TestLaunch(t *testing.T) {
	c := newController(t)

	err := c.Launch()
	assert.ErrorIs(t, err, tokenomics.ErrIncomplete)
	assert.False(t, c.Launched())
	require.Len(t, c.Drain(), 1)

	nameToken(c)
	require.NoError(t, c.Launch())
	assert.True(t, c.Launched())

	toasts := c.Drain()
	require.Len(t, toasts, 1)
	assert.Equal(t, NotifySuccess, toasts[0].Kind)
	assert.Equal(t, "Token Launch Initiated", toasts[0].Title)
}

func TestConfigIsolation(t *testing.T) {
	c := newController(t)

	cfg := c.Config()
	cfg.Alloc[tokenomics.Team] = 99
	cfg.Vesting[0].CliffMonths = 59

	fresh := c.Config()
	assert.Equal(t, 15.0, fresh.Alloc[tokenomics.Team])
	assert.Equal(t, 6, fresh.Vesting[0].CliffMonths)
}

func TestNotificationQueueBounded(t *testing.T) {
	c := newController(t)
	for i := 0; i < maxPending+5; i++ {
		c.Notify(Notification{Title: "n"})
	}
	assert.Len(t, c.Drain(), maxPending)
}

func TestStepNames(t *testing.T) {
	assert.Equal(t, 7, StepCount())
	assert.Len(t, Steps(), StepCount())
	assert.Equal(t, "Vesting", StepVesting.String())
	assert.Equal(t, "Unknown", Step(-1).String())
}

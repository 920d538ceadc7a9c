package screen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rovshanmuradov/tokenforge/internal/curve"
	"github.com/rovshanmuradov/tokenforge/internal/tokenomics"
	"github.com/rovshanmuradov/tokenforge/internal/ui/component"
	"github.com/rovshanmuradov/tokenforge/internal/wizard"
)

const dateLayout = "2006-01-02"

// stepForms holds one form per editable wizard step. Field names match the
// ValidationError field names so section errors land on the right input.
type stepForms struct {
	token     *component.Form
	curve     *component.Form
	alloc     *component.Form
	vesting   *component.Form
	launchpad *component.Form
	liquidity *component.Form
}

func newStepForms(cfg tokenomics.LaunchConfig) *stepForms {
	f := &stepForms{
		token:     tokenForm(cfg.Token),
		curve:     curveForm(cfg.Curve),
		alloc:     allocationForm(cfg.Alloc),
		vesting:   vestingForm(cfg.Vesting),
		launchpad: launchpadForm(cfg.Launchpad),
		liquidity: liquidityForm(cfg.Liquidity),
	}
	return f
}

func (f *stepForms) forStep(s wizard.Step) *component.Form {
	switch s {
	case wizard.StepToken:
		return f.token
	case wizard.StepCurve:
		return f.curve
	case wizard.StepAllocation:
		return f.alloc
	case wizard.StepVesting:
		return f.vesting
	case wizard.StepLaunchpad:
		return f.launchpad
	case wizard.StepLiquidity:
		return f.liquidity
	default:
		return nil
	}
}

func (f *stepForms) setWidth(width int) {
	for _, form := range []*component.Form{f.token, f.curve, f.alloc, f.vesting, f.launchpad, f.liquidity} {
		form.SetWidth(width)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func tokenForm(t tokenomics.TokenConfig) *component.Form {
	f := component.NewForm().
		AddField("name", component.FieldTypeText, "Token Name", true, "e.g. Forge Token").
		AddField("symbol", component.FieldTypeText, "Symbol", true, "e.g. FRG").
		AddField("description", component.FieldTypeText, "Description", false, "What is this token for?").
		AddField("logo_url", component.FieldTypeText, "Logo URL", false, "https://").
		AddField("total_supply", component.FieldTypeNumber, "Total Supply", true, "").
		AddField("decimals", component.FieldTypeNumber, "Decimals", true, "").
		AddField("website", component.FieldTypeText, "Website", false, "https://").
		AddField("twitter", component.FieldTypeText, "Twitter", false, "@handle").
		AddField("telegram", component.FieldTypeText, "Telegram", false, "t.me/...").
		AddField("discord", component.FieldTypeText, "Discord", false, "discord.gg/...").
		AddField("mint_address", component.FieldTypeText, "Mint Address", false, "optional base58 address")

	f.SetFieldValue("name", t.Name).
		SetFieldValue("symbol", t.Symbol).
		SetFieldValue("description", t.Description).
		SetFieldValue("logo_url", t.LogoURL).
		SetFieldValue("total_supply", formatFloat(t.TotalSupply)).
		SetFieldValue("decimals", strconv.Itoa(t.Decimals)).
		SetFieldValue("website", t.Website).
		SetFieldValue("twitter", t.Twitter).
		SetFieldValue("telegram", t.Telegram).
		SetFieldValue("discord", t.Discord).
		SetFieldValue("mint_address", t.MintAddress)
	return f
}

func curveForm(c tokenomics.CurveConfig) *component.Form {
	shapes := make([]string, 0, len(curve.Shapes()))
	for _, s := range curve.Shapes() {
		shapes = append(shapes, s.String())
	}

	f := component.NewForm().
		AddField("shape", component.FieldTypeSelect, "Curve Type", true, "").
		AddField("initial_price", component.FieldTypeNumber, "Initial Price", true, "").
		AddField("slope", component.FieldTypeNumber, "Curve Steepness", true, "").
		AddField("target_price", component.FieldTypeNumber, "Target Price", false, "sigmoid ceiling").
		AddField("target_goal", component.FieldTypeNumber, "Target Goal", true, "tokens sold to list").
		AddField("reserve_ratio", component.FieldTypeNumber, "Reserve Ratio", false, "0 to disable").
		AddField("entry_tribute_fee", component.FieldTypeNumber, "Entry Fee %", false, "").
		AddField("exit_tribute_fee", component.FieldTypeNumber, "Exit Fee %", false, "").
		SetSelectOptions("shape", shapes)

	f.SetFieldValue("shape", c.Shape.String()).
		SetFieldValue("initial_price", formatFloat(c.InitialPrice)).
		SetFieldValue("slope", formatFloat(c.Slope)).
		SetFieldValue("target_price", formatFloat(c.TargetPrice)).
		SetFieldValue("target_goal", formatFloat(c.TargetGoal)).
		SetFieldValue("reserve_ratio", formatFloat(c.ReserveRatio)).
		SetFieldValue("entry_tribute_fee", formatFloat(c.EntryTributeFee)).
		SetFieldValue("exit_tribute_fee", formatFloat(c.ExitTributeFee))
	return f
}

func allocationForm(a tokenomics.Allocation) *component.Form {
	f := component.NewForm()
	for _, c := range tokenomics.Categories() {
		f.AddField(string(c), component.FieldTypeNumber, c.Label()+" %", false, "")
		f.SetFieldValue(string(c), formatFloat(a[c]))
	}
	return f
}

func vestingField(c tokenomics.Category, field string) string {
	return string(c) + "." + field
}

func vestingForm(schedules []tokenomics.VestingSchedule) *component.Form {
	intervals := make([]string, 0, len(tokenomics.Intervals()))
	for _, i := range tokenomics.Intervals() {
		intervals = append(intervals, string(i))
	}

	f := component.NewForm()
	for _, v := range schedules {
		label := v.Category.Label()
		f.AddField(vestingField(v.Category, "cliff_months"), component.FieldTypeNumber, label+" Cliff (months)", true, "").
			AddField(vestingField(v.Category, "vesting_months"), component.FieldTypeNumber, label+" Vesting (months)", true, "").
			AddField(vestingField(v.Category, "initial_unlock"), component.FieldTypeNumber, label+" TGE Unlock %", true, "").
			AddField(vestingField(v.Category, "interval"), component.FieldTypeSelect, label+" Interval", true, "").
			SetSelectOptions(vestingField(v.Category, "interval"), intervals)

		f.SetFieldValue(vestingField(v.Category, "cliff_months"), strconv.Itoa(v.CliffMonths)).
			SetFieldValue(vestingField(v.Category, "vesting_months"), strconv.Itoa(v.VestingMonths)).
			SetFieldValue(vestingField(v.Category, "initial_unlock"), formatFloat(v.InitialUnlock)).
			SetFieldValue(vestingField(v.Category, "interval"), string(v.Interval))
	}
	return f
}

func launchpadForm(l tokenomics.LaunchpadConfig) *component.Form {
	types := make([]string, 0, len(tokenomics.LaunchpadTypes()))
	for _, t := range tokenomics.LaunchpadTypes() {
		types = append(types, string(t))
	}

	f := component.NewForm().
		AddField("type", component.FieldTypeSelect, "Launchpad Type", true, "").
		AddField("launch_date", component.FieldTypeText, "Launch Date", true, dateLayout).
		AddField("soft_cap", component.FieldTypeNumber, "Soft Cap ($)", true, "").
		AddField("hard_cap", component.FieldTypeNumber, "Hard Cap ($)", true, "").
		AddField("min_contribution", component.FieldTypeNumber, "Min Contribution", false, "").
		AddField("max_contribution", component.FieldTypeNumber, "Max Contribution", false, "").
		AddField("whitelisted", component.FieldTypeCheckbox, "Whitelist", false, "").
		AddField("whitelist_size", component.FieldTypeNumber, "Whitelist Size", false, "").
		AddField("fixed_token_price", component.FieldTypeNumber, "Token Price ($)", false, "").
		AddField("sale_amount", component.FieldTypeNumber, "Sale Amount", false, "").
		AddField("sale_duration_hours", component.FieldTypeNumber, "Sale Duration (h)", false, "").
		AddField("min_allocation", component.FieldTypeNumber, "Min Allocation", false, "").
		AddField("max_allocation", component.FieldTypeNumber, "Max Allocation", false, "").
		SetSelectOptions("type", types)

	f.SetFieldValue("type", string(l.Type)).
		SetFieldValue("launch_date", l.LaunchDate.Format(dateLayout)).
		SetFieldValue("soft_cap", formatFloat(l.SoftCap)).
		SetFieldValue("hard_cap", formatFloat(l.HardCap)).
		SetFieldValue("min_contribution", formatFloat(l.MinContribution)).
		SetFieldValue("max_contribution", formatFloat(l.MaxContribution)).
		SetFieldValue("whitelisted", strconv.FormatBool(l.Whitelisted)).
		SetFieldValue("whitelist_size", strconv.Itoa(l.WhitelistSize)).
		SetFieldValue("fixed_token_price", formatFloat(l.FixedTokenPrice)).
		SetFieldValue("sale_amount", formatFloat(l.SaleAmount)).
		SetFieldValue("sale_duration_hours", strconv.Itoa(l.SaleDuration)).
		SetFieldValue("min_allocation", formatFloat(l.MinAllocation)).
		SetFieldValue("max_allocation", formatFloat(l.MaxAllocation))
	return f
}

func liquidityForm(l tokenomics.LiquidityConfig) *component.Form {
	dexes := make([]string, 0, len(tokenomics.Dexes()))
	for _, d := range tokenomics.Dexes() {
		dexes = append(dexes, string(d))
	}

	f := component.NewForm().
		AddField("dex", component.FieldTypeSelect, "DEX", true, "").
		AddField("custom_dex_name", component.FieldTypeText, "Custom DEX Name", false, "only for custom").
		AddField("initial_liquidity_percentage", component.FieldTypeNumber, "Initial Liquidity %", true, "").
		AddField("locking_period_days", component.FieldTypeNumber, "Locking Period (days)", true, "").
		AddField("target_price_ratio", component.FieldTypeNumber, "Target Price Ratio", true, "").
		AddField("enable_auto_listing", component.FieldTypeCheckbox, "Auto Listing", false, "").
		SetSelectOptions("dex", dexes)

	f.SetFieldValue("dex", string(l.Dex)).
		SetFieldValue("custom_dex_name", l.CustomDexName).
		SetFieldValue("initial_liquidity_percentage", formatFloat(l.InitialLiquidityPercentage)).
		SetFieldValue("locking_period_days", strconv.Itoa(l.LockingPeriodDays)).
		SetFieldValue("target_price_ratio", formatFloat(l.TargetPriceRatio)).
		SetFieldValue("enable_auto_listing", strconv.FormatBool(l.EnableAutoListing))
	return f
}

// parseErrors maps a field name to why its text could not be parsed.
type parseErrors map[string]string

// apply marks the failed fields on the form.
func (pe parseErrors) apply(f *component.Form) {
	for name, msg := range pe {
		f.SetFieldError(name, msg)
	}
}

func (pe parseErrors) err() error {
	if len(pe) == 0 {
		return nil
	}
	names := make([]string, 0, len(pe))
	for name := range pe {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Errorf("invalid input in %s", strings.Join(names, ", "))
}

// formReader parses typed values out of a form. Unparsable fields read as
// zero and are recorded in errs.
type formReader struct {
	form *component.Form
	errs parseErrors
}

func newFormReader(f *component.Form) *formReader {
	return &formReader{form: f, errs: make(parseErrors)}
}

func (r *formReader) text(name string) string {
	return r.form.GetValue(name)
}

func (r *formReader) number(name string) float64 {
	v, err := r.form.GetFloat(name)
	if err != nil {
		r.errs[name] = err.Error()
	}
	return v
}

func (r *formReader) whole(name string) int {
	v, err := r.form.GetInt(name)
	if err != nil {
		r.errs[name] = err.Error()
	}
	return v
}

func (r *formReader) checked(name string) bool {
	return r.form.GetBool(name)
}

func readToken(f *component.Form) (tokenomics.TokenConfig, parseErrors) {
	r := newFormReader(f)
	t := tokenomics.TokenConfig{
		Name:        r.text("name"),
		Symbol:      strings.ToUpper(r.text("symbol")),
		Description: r.text("description"),
		LogoURL:     r.text("logo_url"),
		TotalSupply: r.number("total_supply"),
		Decimals:    r.whole("decimals"),
		Website:     r.text("website"),
		Twitter:     r.text("twitter"),
		Telegram:    r.text("telegram"),
		Discord:     r.text("discord"),
		MintAddress: r.text("mint_address"),
	}
	return t, r.errs
}

func readCurve(f *component.Form) (tokenomics.CurveConfig, parseErrors) {
	r := newFormReader(f)
	shape, err := curve.ParseShape(r.text("shape"))
	if err != nil {
		r.errs["shape"] = err.Error()
	}
	c := tokenomics.CurveConfig{
		Shape:           shape,
		InitialPrice:    r.number("initial_price"),
		Slope:           r.number("slope"),
		TargetPrice:     r.number("target_price"),
		TargetGoal:      r.number("target_goal"),
		ReserveRatio:    r.number("reserve_ratio"),
		EntryTributeFee: r.number("entry_tribute_fee"),
		ExitTributeFee:  r.number("exit_tribute_fee"),
	}
	return c, r.errs
}

func readAllocation(f *component.Form) (tokenomics.Allocation, parseErrors) {
	r := newFormReader(f)
	a := make(tokenomics.Allocation, len(tokenomics.Categories()))
	for _, c := range tokenomics.Categories() {
		a[c] = r.number(string(c))
	}
	return a, r.errs
}

// readVesting updates the given schedules in order, keeping their IDs.
func readVesting(f *component.Form, base []tokenomics.VestingSchedule) ([]tokenomics.VestingSchedule, parseErrors) {
	r := newFormReader(f)
	out := make([]tokenomics.VestingSchedule, len(base))
	for i, v := range base {
		v.CliffMonths = r.whole(vestingField(v.Category, "cliff_months"))
		v.VestingMonths = r.whole(vestingField(v.Category, "vesting_months"))
		v.InitialUnlock = r.number(vestingField(v.Category, "initial_unlock"))
		v.Interval = tokenomics.Interval(r.text(vestingField(v.Category, "interval")))
		out[i] = v
	}
	return out, r.errs
}

// readLaunchpad keeps the time of day of base.LaunchDate when the date changes.
func readLaunchpad(f *component.Form, base tokenomics.LaunchpadConfig) (tokenomics.LaunchpadConfig, parseErrors) {
	r := newFormReader(f)
	l := tokenomics.LaunchpadConfig{
		Type:            tokenomics.LaunchpadType(r.text("type")),
		LaunchDate:      base.LaunchDate,
		SoftCap:         r.number("soft_cap"),
		HardCap:         r.number("hard_cap"),
		MinContribution: r.number("min_contribution"),
		MaxContribution: r.number("max_contribution"),
		Whitelisted:     r.checked("whitelisted"),
		WhitelistSize:   r.whole("whitelist_size"),
		FixedTokenPrice: r.number("fixed_token_price"),
		SaleAmount:      r.number("sale_amount"),
		SaleDuration:    r.whole("sale_duration_hours"),
		MinAllocation:   r.number("min_allocation"),
		MaxAllocation:   r.number("max_allocation"),
	}

	raw := r.text("launch_date")
	if raw != base.LaunchDate.Format(dateLayout) {
		loc := base.LaunchDate.Location()
		day, err := time.ParseInLocation(dateLayout, raw, loc)
		if err != nil {
			r.errs["launch_date"] = "use the YYYY-MM-DD format"
		} else {
			h, m, s := base.LaunchDate.Clock()
			l.LaunchDate = time.Date(day.Year(), day.Month(), day.Day(), h, m, s, 0, loc)
		}
	}
	return l, r.errs
}

func readLiquidity(f *component.Form) (tokenomics.LiquidityConfig, parseErrors) {
	r := newFormReader(f)
	l := tokenomics.LiquidityConfig{
		Dex:                        tokenomics.Dex(r.text("dex")),
		CustomDexName:              r.text("custom_dex_name"),
		InitialLiquidityPercentage: r.number("initial_liquidity_percentage"),
		LockingPeriodDays:          r.whole("locking_period_days"),
		TargetPriceRatio:           r.number("target_price_ratio"),
		EnableAutoListing:          r.checked("enable_auto_listing"),
	}
	return l, r.errs
}

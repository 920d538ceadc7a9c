package screen

import (
	"fmt"
	"maps"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tokenforge/internal/curve"
	"github.com/rovshanmuradov/tokenforge/internal/tokenomics"
	"github.com/rovshanmuradov/tokenforge/internal/ui"
	"github.com/rovshanmuradov/tokenforge/internal/ui/component"
	"github.com/rovshanmuradov/tokenforge/internal/ui/router"
	"github.com/rovshanmuradov/tokenforge/internal/ui/style"
	"github.com/rovshanmuradov/tokenforge/internal/wizard"
)

const (
	chartHeight  = 10
	vestingWidth = 36
)

// WizardScreen walks the user through the launch configuration one step at
// a time. State lives in the wizard.Controller; the forms only hold the text
// being edited.
type WizardScreen struct {
	width  int
	height int
	keyMap ui.KeyMap
	opts   Options
	logger *zap.Logger

	ctrl  *wizard.Controller
	forms *stepForms

	// draft is the controller config with the current form applied, used
	// for live charts before the step is committed.
	draft tokenomics.LaunchConfig

	helpBar   *component.HelpBar
	toasts    *component.Toasts
	chart     *component.Chart
	allocBars *component.AllocationBars

	errors    []string
	launchErr error
	edited    bool
}

// NewWizardScreen starts a fresh wizard session.
func NewWizardScreen(opts Options) *WizardScreen {
	opts = opts.withDefaults()
	return newWizardScreen(wizard.New(opts.defaultLaunch(), opts.Logger), opts)
}

func newWizardScreen(ctrl *wizard.Controller, opts Options) *WizardScreen {
	keyMap := ui.DefaultKeyMap()

	w := &WizardScreen{
		keyMap: keyMap,
		opts:   opts,
		logger: opts.Logger.Named("wizard_screen"),
		ctrl:   ctrl,
		forms:  newStepForms(ctrl.Config()),
		draft:  ctrl.Config(),

		helpBar: component.NewHelpBar().
			SetKeyBindings(keyMap.ContextualHelp(ui.RouteWizard)),
		toasts:    component.NewToasts(component.DefaultToastTTL),
		chart:     component.NewChart(opts.ChartWidth, chartHeight),
		allocBars: component.NewAllocationBars(30),
	}

	return w
}

// Init initializes the wizard
func (w *WizardScreen) Init() tea.Cmd {
	return nil
}

// Controller exposes the session state.
func (w *WizardScreen) Controller() *wizard.Controller {
	return w.ctrl
}

// Update handles wizard updates
func (w *WizardScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.NotificationMsg:
		return w, w.toasts.Push(msg.Notification)

	case component.ToastExpiredMsg:
		w.toasts.Expire(msg.Seq)
		return w, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, w.keyMap.Quit):
			return w, tea.Quit

		case key.Matches(msg, w.keyMap.NextStep):
			w.advance()
			return w, w.flush()

		case key.Matches(msg, w.keyMap.PrevStep):
			w.commit(w.ctrl.Current())
			if w.ctrl.Back() {
				w.errors = nil
			}
			w.refreshDraft()
			return w, w.flush()

		case key.Matches(msg, w.keyMap.GotoStep):
			w.jump(msg.String())
			return w, w.flush()

		case key.Matches(msg, w.keyMap.Launch):
			if w.ctrl.Current() == wizard.StepPreview {
				w.launch()
			}
			return w, w.flush()
		}
	}

	form := w.forms.forStep(w.ctrl.Current())
	if form == nil {
		return w, nil
	}
	before := form.GetValues()
	_, cmd := form.Update(msg)
	if !maps.Equal(before, form.GetValues()) {
		w.edited = true
	}
	w.refreshDraft()
	return w, cmd
}

// Dirty reports whether leaving the screen would discard user input.
func (w *WizardScreen) Dirty() bool {
	if w.ctrl.Launched() {
		return false
	}
	return w.edited || w.ctrl.Reached() > wizard.StepToken
}

// flush turns pending controller notifications into toast commands.
func (w *WizardScreen) flush() tea.Cmd {
	return ui.Notify(w.ctrl.Drain()...)
}

// readStep parses the form of step s into cfg.
func (w *WizardScreen) readStep(s wizard.Step, cfg *tokenomics.LaunchConfig) parseErrors {
	var errs parseErrors
	switch s {
	case wizard.StepToken:
		cfg.Token, errs = readToken(w.forms.token)
	case wizard.StepCurve:
		cfg.Curve, errs = readCurve(w.forms.curve)
	case wizard.StepAllocation:
		cfg.Alloc, errs = readAllocation(w.forms.alloc)
	case wizard.StepVesting:
		cfg.Vesting, errs = readVesting(w.forms.vesting, cfg.Vesting)
	case wizard.StepLaunchpad:
		cfg.Launchpad, errs = readLaunchpad(w.forms.launchpad, cfg.Launchpad)
	case wizard.StepLiquidity:
		cfg.Liquidity, errs = readLiquidity(w.forms.liquidity)
	}
	return errs
}

// commit pushes the form of step s into the controller. Nothing is stored
// when a field cannot be parsed.
func (w *WizardScreen) commit(s wizard.Step) error {
	form := w.forms.forStep(s)
	if form == nil {
		return nil
	}

	cfg := w.ctrl.Config()
	errs := w.readStep(s, &cfg)
	if len(errs) > 0 {
		form.ClearErrors()
		errs.apply(form)
		return errs.err()
	}

	switch s {
	case wizard.StepToken:
		w.ctrl.SetToken(cfg.Token)
	case wizard.StepCurve:
		w.ctrl.SetCurve(cfg.Curve)
	case wizard.StepAllocation:
		w.ctrl.SetAllocation(cfg.Alloc)
	case wizard.StepVesting:
		w.ctrl.SetVesting(cfg.Vesting)
	case wizard.StepLaunchpad:
		w.ctrl.SetLaunchpad(cfg.Launchpad)
	case wizard.StepLiquidity:
		w.ctrl.SetLiquidity(cfg.Liquidity)
	}
	return nil
}

func (w *WizardScreen) advance() {
	step := w.ctrl.Current()
	if form := w.forms.forStep(step); form != nil {
		form.ClearErrors()
	}

	if err := w.commit(step); err != nil {
		w.errors = []string{"Please fix the highlighted fields."}
		return
	}
	if err := w.ctrl.Next(); err != nil {
		w.showValidation(step, err)
		return
	}

	w.errors = nil
	w.refreshDraft()
}

// jump handles alt+N.
func (w *WizardScreen) jump(keys string) {
	n := strings.TrimPrefix(keys, "alt+")
	if len(n) != 1 || n[0] < '1' || n[0] > '9' {
		return
	}
	target := wizard.Step(n[0] - '1')

	w.commit(w.ctrl.Current())
	if err := w.ctrl.Goto(target); err != nil {
		w.errors = []string{err.Error()}
		return
	}
	w.errors = nil
	w.refreshDraft()
}

func (w *WizardScreen) launch() {
	err := w.ctrl.Launch()
	w.launchErr = err
	if err != nil {
		w.logger.Warn("Launch rejected", zap.Error(err))
	}
}

// showValidation puts section errors next to their fields; errors that do
// not belong to a field are listed above the form.
func (w *WizardScreen) showValidation(s wizard.Step, err error) {
	form := w.forms.forStep(s)
	w.errors = nil

	fields := tokenomics.Fields(err)
	if len(fields) == 0 {
		w.errors = []string{err.Error()}
		return
	}

	for _, fe := range fields {
		name := fe.Field
		if category, ok := strings.CutPrefix(fe.Section, "vesting."); ok {
			name = vestingField(tokenomics.Category(category), fe.Field)
		}
		if form == nil || !form.SetFieldError(name, fe.Reason) {
			w.errors = append(w.errors, fe.Error())
		}
	}
}

func (w *WizardScreen) refreshDraft() {
	cfg := w.ctrl.Config()
	w.readStep(w.ctrl.Current(), &cfg)
	w.draft = cfg
}

// View renders the wizard
func (w *WizardScreen) View() string {
	if w.width == 0 || w.height == 0 {
		return "Loading..."
	}

	step := w.ctrl.Current()
	var content strings.Builder

	title := fmt.Sprintf("🪙 Token Launch Wizard - Step %d/%d: %s", int(step)+1, wizard.StepCount(), step)
	content.WriteString(style.TitleStyle.Render(title))
	content.WriteString("\n")
	content.WriteString(w.renderStepIndicator())
	content.WriteString("\n\n")

	for _, e := range w.errors {
		content.WriteString(style.ErrorStyle.Render("✗ " + e))
		content.WriteString("\n")
	}

	content.WriteString(w.renderBody(step))
	content.WriteString("\n")

	if toasts := w.toasts.View(); toasts != "" {
		content.WriteString(toasts)
		content.WriteString("\n")
	}

	content.WriteString(w.helpBar.View())
	return content.String()
}

// SetSize sets the screen dimensions
func (w *WizardScreen) SetSize(width, height int) {
	w.width = width
	w.height = height
	w.helpBar.SetWidth(width)
	w.toasts.SetWidth(min(width-4, 60))

	left, right := w.columns()
	w.forms.setWidth(left - 4)
	w.chart.SetSize(min(w.opts.ChartWidth, max(right-16, 10)), chartHeight)
	w.allocBars.SetWidth(max(right-30, 10))
}

// columns splits the width between the form and the visual panel.
func (w *WizardScreen) columns() (int, int) {
	if w.width < 100 {
		return w.width - 2, w.width - 2
	}
	left := min(w.width/2, 64)
	return left, w.width - left - 2
}

func (w *WizardScreen) renderStepIndicator() string {
	current := w.ctrl.Current()
	reached := w.ctrl.Reached()

	indicators := make([]string, 0, wizard.StepCount())
	for _, s := range wizard.Steps() {
		label := fmt.Sprintf("%d. %s", int(s)+1, s)
		switch {
		case s == current:
			indicators = append(indicators, style.StepActiveStyle.Render(label))
		case s < current:
			indicators = append(indicators, style.StepDoneStyle.Render("✓ "+s.String()))
		case s <= reached:
			indicators = append(indicators, style.TextStyle.Render(label))
		default:
			indicators = append(indicators, style.StepPendingStyle.Render(label))
		}
	}
	return strings.Join(indicators, style.MutedStyle.Render(" → "))
}

func (w *WizardScreen) renderBody(step wizard.Step) string {
	if step == wizard.StepPreview {
		return style.ContainerStyle.Render(w.renderPreview())
	}

	left, right := w.columns()
	form := style.ContainerStyle.Width(left).Render(w.forms.forStep(step).View())
	visual := w.renderVisual(step)
	if visual == "" {
		return form
	}
	panel := style.PanelStyle.Width(right).Render(visual)
	return style.AdaptiveJoinHorizontal(w.width, form, panel)
}

func (w *WizardScreen) renderVisual(step wizard.Step) string {
	switch step {
	case wizard.StepToken:
		return w.renderTokenCard()
	case wizard.StepCurve:
		return w.renderCurve()
	case wizard.StepAllocation:
		return w.renderAllocation()
	case wizard.StepVesting:
		return w.renderVesting()
	case wizard.StepLaunchpad:
		return w.renderSale()
	case wizard.StepLiquidity:
		return style.SectionStyle.Render("Listing") + "\n" + style.TextStyle.Render(w.draft.Liquidity.Summary())
	default:
		return ""
	}
}

func (w *WizardScreen) renderTokenCard() string {
	t := w.draft.Token
	name := t.Name
	if name == "" {
		name = "Unnamed token"
	}
	symbol := t.Symbol
	if symbol == "" {
		symbol = "???"
	}
	mint := t.MintAddress
	if mint == "" {
		mint = "generated at launch"
	}

	lines := []string{
		style.SectionStyle.Render(name + " ($" + symbol + ")"),
		style.TextStyle.Render("Supply:   " + component.FormatCompact(t.TotalSupply)),
		style.TextStyle.Render(fmt.Sprintf("Decimals: %d", t.Decimals)),
		style.TextStyle.Render("Mint:     " + mint),
	}
	return strings.Join(lines, "\n")
}

func (w *WizardScreen) renderCurve() string {
	c := w.draft.Curve
	supply := w.draft.Token.TotalSupply
	params := c.Params()
	points := curve.SamplePoints(params, supply, w.opts.Resolution)

	w.chart.
		SetTitle("Price curve · " + c.Shape.Label()).
		SetXLabel("supply " + component.FormatCompact(supply)).
		SetSeries(component.Series{
			Name:   c.Shape.Label(),
			Values: curve.Prices(points),
			Color:  style.DefaultPalette().Primary,
		})

	lo, hi, stepSize := tokenomics.SlopeRange(c.Shape)
	lines := []string{
		w.chart.View(),
		"",
		style.TextStyle.Render(fmt.Sprintf("Start price: %s   Final price: %s",
			component.FormatCompact(params.InitialPrice),
			component.FormatCompact(curve.FinalPrice(params, supply)))),
		style.TextStyle.Render("Initial market cap: $" + component.FormatCompact(curve.InitialMarketCap(params, supply))),
		style.MutedStyle.Render(fmt.Sprintf("Steepness range %g – %g (step %g)", lo, hi, stepSize)),
	}
	if err := params.Validate(); err != nil {
		lines = append(lines, style.ErrorStyle.Render("⚠ "+err.Error()))
	}
	return strings.Join(lines, "\n")
}

func (w *WizardScreen) renderAllocation() string {
	a := w.draft.Alloc
	rows := make([]component.AllocationRow, 0, len(tokenomics.Categories()))
	for _, c := range tokenomics.Categories() {
		rows = append(rows, component.AllocationRow{Label: c.Label(), Percent: a[c]})
	}
	w.allocBars.SetRows(rows, a.Total(), a.Valid())

	publicSale := a.Tokens(tokenomics.PublicSale, w.draft.Token.TotalSupply)
	return style.SectionStyle.Render("Token distribution") + "\n" +
		w.allocBars.View() + "\n" +
		style.TextStyle.Render("Public sale tokens: "+component.FormatTokens(publicSale))
}

func (w *WizardScreen) renderVesting() string {
	horizon := 0
	for _, v := range w.draft.Vesting {
		horizon = max(horizon, v.EndMonth())
	}
	horizon = max(horizon, 12)

	palette := style.DefaultPalette()
	lines := []string{style.SectionStyle.Render(fmt.Sprintf("Unlock schedule (0–%d months)", horizon))}
	for i, v := range w.draft.Vesting {
		spark := component.NewSparkline(vestingWidth).
			SetData(v.UnlockCurve(horizon)).
			SetColor(palette.SeriesColor(i))
		tge := v.TokensAtTGE(w.draft.Alloc, w.draft.Token.TotalSupply)

		lines = append(lines,
			"",
			lipgloss.NewStyle().Foreground(palette.SeriesColor(i)).Bold(true).Render(v.Category.Label()),
			spark.View(),
			style.TextStyle.Render(v.Summary()),
			style.MutedStyle.Render("At TGE: "+component.FormatTokens(tge)+" tokens"),
		)
	}
	return strings.Join(lines, "\n")
}

func (w *WizardScreen) renderSale() string {
	l := w.draft.Launchpad
	table := component.NewTable().
		AddColumn("Sale", 20, lipgloss.Left).
		AddColumn("Value", 22, lipgloss.Right).
		SetShowBorder(false)

	table.AddRow("Launch", l.LaunchDate.Format("Jan 2, 2006 15:04")).
		AddRow("Raise", "$"+component.FormatCompact(l.SoftCap)+" – $"+component.FormatCompact(l.HardCap)).
		AddRow("Per wallet", "$"+component.FormatCompact(l.MinContribution)+" – $"+component.FormatCompact(l.MaxContribution)).
		AddRow("Tokens for sale", component.FormatCompact(l.SaleAmount)).
		AddRow("Duration", fmt.Sprintf("%dh", l.SaleDuration))
	if l.Whitelisted {
		table.AddRow("Whitelist", fmt.Sprintf("%d wallets", l.WhitelistSize))
	}

	return style.SectionStyle.Render(titleCase(string(l.Type))+" sale") + "\n" + table.View()
}

func (w *WizardScreen) renderPreview() string {
	p := w.ctrl.Preview(w.opts.Resolution)
	palette := style.DefaultPalette()

	finalPrice := "overflow"
	if p.FinalPriceOK {
		finalPrice = component.FormatMoney(p.FinalPrice, 6)
	}

	table := component.NewTable().
		AddColumn("Field", 22, lipgloss.Left).
		AddColumn("Value", 34, lipgloss.Left)
	table.AddRow("Token", fmt.Sprintf("%s ($%s)", p.TokenName, p.Symbol)).
		AddRow("Total supply", component.FormatTokens(decimalFromFloat(p.TotalSupply))).
		AddRow("Curve", p.Shape.Label()).
		AddRow("Public sale tokens", component.FormatTokens(p.PublicSaleTokens)).
		AddRow("Initial market cap", component.FormatMoney(p.InitialMarketCap, 2)).
		AddRow("Final price", finalPrice)
	if p.AllocationValid {
		table.AddRow("Allocation", p.AllocationTotal.StringFixed(2)+"%")
	} else {
		table.AddStyledRow(palette.Warning, "Allocation", p.AllocationTotal.StringFixed(2)+"% (must equal 100%)")
	}

	w.chart.
		SetTitle("Price curve · " + p.Shape.Label()).
		SetXLabel("supply " + component.FormatCompact(p.TotalSupply)).
		SetSeries(component.Series{Name: p.Shape.Label(), Values: curve.Prices(p.Points), Color: palette.Primary})

	var b strings.Builder
	b.WriteString(style.SectionStyle.Render("📋 Launch Preview"))
	b.WriteString("\n\n")
	b.WriteString(style.AdaptiveJoinHorizontal(w.width, table.View(), "  ", w.chart.View()))
	b.WriteString("\n\n")

	b.WriteString(style.SectionStyle.Render("Vesting"))
	b.WriteString("\n")
	for _, line := range p.Vesting {
		b.WriteString(style.TextStyle.Render("• " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(style.SectionStyle.Render("Liquidity"))
	b.WriteString("\n")
	b.WriteString(style.TextStyle.Width(max(w.width-8, 20)).Render(p.Liquidity))
	b.WriteString("\n\n")

	switch {
	case w.ctrl.Launched():
		b.WriteString(style.SuccessStyle.Render("🚀 Launch initiated for $" + p.Symbol))
	case !p.Complete:
		b.WriteString(style.WarningStyle.Render("Name, symbol, supply and a valid soft/hard cap are required before launch."))
	default:
		b.WriteString(style.TextStyle.Render("Press ctrl+l to launch, or ctrl+p to go back and edit."))
	}
	if w.launchErr != nil && !w.ctrl.Launched() {
		b.WriteString("\n")
		b.WriteString(style.ErrorStyle.Render(w.launchErr.Error()))
	}

	return b.String()
}

func decimalFromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/hpgo/homebuyer-calculator/internal/domain"
	"github.com/hpgo/homebuyer-calculator/internal/taxdata"
)

// Engine orchestrates the full recalculation pipeline. It holds no state
// between runs, so a snapshot always recalculates to the same bundle.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with no-op logging.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// NewEngineWithLogger creates an engine that reports pipeline progress to
// the given logger.
func NewEngineWithLogger(logger Logger) *Engine {
	return &Engine{Logger: logger}
}

// SetLogger swaps the engine's logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	e.Logger = logger
}

// defaultTaxYear applies when the snapshot leaves the year unset.
const defaultTaxYear = 2025

// Recalculate derives every result from one input snapshot. Stages feed
// each other in a fixed order: the monthly breakdown first, then upfront
// costs, first-year interest, the tax rate lookups, the deduction
// analysis, the wealth projection, the affordability search, the
// rent-versus-buy race and finally the payoff and PMI timelines.
func (e *Engine) Recalculate(inputs domain.InputSnapshot) *domain.ResultsBundle {
	effectiveDownPct := inputs.EffectiveDownPaymentPercent()

	taxYear := inputs.TaxYear
	if taxYear == 0 {
		taxYear = defaultTaxYear
	}

	piti := CalculatePITI(PITIInput{
		PurchasePrice:      inputs.PurchasePrice,
		InterestRate:       inputs.InterestRate,
		LoanTerm:           inputs.LoanTerm,
		PropertyTaxRate:    inputs.PropertyTaxRate,
		MelloRoos:          inputs.MelloRoos,
		Insurance:          inputs.Insurance,
		HOA:                inputs.HOA,
		DownPaymentPercent: effectiveDownPct,
		PMIRate:            inputs.PMIRate,
		Maintenance:        inputs.Maintenance,
		Utilities:          inputs.Utilities,
		ExtraMonthly:       inputs.ExtraMonthly,
		LumpSum:            inputs.LumpSum,
	})
	e.Logger.Debugf("piti: loan=%s effective=%s monthly=%s",
		piti.LoanAmount.StringFixed(2), piti.EffectiveLoanAmount.StringFixed(2), piti.TotalPITI.StringFixed(2))

	upfront := CalculateUpfrontCosts(UpfrontCostsInput{
		PurchasePrice:      inputs.PurchasePrice,
		LoanAmount:         piti.LoanAmount,
		DownPayment:        piti.DownPayment,
		EffectiveLumpSum:   piti.EffectiveLumpSum,
		InterestRate:       inputs.InterestRate,
		Insurance:          inputs.Insurance,
		MonthlyPropertyTax: piti.MonthlyPropertyTax,
		MonthlyInsurance:   piti.MonthlyInsurance,
		HOA:                inputs.HOA,
	})

	year1Interest := Year1Interest(piti.EffectiveLoanAmount, inputs.InterestRate, piti.MonthlyPI, inputs.ExtraMonthly)

	federalRate := taxdata.FederalMarginalRate(inputs.AnnualIncome, inputs.FilingStatus, taxYear)
	stateRate := taxdata.StateMarginalRate(inputs.AnnualIncome, inputs.FilingStatus, inputs.State, taxYear)
	stateIncomeTax := taxdata.EstimateStateTax(inputs.AnnualIncome, inputs.FilingStatus, inputs.State, taxYear)
	homesteadSavings := taxdata.HomesteadSavings(inputs.State, inputs.PurchasePrice, inputs.PropertyTaxRate)

	standardDeduction := taxdata.FederalStandardDeduction(taxYear, inputs.FilingStatus)
	saltCap := taxdata.SALTCap(taxYear, inputs.AnnualIncome)
	e.Logger.Debugf("tax: year=%d federal=%s%% state=%s%% salt-cap=%s",
		taxYear, federalRate.String(), stateRate.String(), saltCap.String())

	taxBenefits := CalculateTaxBenefits(TaxBenefitsInput{
		TotalInterestYear1:  year1Interest,
		EffectiveLoanAmount: piti.EffectiveLoanAmount,
		PurchasePrice:       inputs.PurchasePrice,
		PropertyTaxRate:     inputs.PropertyTaxRate,
		StateIncomeTax:      stateIncomeTax,
		AnnualIncome:        inputs.AnnualIncome,
		FederalTaxRate:      federalRate,
		StateTaxRate:        stateRate,
		StandardDeduction:   standardDeduction,
		SALTCap:             saltCap,
		HomesteadSavings:    homesteadSavings,
	})

	schedule := GenerateSchedule(ScheduleInput{
		PurchasePrice:           inputs.PurchasePrice,
		EffectiveLoanAmount:     piti.EffectiveLoanAmount,
		EffectiveLumpSum:        piti.EffectiveLumpSum,
		DownPayment:             piti.DownPayment,
		InterestRate:            inputs.InterestRate,
		LoanTerm:                inputs.LoanTerm,
		Appreciation:            inputs.Appreciation,
		ExtraMonthly:            inputs.ExtraMonthly,
		MonthlyPI:               piti.MonthlyPI,
		LoanType:                inputs.LoanType,
		ARMAdjustment:           inputs.ARMAdjustment,
		ARMCap:                  inputs.ARMCap,
		DeductibleLoan:          taxBenefits.DeductibleLoanAmount,
		DeductibleSALT:          taxBenefits.DeductibleSALT,
		StandardDeduction:       standardDeduction,
		ItemizedWithoutHome:     taxBenefits.ItemizedWithoutHome,
		WouldItemizeWithoutHome: taxBenefits.WouldItemizeWithoutHome,
		FederalRate:             taxBenefits.FederalRate,
		StateRate:               taxBenefits.StateRate,
		HomesteadSavings:        homesteadSavings,
	})

	affordability := CalculateAffordability(AffordabilityInput{
		AnnualIncome:       inputs.AnnualIncome,
		InterestRate:       inputs.InterestRate,
		LoanTerm:           inputs.LoanTerm,
		PropertyTaxRate:    inputs.PropertyTaxRate,
		Insurance:          inputs.Insurance,
		HOA:                inputs.HOA,
		PMIRate:            inputs.PMIRate,
		Maintenance:        inputs.Maintenance,
		Utilities:          inputs.Utilities,
		DownPaymentPercent: effectiveDownPct,
		DownPaymentAmount:  inputs.DownPaymentAmount,
		DownPaymentMode:    inputs.DownPaymentMode,
	})

	equityByYear := make([]decimal.Decimal, len(schedule))
	for i, year := range schedule {
		equityByYear[i] = year.TotalEquity
	}
	rentVsBuy := CalculateRentVsBuy(RentVsBuyInput{
		RentAmount:      inputs.RentAmount,
		RentIncrease:    inputs.RentIncrease,
		InvestReturn:    inputs.InvestReturn,
		DownPayment:     piti.DownPayment,
		TrueMonthlyCost: piti.TrueMonthlyCost,
		EquityByYear:    equityByYear,
	})

	extraPayments := CalculateExtraPayments(ExtraPaymentsInput{
		LoanAmount:   piti.LoanAmount,
		InterestRate: inputs.InterestRate,
		LoanTerm:     inputs.LoanTerm,
		ExtraMonthly: inputs.ExtraMonthly,
		LumpSum:      inputs.LumpSum,
	})

	pmiTimeline := CalculatePMITimeline(PMITimelineInput{
		LoanAmount:         piti.LoanAmount,
		PurchasePrice:      inputs.PurchasePrice,
		MonthlyPI:          piti.MonthlyPI,
		InterestRate:       inputs.InterestRate,
		AppreciationRate:   inputs.Appreciation,
		DownPaymentPercent: effectiveDownPct,
		ExtraMonthly:       inputs.ExtraMonthly,
		PMIRate:            inputs.PMIRate,
	})

	return &domain.ResultsBundle{
		Inputs:                      inputs,
		PITI:                        piti,
		Upfront:                     upfront,
		TaxBenefits:                 taxBenefits,
		Schedule:                    schedule,
		Affordability:               affordability,
		RentVsBuy:                   rentVsBuy,
		ExtraPayments:               extraPayments,
		PMITimeline:                 pmiTimeline,
		Year1Interest:               year1Interest,
		FederalTaxRate:              federalRate,
		StateTaxRate:                stateRate,
		StateIncomeTax:              stateIncomeTax,
		EffectiveDownPaymentPercent: effectiveDownPct,
	}
}

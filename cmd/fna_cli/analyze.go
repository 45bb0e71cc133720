package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/advisorkit/fna_app/internal/core/domain"
	"github.com/advisorkit/fna_app/internal/core/planning"
	"github.com/advisorkit/fna_app/internal/utils"
)

// analyzeFile is the YAML input schema. Monetary fields are free-form text
// and go through the same tolerant parse as the form inputs.
type analyzeFile struct {
	Client struct {
		Name        string `yaml:"name"`
		DateOfBirth string `yaml:"dateOfBirth"` // YYYY-MM-DD, optional
	} `yaml:"client"`
	Inputs struct {
		CurrentAge           int               `yaml:"currentAge"`
		PlannedRetirementAge int               `yaml:"plannedRetirementAge"`
		GrowthRatePercent    string            `yaml:"growthRatePercent"`
		MonthlyIncomeNeeded  string            `yaml:"monthlyIncomeNeeded"`
		HealthcareExpenses   string            `yaml:"healthcareExpenses"`
		Goals                map[string]string `yaml:"goals"`
	} `yaml:"inputs"`
	Assets []struct {
		Key            string `yaml:"key"`
		PresentValue   string `yaml:"presentValue"`
		ProjectedValue string `yaml:"projectedValue"`
		Notes          string `yaml:"notes"`
	} `yaml:"assets"`
	Liabilities []struct {
		Type        string `yaml:"type"`
		Description string `yaml:"description"`
		Balance     string `yaml:"balance"`
	} `yaml:"liabilities"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.yaml>",
	Short: "Run the analysis pass over a YAML plan file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}

		var in analyzeFile
		if err := yaml.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("failed to parse input file: %w", err)
		}

		plan, dob, err := buildPlan(in)
		if err != nil {
			return err
		}

		liabilities := make([]domain.LiabilityRecord, 0, len(in.Liabilities))
		for _, l := range in.Liabilities {
			liabilityType := domain.LiabilityType(l.Type)
			if !domain.ValidLiabilityType(liabilityType) {
				return fmt.Errorf("liability type %q is not recognized", l.Type)
			}
			liabilities = append(liabilities, domain.LiabilityRecord{
				Type:        liabilityType,
				Description: l.Description,
				Balance:     utils.ParseAmount(l.Balance),
			})
		}

		analysis := planning.Recompute(plan, liabilities, dob, time.Now())
		printAnalysis(cmd, in.Client.Name, analysis)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func buildPlan(in analyzeFile) (domain.Plan, *time.Time, error) {
	plan := domain.NewDefaultPlan("")

	plan.Inputs.CurrentAge = in.Inputs.CurrentAge
	if in.Inputs.PlannedRetirementAge > 0 {
		plan.Inputs.PlannedRetirementAge = in.Inputs.PlannedRetirementAge
	}
	if in.Inputs.GrowthRatePercent != "" {
		plan.Inputs.GrowthRatePercent = utils.ParseAmount(in.Inputs.GrowthRatePercent)
	}
	plan.Inputs.MonthlyIncomeNeeded = utils.ParseAmount(in.Inputs.MonthlyIncomeNeeded)
	if in.Inputs.HealthcareExpenses != "" {
		plan.Inputs.HealthcareExpenses = utils.ParseAmount(in.Inputs.HealthcareExpenses)
	}

	goals := &plan.Inputs.Goals
	goalFields := map[string]*decimal.Decimal{
		"college1":      &goals.College1,
		"college2":      &goals.College2,
		"wedding1":      &goals.Wedding1,
		"wedding2":      &goals.Wedding2,
		"travel":        &goals.Travel,
		"vacationHome":  &goals.VacationHome,
		"charity":       &goals.Charity,
		"other":         &goals.Other,
		"headstartFund": &goals.HeadstartFund,
		"legacy":        &goals.Legacy,
		"familySupport": &goals.FamilySupport,
	}
	for key, value := range in.Inputs.Goals {
		field, ok := goalFields[key]
		if !ok {
			return plan, nil, fmt.Errorf("goal category %q is not recognized", key)
		}
		*field = utils.ParseAmount(value)
	}

	for _, a := range in.Assets {
		item := plan.AssetByKey(domain.AssetKey(a.Key))
		if item == nil {
			return plan, nil, fmt.Errorf("asset key %q is not recognized", a.Key)
		}
		item.PresentValue = utils.ParseAmount(a.PresentValue)
		item.ProjectedValue = utils.ParseAmount(a.ProjectedValue)
		item.Notes = a.Notes
	}

	var dob *time.Time
	if in.Client.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", in.Client.DateOfBirth)
		if err != nil {
			return plan, nil, fmt.Errorf("invalid dateOfBirth %q: %w", in.Client.DateOfBirth, err)
		}
		dob = &parsed
	}
	return plan, dob, nil
}

func printAnalysis(cmd *cobra.Command, clientName string, analysis domain.Analysis) {
	out := cmd.OutOrStdout()
	if clientName != "" {
		fmt.Fprintf(out, "Analysis for %s\n\n", clientName)
	}

	d := analysis.Derived
	fmt.Fprintf(out, "Current age:           %d\n", d.CurrentAge)
	fmt.Fprintf(out, "Years to retirement:   %d\n", d.YearsToRetirement)
	fmt.Fprintf(out, "Retirement duration:   %d years\n", d.RetirementDuration)
	fmt.Fprintf(out, "Annual income needed:  %s\n", utils.FormatCurrency(d.AnnualIncome))
	fmt.Fprintf(out, "Lifetime income:       %s\n", utils.FormatCurrency(d.LifetimeRetirementIncome))
	fmt.Fprintf(out, "Long-term care:        %s\n", utils.FormatCurrency(d.LongTermCare))
	fmt.Fprintf(out, "Total requirement:     %s\n\n", utils.FormatCurrency(d.TotalRequirement))

	t := analysis.Totals
	fmt.Fprintf(out, "Total assets:          %s\n", utils.FormatCurrency(t.TotalPresentValue))
	fmt.Fprintf(out, "Projected assets:      %s\n", utils.FormatCurrency(t.TotalProjectedValue))
	fmt.Fprintf(out, "Total liabilities:     %s\n", utils.FormatCurrency(t.TotalLiabilities))
	fmt.Fprintf(out, "Net worth:             %s\n", utils.FormatCurrency(t.NetWorth))
	fmt.Fprintf(out, "Funding gap:           %s\n\n", utils.FormatCurrency(t.FundingGap))

	fmt.Fprintln(out, "Recommendations:")
	for _, rec := range analysis.Recommendations {
		fmt.Fprintf(out, "  [%s] %s\n", rec.Severity, rec.Message)
	}
}

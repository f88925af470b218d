package constant

// MaxIndicators bounds how many FRED series one report may request.
const MaxIndicators = 6

// IndicatorCatalog is the fixed set of economic indicator labels the
// analysis backend understands. Labels are sent verbatim as
// fred_data_keys, so the spelling here is part of the wire contract.
var IndicatorCatalog = []string{
	"Real GDP",
	"Nominal GDP",
	"Industrial Production Index (Total)",
	"Industrial Production: Manufacturing",
	"Capacity Utilization: Total Industry",
	"Retail Sales (Total)",
	"Construction Spending: Total",
	"Business Inventories",
	"Unemployment Rate (National)",
	"Labor Force Participation Rate (National)",
	"Employment Level (National)",
	"Average Hourly Earnings: Total Private",
	"Job Openings: Total Nonfarm",
	"Consumer Price Index (CPI-U)",
	"Core CPI (Ex. Food & Energy)",
	"PCE Price Index",
	"Core PCE (Ex. Food & Energy)",
	"Producer Price Index: All Commodities",
	"Effective Federal Funds Rate",
	"10-Year Treasury Constant Maturity",
	"2-Year Treasury",
	"30-Year Fixed Rate Mortgage Average",
	"Prime Bank Loan Rate",
	"M2 Money Stock",
	"Consumer Loans: Credit Cards",
	"Commercial and Industrial Loans",
	"Bank Tightening Standards for C&I Loans",
	"U.S. Exports of Goods & Services",
	"U.S. Imports of Goods & Services",
	"Trade Balance",
	"Exchange Rate: U.S. Dollar Index",
	"Housing Starts (National)",
	"Building Permits (National)",
	"Median Sales Price of Houses (National)",
	"S&P/Case-Shiller U.S. National Home Price Index",
	"Real GDP by State",
	"Unemployment Rate by State",
	"Labor Force Participation Rate by State",
	"Employment Level by State",
}

// DefaultIndicators is the starter selection applied to new sessions.
var DefaultIndicators = []string{
	"Real GDP",
	"Nominal GDP",
	"Real GDP by State",
	"Unemployment Rate by State",
	"Unemployment Rate (National)",
}

// InCatalog reports whether a label belongs to the fixed catalog.
func InCatalog(label string) bool {
	for _, opt := range IndicatorCatalog {
		if opt == label {
			return true
		}
	}
	return false
}

package constant

// CustomTemplateLabel selects a user-authored format example instead
// of a canned one. For custom templates the displayed text and the
// transmitted text are the same thing.
const CustomTemplateLabel = "custom"

// ReportTemplate is a canned report-format example. Display carries a
// fully worked example for the user to preview; Backend carries the
// placeholder-slot rendition that is actually transmitted as
// format_example. The two must never be swapped: the worked example
// leaks a fictional company's numbers into the prompt.
type ReportTemplate struct {
	Label   string
	Display string
	Backend string
}

// DefaultTemplateLabel is the selection applied to new sessions.
const DefaultTemplateLabel = "Default (Sectioned Report)"

var ReportTemplates = []ReportTemplate{
	{
		Label: "Default (Sectioned Report)",
		Display: `**Company Performance Analysis**
Industry Overview
The company operates in the industry of women's clothing stores (NAICS code 448120). According to the U.S. Economic Census, the industry's CAGR from 2012 to 2017 was -0.028, and from 2017 to 2022, it was .56.

**Company Performance**
The company's sales data shows a declining trend, with a CAGR of -0.10 from 2017 to 2022. This is a concerning sign, as it indicates a decrease in sales over the past five years.

**Expert Opinion**
Greg Finance, our expert analyst, has predicted a 6% drop in sales due to tarrifs.

**Comparison to Industry Peers**
We analyzed the 10-K reports of other companies in the industry, including Torrid Holdings Inc., Tapestry Inc., and Chico's FAS, Inc. These companies have reported revenue growth rates ranging from -0.00 to 0.03. In comparison, our company's sales decline is a significant concern.

**Economic Indicators**
At the state level, Florida's Real GDP has grown from 2023 to 2025, with a year-over-year growth rate of 0.028456581147295656 in 2025. The Unemployment Rate in Florida has also decreased from 2023 to 2025. Nationally, the Nominal GDP and Real GDP have both grown from 2023 to 2025, with year-over-year growth rates of 0.048573869948537185 and 0.02262176119973547, respectively. The Unemployment Rate has also decreased nationally from 2023 to 2025.

**Budget vs Actuals Variance**
The variance report shows significant differences between actual costs and budgeted costs, with variances ranging from -95.000 to 100.000000 in Development Costs, and -42.500 to 65.050 in Maintenance Cost.

**Search Trends**
The search trends for the company's name and keywords associated with the company indicate a decline in interest from 2020 to 2022, with a slight increase in 2023 and 2024. This could be a sign of declining brand awareness or relevance.

**Conclusion**
In conclusion, the company's performance is a concern, with declining sales and a significant gap between actual and budgeted costs. The industry peers have reported growth, and the economic indicators are positive, but the company's performance is not reflecting these trends. Immediate attention is required to address the expert's actions and to turnaround the company's sales and financial performance.`,
		Backend: `**Company Performance Analysis**
Industry Overview
<Census CAGR rates, description of company and industry>

**Company Performance**
<Description of Company Performance>

**Expert Opinion**
<Description of Expert Opinion>

**Comparison to Industry Peers**
<Description of 10K reports and CAGRs>

**Economic Indicators**
<Description of Economic Indicators>

**Budget vs Actuals Variance**
<Description of Budget vs Actuals Variance>

**Search Trends**
<Description of Search Trends>

**Conclusion**
<Conclusion>`,
	},
	{
		Label: "Narrative style (Formal, personable letter)",
		Display: `Thank you for the opportunity to conduct an analysis of your company's recent performance. I've reviewed key financial and operational indicators in the context of industry trends and broader economic conditions, and I would like to share my findings and recommendations.

Your company operates within the women's clothing retail sector, classified under NAICS code 448120. According to the U.S. Economic Census, the industry experienced a compound annual growth rate (CAGR) of -2.8% between 2012 and 2017. However, from 2017 to 2022, the sector showed modest recovery, with an estimated CAGR of 0.56%.

In contrast, your company has experienced a decline in sales over the same recent period. Between 2017 and 2022, your reported CAGR was -10%, indicating a consistent downward trend in revenue that significantly diverges from broader industry movement. This pattern is cause for concern and warrants further strategic evaluation.

Our senior analyst, Greg Finance, has projected an additional 6% drop in sales due to the impact of tariffs. While external pressures are not uncommon in this industry, the compounding effect of these projections with your current performance highlights the urgency of a proactive response.

When comparing your company's performance with publicly available data from peer firms, such as Torrid Holdings Inc., Tapestry Inc., and Chico's FAS, Inc., we found that competitors have generally maintained more stable trajectories, with growth ranging from approximately 0% to 3%. The gap in performance suggests a need to reassess your market positioning and operational strategy.

Meanwhile, macroeconomic indicators at both the state and national levels are relatively favorable. Florida's real GDP has shown steady growth from 2023 to 2025, reaching a 2.85% year-over-year increase in 2025, while unemployment has declined during the same period. National GDP trends mirror this positivity, with nominal growth at 4.86% and real growth at 2.26%, alongside falling unemployment. These conditions suggest that your performance challenges are not the result of an unfavorable external climate.

A review of your budget vs. actual expenditures reveals considerable variances. Development costs ranged from being under budget by $95,000 to exceeding it by $100,000, while maintenance costs varied between -$42,500 and +$65,050. Such large fluctuations point to issues with cost estimation or operational execution, both of which deserve immediate attention.

Finally, our analysis of search trends related to your brand and associated keywords shows a decline in consumer interest between 2020 and 2022. Though there is a mild uptick in 2023 and 2024, the overall pattern could signal a loss of brand visibility or relevance in the market.

In summary, while economic and industry conditions are generally improving, your company's financial performance does not appear to be capitalizing on these trends. The combination of declining sales, substantial budget variances, and reduced consumer engagement suggests that focused corrective actions are necessary. I recommend addressing internal inefficiencies, reviewing your market strategy, and exploring immediate steps to stabilize revenue and improve cost control.

Please let me know if you would like to schedule a meeting to discuss these findings in more detail or explore actionable next steps. I am at your disposal.

Sincerely,
Financial Analyst`,
		Backend: `Thank you for the opportunity to conduct an analysis of your company's recent performance. I've reviewed key financial and operational indicators in the context of industry trends and broader economic conditions, and I would like to share my findings and recommendations.

Your company operates within the <industry> sector, classified under NAICS code <naics_code>. According to the U.S. Economic Census, the industry experienced <industry_cagr_description>.

In contrast, your company has experienced <company_performance_description>. This pattern is cause for concern and warrants further strategic evaluation.

Our senior analyst, <expert_name>, has <expert_opinion_description>. While external pressures are not uncommon in this industry, the compounding effect of these projections with your current performance highlights the urgency of a proactive response.

When comparing your company's performance with publicly available data from peer firms, we found that <peer_comparison_description>. The gap in performance suggests a need to reassess your market positioning and operational strategy.

Meanwhile, macroeconomic indicators at both the state and national levels are <economic_indicators_description>. These conditions suggest that your performance challenges are not the result of an unfavorable external climate.

A review of your budget vs. actual expenditures reveals <budget_variance_description>. Such large fluctuations point to issues with cost estimation or operational execution, both of which deserve immediate attention.

Finally, our analysis of search trends related to your brand and associated keywords shows <search_trends_description>. Though there is a mild uptick in recent periods, the overall pattern could signal a loss of brand visibility or relevance in the market.

In summary, while economic and industry conditions are generally improving, your company's financial performance does not appear to be capitalizing on these trends. The combination of declining sales, substantial budget variances, and reduced consumer engagement suggests that focused corrective actions are necessary. I recommend addressing internal inefficiencies, reviewing your market strategy, and exploring immediate steps to stabilize revenue and improve cost control.

Please let me know if you would like to schedule a meeting to discuss these findings in more detail or explore actionable next steps. I am at your disposal.

Sincerely,
Financial Analyst`,
	},
}

// FindTemplate returns the canned template with the given label.
func FindTemplate(label string) (ReportTemplate, bool) {
	for _, t := range ReportTemplates {
		if t.Label == label {
			return t, true
		}
	}
	return ReportTemplate{}, false
}
